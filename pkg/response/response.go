package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "event-planner/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An HTTPError in the chain picks the status code and message;
// any other error is a 400 carrying err's text.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		if he.StatusCode >= http.StatusInternalServerError {
			c.JSON(he.StatusCode, Resp{ErrorCode: he.StatusCode, Message: he.Message})
			return
		}
		c.JSON(he.StatusCode, Resp{ErrorCode: he.StatusCode, Message: he.Message, Data: data})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
