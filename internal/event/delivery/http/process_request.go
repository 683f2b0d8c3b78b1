package http

import (
	"github.com/gin-gonic/gin"
)

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIntentReq binds and validates the intent request body.
func (h *handler) processIntentReq(c *gin.Context) (intentReq, error) {
	var req intentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
