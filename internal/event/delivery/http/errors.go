package http

import (
	"errors"
	"net/http"

	"event-planner/internal/event"
	pkgErrors "event-planner/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is empty")
	case errors.Is(err, event.ErrInvalidIntent):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "the request must name an event type and a location")
	case errors.Is(err, event.ErrIntentExtraction):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "could not understand the request, please rephrase it")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
