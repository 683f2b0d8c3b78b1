package http

import (
	"github.com/gin-gonic/gin"

	"event-planner/pkg/response"
)

// PlanEvent godoc
// @Summary     Plan an event
// @Description Extracts the intent from free text (or uses the supplied intent) and runs every planning section.
// @Description Sections that fail are listed under failures; their summary carries an "unavailable" digest.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Event request"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Intent is missing event type or location"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Intent could not be extracted"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [POST]
func (h *handler) PlanEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PlanEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// ExtractIntent godoc
// @Summary     Extract the event intent
// @Description Returns the structured intent for free text without running the planning sections.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body intentReq true "Event request"
// @Success     200  {object} intentResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Intent is missing event type or location"
// @Failure     502  {object} response.Resp "Intent could not be extracted"
// @Router      /api/v1/intents [POST]
func (h *handler) ExtractIntent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIntentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	intent, err := h.uc.ExtractIntent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractIntent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newIntentResp(intent))
}
