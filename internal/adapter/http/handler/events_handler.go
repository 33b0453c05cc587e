package handler

import (
	"strconv"

	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"
	"github.com/Player1Taco/Liquid-Flow/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxEventPageSize = 500

// EventsHandler serves the durable protocol event archive.
type EventsHandler struct {
	archive ports.EventArchive
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(archive ports.EventArchive) *EventsHandler {
	return &EventsHandler{archive: archive}
}

// ListRecent handles GET /api/v1/events?limit=.
func (h *EventsHandler) ListRecent(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxEventPageSize {
			response.Error(c, apperror.Validation("limit must be between 1 and 500"))
			return
		}
		limit = parsed
	}

	events, err := h.archive.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, events)
}
