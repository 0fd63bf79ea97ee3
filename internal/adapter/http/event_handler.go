package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/domain/eventlog"
)

const defaultEventPageSize = 50

// EventHandler serves the append-only audit trail. Reads only, so it talks to
// the repository directly.
type EventHandler struct{ repo eventlog.Repository }

func NewEventHandler(repo eventlog.Repository) *EventHandler { return &EventHandler{repo: repo} }

type eventDTO struct {
	EventID     string  `json:"event_id"`
	EventType   string  `json:"event_type"`
	Description string  `json:"description"`
	Details     *string `json:"details,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

// ListEvents pages through events newest first via ?limit= and ?offset=.
func (h *EventHandler) ListEvents(c echo.Context) error {
	limit := defaultEventPageSize
	if q := c.QueryParam("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = n
	}
	offset := 0
	if q := c.QueryParam("offset"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
		}
		offset = n
	}

	events, err := h.repo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return respondDomainErr(c, err)
	}
	out := make([]eventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, eventDTO{
			EventID:     e.EventID,
			EventType:   string(e.EventType),
			Description: e.Description,
			Details:     e.Details,
			Timestamp:   e.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, out)
}
