package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// ActivityHandler serves the caller's audit trail.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /v1/activity.
//
// @Summary      List the caller's recent activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum records (default 50)"
// @Success      200    {object}  listActivityResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.service.Recent(c.Request().Context(), owner, limit)
	if err != nil {
		return err
	}

	data := make([]activityItemResponse, 0, len(events))
	for _, e := range events {
		data = append(data, activityItemResponse{
			Action:    e.Action,
			Subject:   e.Subject,
			Timestamp: e.Timestamp.UTC(),
		})
	}
	return c.JSON(http.StatusOK, listActivityResponse{Data: data})
}
