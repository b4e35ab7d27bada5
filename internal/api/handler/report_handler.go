package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// ReportHandler serves the derived salary and grouping report.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Get handles GET /v1/report.
//
// @Summary      Build the caller's salary report
// @Tags         report
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/report [get]
func (h *ReportHandler) Get(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	report, err := h.service.Build(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReportResponse(report))
}
