package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// EntryHandler handles HTTP requests for daily entry operations.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// List handles GET /v1/entries.
//
// @Summary      List the caller's daily entries
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listEntriesResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	data := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, toEntryResponse(e))
	}
	return c.JSON(http.StatusOK, listEntriesResponse{Data: data})
}

// Create handles POST /v1/entries.
//
// @Summary      Log a daily entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entryRequest  true  "Entry details"
// @Success      201   {object}  entryResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.service.Add(c.Request().Context(), owner, ports.EntryInput{
		JobName:   req.JobName,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toEntryResponse(*entry))
}

// Update handles PUT /v1/entries/:id.
//
// @Summary      Update a daily entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Entry id"
// @Param        body  body      entryRequest  true  "Entry details"
// @Success      200   {object}  entryResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/entries/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), owner, c.Param("id"), ports.EntryInput{
		JobName:   req.JobName,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEntryResponse(*entry))
}

// Delete handles DELETE /v1/entries/:id.
//
// @Summary      Delete a daily entry
// @Tags         entries
// @Security     BearerAuth
// @Param        id  path  string  true  "Entry id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), owner, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
