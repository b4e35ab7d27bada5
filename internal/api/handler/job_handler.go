package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clockwise/timesheet-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /v1/jobs.
//
// @Summary      List the caller's jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listJobsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.List(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	data := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		data = append(data, toJobResponse(j))
	}
	return c.JSON(http.StatusOK, listJobsResponse{Data: data})
}

// Create handles POST /v1/jobs.
//
// @Summary      Add a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Add(c.Request().Context(), owner, ports.JobInput{
		Name:         req.Name,
		Date:         req.Date,
		SalaryType:   req.SalaryType,
		SalaryAmount: req.SalaryAmount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(*job))
}

// Update handles PUT /v1/jobs/:id.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Job id"
// @Param        body  body      jobRequest  true  "Job details"
// @Success      200   {object}  jobResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Update(c.Request().Context(), owner, c.Param("id"), ports.JobInput{
		Name:         req.Name,
		Date:         req.Date,
		SalaryType:   req.SalaryType,
		SalaryAmount: req.SalaryAmount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(*job))
}

// Delete handles DELETE /v1/jobs/:id.
//
// @Summary      Delete a job
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	owner, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), owner, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
