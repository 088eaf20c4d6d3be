package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/ingestion-platform/internal/api/metrics"
	"github.com/docuvault/ingestion-platform/internal/core/ports"
)

type IngestionHandler struct {
	service ports.IngestionService
}

func NewIngestionHandler(service ports.IngestionService) *IngestionHandler {
	return &IngestionHandler{service: service}
}

type triggerIngestionRequest struct {
	// Source is an opaque identifier for what should be ingested, e.g. a
	// feed name or URL.
	Source string `json:"source" validate:"required"`
}

// Trigger starts an ingestion job and returns it already in_progress.
//
// @Summary      Trigger an ingestion job
// @Tags         ingestion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      triggerIngestionRequest  true  "Ingestion source"
// @Success      202   {object}  domain.IngestionJob
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/ingestion [post]
func (h *IngestionHandler) Trigger(c echo.Context) error {
	var req triggerIngestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Trigger(c.Request().Context(), req.Source)
	if err != nil {
		return err
	}

	metrics.JobsTriggeredTotal.Inc()
	return c.JSON(http.StatusAccepted, job)
}

// Status reports the current state of an ingestion job.
//
// @Summary      Get ingestion job status
// @Tags         ingestion
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.IngestionJob
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/ingestion/status/{id} [get]
func (h *IngestionHandler) Status(c echo.Context) error {
	job, err := h.service.Status(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}
