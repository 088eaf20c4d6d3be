package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/ingestion-platform/internal/api/metrics"
	"github.com/docuvault/ingestion-platform/internal/core/ports"
)

type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type createDocumentRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	// FilePath is where the upload layer stored the file bytes.
	FilePath string `json:"file_path" validate:"required"`
}

type updateDocumentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Create records metadata for an uploaded document.
//
// @Summary      Create a document record
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDocumentRequest  true  "Document metadata"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	doc, err := h.service.Create(c.Request().Context(), ports.CreateDocumentInput{
		Title:       req.Title,
		Description: req.Description,
		FilePath:    req.FilePath,
		UploadedBy:  userID,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, doc)
}

// List returns all documents that are not soft-deleted.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Document
// @Failure      401  {object}  errorResponse
// @Router       /v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Get returns a single document by id.
//
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  domain.Document
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Update applies a partial metadata patch.
//
// @Summary      Update a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Document id"
// @Param        body  body      updateDocumentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/documents/{id} [patch]
func (h *DocumentHandler) Update(c echo.Context) error {
	var req updateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	doc, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateDocumentInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Delete soft-deletes a document.
//
// @Summary      Delete a document
// @Tags         documents
// @Security     BearerAuth
// @Param        id  path  string  true  "Document id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
