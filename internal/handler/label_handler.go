package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
)

type LabelService interface {
	List(ctx context.Context) ([]dto.LabelDTO, error)
	Get(ctx context.Context, id int64) (dto.LabelDTO, error)
	Create(ctx context.Context, d dto.LabelCreateDTO) (dto.LabelDTO, error)
	Update(ctx context.Context, id int64, d dto.LabelUpdateDTO) (dto.LabelDTO, error)
	Delete(ctx context.Context, id int64) error
}

// LabelHandler handles label-related HTTP requests
type LabelHandler struct {
	labels LabelService
}

// NewLabelHandler creates a new LabelHandler instance
func NewLabelHandler(labels LabelService) *LabelHandler {
	return &LabelHandler{labels: labels}
}

// List godoc
// @Summary      List labels
// @Tags         Labels
// @Produce      json
// @Success      200  {array}   dto.LabelDTO
// @Header       200  {integer} X-Total-Count  "Number of labels"
// @Router       /api/labels [get]
func (h *LabelHandler) List(c *gin.Context) {
	labels, err := h.labels.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	setTotalCount(c, len(labels))
	c.JSON(http.StatusOK, labels)
}

// Get godoc
// @Summary      Get a label
// @Tags         Labels
// @Produce      json
// @Param        id   path      int  true  "Label ID"
// @Success      200  {object}  dto.LabelDTO
// @Failure      404  {object}  ErrorResponse
// @Router       /api/labels/{id} [get]
func (h *LabelHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	label, err := h.labels.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, label)
}

// Create godoc
// @Summary      Create a label
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        label  body      dto.LabelCreateDTO  true  "New label"
// @Success      201    {object}  dto.LabelDTO
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Router       /api/labels [post]
func (h *LabelHandler) Create(c *gin.Context) {
	var req dto.LabelCreateDTO
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.labels.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, label)
}

// Update godoc
// @Summary      Rename a label
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int                 true  "Label ID"
// @Param        label  body      dto.LabelUpdateDTO  true  "Fields to change"
// @Success      200    {object}  dto.LabelDTO
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /api/labels/{id} [put]
func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.LabelUpdateDTO
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.labels.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, label)
}

// Delete godoc
// @Summary      Delete a label
// @Description  Refused while any task carries the label.
// @Tags         Labels
// @Security     BearerAuth
// @Param        id  path  int  true  "Label ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/labels/{id} [delete]
func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.labels.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
