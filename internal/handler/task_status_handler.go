package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
)

type TaskStatusService interface {
	List(ctx context.Context) ([]dto.TaskStatusDTO, error)
	Get(ctx context.Context, id int64) (dto.TaskStatusDTO, error)
	Create(ctx context.Context, d dto.TaskStatusCreateDTO) (dto.TaskStatusDTO, error)
	Update(ctx context.Context, id int64, d dto.TaskStatusUpdateDTO) (dto.TaskStatusDTO, error)
	Delete(ctx context.Context, id int64) error
}

type TaskStatusHandler struct {
	statuses TaskStatusService
}

func NewTaskStatusHandler(statuses TaskStatusService) *TaskStatusHandler {
	return &TaskStatusHandler{statuses: statuses}
}

// List godoc
// @Summary      List task statuses
// @Tags         Task statuses
// @Produce      json
// @Success      200  {array}   dto.TaskStatusDTO
// @Header       200  {integer} X-Total-Count  "Number of statuses"
// @Router       /api/task_statuses [get]
func (h *TaskStatusHandler) List(c *gin.Context) {
	statuses, err := h.statuses.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	setTotalCount(c, len(statuses))
	c.JSON(http.StatusOK, statuses)
}

// Get godoc
// @Summary      Get a task status
// @Tags         Task statuses
// @Produce      json
// @Param        id   path      int  true  "Task status ID"
// @Success      200  {object}  dto.TaskStatusDTO
// @Failure      404  {object}  ErrorResponse
// @Router       /api/task_statuses/{id} [get]
func (h *TaskStatusHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.statuses.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Create godoc
// @Summary      Create a task status
// @Tags         Task statuses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        status  body      dto.TaskStatusCreateDTO  true  "New status"
// @Success      201     {object}  dto.TaskStatusDTO
// @Failure      400     {object}  ErrorResponse
// @Failure      401     {object}  ErrorResponse
// @Router       /api/task_statuses [post]
func (h *TaskStatusHandler) Create(c *gin.Context) {
	var req dto.TaskStatusCreateDTO
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statuses.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

// Update godoc
// @Summary      Update a task status
// @Tags         Task statuses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int                      true  "Task status ID"
// @Param        status  body      dto.TaskStatusUpdateDTO  true  "Fields to change"
// @Success      200     {object}  dto.TaskStatusDTO
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/task_statuses/{id} [put]
func (h *TaskStatusHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.TaskStatusUpdateDTO
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.statuses.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Delete godoc
// @Summary      Delete a task status
// @Description  Refused while any task is in the status.
// @Tags         Task statuses
// @Security     BearerAuth
// @Param        id  path  int  true  "Task status ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/task_statuses/{id} [delete]
func (h *TaskStatusHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.statuses.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
