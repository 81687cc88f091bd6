package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
)

type TaskService interface {
	List(ctx context.Context, params dto.TaskParamsDTO) ([]dto.TaskDTO, error)
	Get(ctx context.Context, id int64) (dto.TaskDTO, error)
	Create(ctx context.Context, d dto.TaskCreateDTO) (dto.TaskDTO, error)
	Update(ctx context.Context, id int64, d dto.TaskUpdateDTO) (dto.TaskDTO, error)
	Delete(ctx context.Context, id int64) error
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks TaskService
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List godoc
// @Summary      List tasks
// @Description  Every given parameter narrows the result; none returns all tasks.
// @Tags         Tasks
// @Produce      json
// @Param        titleCont   query     string  false  "Case-insensitive substring of the title"
// @Param        assigneeId  query     int     false  "Assignee user ID"
// @Param        statusSlug  query     string  false  "Task status slug (alias: status)"
// @Param        labelId     query     int     false  "Label ID"
// @Success      200  {array}   dto.TaskDTO
// @Header       200  {integer} X-Total-Count  "Number of matching tasks"
// @Failure      400  {object}  ErrorResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	params, ok := parseTaskParams(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	setTotalCount(c, len(tasks))
	c.JSON(http.StatusOK, tasks)
}

// Get godoc
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskDTO
// @Failure      404  {object}  ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create godoc
// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        task  body      dto.TaskCreateDTO  true  "New task"
// @Success      201   {object}  dto.TaskDTO
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskCreateDTO
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update godoc
// @Summary      Update a task
// @Description  Absent fields are kept; null clears index, assigneeId, content and taskLabelIds.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Task ID"
// @Param        task  body      dto.TaskUpdateDTO  true  "Fields to change"
// @Success      200   {object}  dto.TaskDTO
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.TaskUpdateDTO
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary      Delete a task
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id  path  int  true  "Task ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseTaskParams(c *gin.Context) (dto.TaskParamsDTO, bool) {
	var params dto.TaskParamsDTO

	if v := c.Query("titleCont"); v != "" {
		params.TitleCont = &v
	}

	slug := c.Query("statusSlug")
	if slug == "" {
		slug = c.Query("status")
	}
	if slug != "" {
		params.StatusSlug = &slug
	}

	var ok bool
	if params.AssigneeID, ok = queryID(c, "assigneeId"); !ok {
		return params, false
	}
	if params.LabelID, ok = queryID(c, "labelId"); !ok {
		return params, false
	}
	return params, true
}

func queryID(c *gin.Context, name string) (*int64, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return nil, false
	}
	return &id, true
}
