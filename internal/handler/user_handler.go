package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
)

type UserService interface {
	List(ctx context.Context) ([]dto.UserDTO, error)
	Get(ctx context.Context, id int64) (dto.UserDTO, error)
	Create(ctx context.Context, d dto.UserCreateDTO) (dto.UserDTO, error)
	Update(ctx context.Context, id int64, d dto.UserUpdateDTO) (dto.UserDTO, error)
	Delete(ctx context.Context, id int64) error
}

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List godoc
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Success      200  {array}   dto.UserDTO
// @Header       200  {integer} X-Total-Count  "Number of users"
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	setTotalCount(c, len(users))
	c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary      Get a user
// @Tags         Users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  dto.UserDTO
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary      Register a user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        user  body      dto.UserCreateDTO  true  "New user"
// @Success      201   {object}  dto.UserDTO
// @Failure      400   {object}  ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserCreateDTO
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary      Update your own user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User ID"
// @Param        user  body      dto.UserUpdateDTO  true  "Fields to change"
// @Success      200   {object}  dto.UserDTO
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok || !requireSelf(c, id) {
		return
	}

	var req dto.UserUpdateDTO
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary      Delete your own user
// @Description  Refused while the user is assigned to any task.
// @Tags         Users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok || !requireSelf(c, id) {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
