package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
)

type AuthService interface {
	Login(ctx context.Context, d dto.AuthRequestDTO) (string, error)
}

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Log in
// @Description  Returns a bearer token for the Authorization header.
// @Tags         Auth
// @Accept       json
// @Produce      plain
// @Param        credentials  body      dto.AuthRequestDTO  true  "Email and password"
// @Success      200          {string}  string  "JWT"
// @Failure      400          {object}  ErrorResponse
// @Failure      401          {object}  ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequestDTO
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, token)
}
