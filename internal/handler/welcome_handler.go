package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Welcome godoc
// @Summary      Liveness greeting
// @Tags         Health
// @Produce      plain
// @Success      200  {string}  string
// @Router       /welcome [get]
func Welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to Task Manager")
}
