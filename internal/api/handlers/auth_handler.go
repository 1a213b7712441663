package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/readysethire/readysethire/internal/api/middleware"
	"github.com/readysethire/readysethire/internal/config"
	"github.com/readysethire/readysethire/pkg/response"
	"github.com/readysethire/readysethire/pkg/types"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login godoc
// @Summary Console staff login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} response.TokenResponse "JWT token"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "username and password are required"})
		return
	}

	if req.Username != config.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid username or password"})
		return
	}

	token, err := middleware.GenerateToken(req.Username, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		Username: req.Username,
		IsAdmin:  true,
	})
}

// Status reports whether the presented token is still valid.
func (h *AuthHandler) Status(c *gin.Context) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid claims"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": claims.Username, "is_admin": claims.IsAdmin})
}
