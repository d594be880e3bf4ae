package handlers

import (
	"errors"
	"net/http"

	"election-service/internal/server/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// StudentLoginRequest defines the input for a student login
type StudentLoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// AdminLoginRequest defines the input for an admin login
type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// @Summary Student login
// @Description Authenticate a student and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body StudentLoginRequest true "Login Request"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.StudentLogin(c.Request.Context(), req.StudentID, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Admin login
// @Description Authenticate an administrator with the shared secret
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} map[string]string
// @Router /auth/admin [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.AdminLogin(req.Secret)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
