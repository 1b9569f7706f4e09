package handlers

import (
	"errors"
	"log"
	"net/http"

	"attendance_app/middleware"
	"attendance_app/models"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	tokenService *middleware.TokenService
}

func NewAuthHandler(tokens *middleware.TokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokens}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.tokenService.Login(req.Password)
	if errors.Is(err, middleware.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
