package controller

import (
	"net/http"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/middleware"
	"toy-store-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Service *service.AuthService
	Logger  *zap.Logger
}

func NewAuthController(s *service.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{Service: s, Logger: logger}
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado correctamente",
		"data":    dto.NewUserResponse(user),
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, access, refresh, err := ctl.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login correcto",
		"data": dto.LoginResponse{
			User:         dto.NewUserResponse(user),
			AccessToken:  access,
			RefreshToken: refresh,
		},
	})
}

// POST /api/auth/change-password
func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err := ctl.Service.ChangePassword(c.Request.Context(), middleware.Principal(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada correctamente"})
}
