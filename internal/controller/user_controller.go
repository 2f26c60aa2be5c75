package controller

import (
	"net/http"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/middleware"
	"toy-store-backend/internal/model"
	"toy-store-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	Service *service.UserService
	Logger  *zap.Logger
}

func NewUserController(s *service.UserService, logger *zap.Logger) *UserController {
	return &UserController{Service: s, Logger: logger}
}

func userResponses(users []*model.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out
}

// GET /api/users/me
func (ctl *UserController) GetCurrentUser(c *gin.Context) {
	user, err := ctl.Service.GetCurrentUser(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// PUT /api/users/me
func (ctl *UserController) UpdateCurrentUser(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.Service.UpdateProfile(c.Request.Context(), middleware.Principal(c), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil actualizado correctamente",
		"data":    dto.NewUserResponse(user),
	})
}

// GET /api/users — admin
func (ctl *UserController) GetUsers(c *gin.Context) {
	users, err := ctl.Service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, userResponses(users))
}

// PUT /api/users/:id — admin
func (ctl *UserController) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.Service.AdminUpdate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado correctamente",
		"data":    dto.NewUserResponse(user),
	})
}

// DELETE /api/users/:id — admin
func (ctl *UserController) DeleteUser(c *gin.Context) {
	if err := ctl.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado correctamente"})
}
