package controller

import (
	"net/http"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/middleware"
	"toy-store-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SupportController struct {
	Service *service.SupportService
	Logger  *zap.Logger
}

func NewSupportController(s *service.SupportService, logger *zap.Logger) *SupportController {
	return &SupportController{Service: s, Logger: logger}
}

// POST /api/support/messages
func (ctl *SupportController) CreateMessage(c *gin.Context) {
	var req dto.SupportMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	msg, err := ctl.Service.CreateMessage(c.Request.Context(), middleware.Principal(c), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// GET /api/support/conversations — admin
func (ctl *SupportController) GetConversations(c *gin.Context) {
	conversations, err := ctl.Service.Conversations(c.Request.Context())
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// GET /api/support/conversations/:id/messages — admin
func (ctl *SupportController) GetConversationMessages(c *gin.Context) {
	messages, err := ctl.Service.ConversationMessages(c.Request.Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// GET /api/support/my/messages
func (ctl *SupportController) GetMyMessages(c *gin.Context) {
	messages, err := ctl.Service.MyMessages(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
