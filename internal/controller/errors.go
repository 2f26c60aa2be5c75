package controller

import (
	"errors"
	"net/http"

	"toy-store-backend/internal/repository"
	"toy-store-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError mapea errores de negocio a HTTP:
//
//	RuleError            → 400 con el mensaje tal cual
//	ErrForbidden         → 403
//	ErrNotFound          → 404
//	ErrInvalidCredentials → 401
//	cualquier otro       → 500 genérico, detalle solo en el log
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var rule *service.RuleError
	switch {
	case errors.As(err, &rule):
		c.JSON(http.StatusBadRequest, gin.H{"message": rule.Msg})
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrAdminOnly):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No encontrado"})
	default:
		logger.Error("error inesperado",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
	}
}
