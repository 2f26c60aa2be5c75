// admin_only.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Principal(c).IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Se requieren permisos de administrador"})
			c.Abort()
			return
		}
		c.Next()
	}
}
