// auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"toy-store-backend/internal/model"
	"toy-store-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// parseToken saca el token del header Authorization o de la cookie "token".
func parseToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth valida el token y deja el Principal resuelto en el contexto.
// Se guarda un único valor tipado, no campos sueltos.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := parseToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No autorizado"})
			c.Abort()
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// Principal devuelve el usuario autenticado del request. Solo tiene sentido
// detrás de RequireAuth.
func Principal(c *gin.Context) model.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return model.Principal{}
	}
	p, _ := v.(model.Principal)
	return p
}
