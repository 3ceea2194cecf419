package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"medverify/internal/pkg/jwt"
	"medverify/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

const ctxRoleKey = "auth_role"

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireManufacturer guards the registration endpoints. Only bearer tokens
// issued against the manufacturer API key pass.
func (m *AuthMiddleware) RequireManufacturer() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}
		token := strings.TrimSpace(authHeader[len("Bearer "):])

		claims, err := m.auth.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleManufacturer {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}
