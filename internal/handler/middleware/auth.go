package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"studio-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxSubjectKey = "admin_subject"
	ctxRoleKey    = "admin_role"

	roleAdmin = "admin"
)

// AuthMiddleware guards the administrative endpoints. The customer-facing
// booking and payment surface is intentionally unauthenticated.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != roleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"subject": claims.Subject,
			"role":    claims.Role,
		})
		c.Next()
	}
}

func GetAdminSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}

	sub, ok := subject.(string)
	return sub, ok
}
