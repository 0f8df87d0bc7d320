package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"loandesk/internal/domain/user"
	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUsuarioIDKey   = "usuario_id"
	ctxUsuarioRoleKey = "usuario_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
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

		usuarioID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		SetAuthContext(c, usuarioID, role)
		c.Set("jwt_claims", map[string]any{
			"usuario_id": usuarioID,
			"rol":        string(role),
		})
		c.Next()
	}
}

// RequireRole admits only the listed roles. Docente and encargado are
// disjoint capabilities, not levels, so there is no hierarchy here.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

// SetAuthContext seeds the per-request identity read back by GetUsuarioID
// and GetUserRole. Handler tests use it to stand in for RequireAuth.
func SetAuthContext(c *gin.Context, usuarioID int64, role user.Role) {
	c.Set(ctxUsuarioIDKey, usuarioID)
	c.Set(ctxUsuarioRoleKey, role)
}

func GetUsuarioID(c *gin.Context) (int64, bool) {
	usuarioID, exists := c.Get(ctxUsuarioIDKey)
	if !exists {
		return 0, false
	}

	id, ok := usuarioID.(int64)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	usuarioRole, exists := c.Get(ctxUsuarioRoleKey)
	if !exists {
		return "", false
	}

	role, ok := usuarioRole.(user.Role)
	return role, ok
}
