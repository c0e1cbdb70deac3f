package v1

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/hospital_surge_system/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"

	roleContextKey    = "role"
	subjectContextKey = "subject"
)

// Claims - JWT claims оператора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware - middleware для аутентификации по API-ключу или JWT.
// Владелец API-ключа считается сервисным администратором.
func AuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
			if !slices.Contains(cfg.APIKeys, apiKey) {
				log.Warn("Invalid API key provided")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
				return
			}
			c.Set(roleContextKey, RoleAdmin)
			c.Set(subjectContextKey, "api-key")
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			log.Warn("Credentials missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key or bearer token required"})
			return
		}

		// Bearer может содержать и API-ключ
		if slices.Contains(cfg.APIKeys, tokenString) {
			c.Set(roleContextKey, RoleAdmin)
			c.Set(subjectContextKey, "api-key")
			c.Next()
			return
		}

		if cfg.JWTSecret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			log.WithError(err).Warn("Invalid bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		role := claims.Role
		if role == "" {
			role = RoleOperator
		}
		c.Set(roleContextKey, role)
		c.Set(subjectContextKey, claims.Subject)
		c.Next()
	}
}

// RequireRole пропускает запрос только с одной из перечисленных ролей
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(roleContextKey)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		if !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
