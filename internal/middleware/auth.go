package middleware

import (
	"errors"
	"net/http"
	"strings"

	"blog-backend/internal/models"
	"blog-backend/internal/service"
	"blog-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	TokenKey = "token"
	UserKey  = "user"
)

// BearerToken extracts the token from the Authorization header without
// validating it
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			return
		}

		c.Set(TokenKey, token)
		c.Next()
	}
}

// AuthMiddleware resolves the bearer token to a known user. Any token
// problem answers 401.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrServiceUnavailable) {
				utils.ErrorResponse(c, http.StatusServiceUnavailable, "Service unavailable")
			} else {
				c.Header("WWW-Authenticate", "Bearer")
				utils.ErrorResponse(c, http.StatusUnauthorized, "Could not validate credentials")
			}
			c.Abort()
			return
		}

		// Inject the token and its user into context
		c.Set(TokenKey, token)
		c.Set(UserKey, user)

		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// CurrentToken returns the raw bearer token stored by either middleware
func CurrentToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}

func extractBearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.Header("WWW-Authenticate", "Bearer")
		utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		c.Abort()
		return "", false
	}

	// Check Bearer prefix
	scheme, token, found := strings.Cut(authHeader, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		c.Header("WWW-Authenticate", "Bearer")
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
		c.Abort()
		return "", false
	}

	return token, true
}
