package middleware

import (
	"net/http"
	"strings"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey  = "user"
	ContextTokenKey = "token"
)

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CurrentUser returns the session user stored by RequireSession.
func CurrentUser(c *gin.Context) (models.AppUser, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return models.AppUser{}, false
	}
	user, ok := v.(models.AppUser)
	return user, ok
}

// RequireSession rejects requests without a live session.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.missingToken", "Authorization header is required")
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(err)
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidSession", "session not found or expired")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

// RequireRole lets through only sessions holding one of roles. It must run
// after RequireSession.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidSession", "session not found or expired")
			c.Abort()
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "this dashboard requires the "+strings.Join(roles, " or ")+" role")
		c.Abort()
	}
}
