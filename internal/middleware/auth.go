package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harukimori/study-log-api/internal/auth"
	"github.com/harukimori/study-log-api/internal/constants"
	apierrors "github.com/harukimori/study-log-api/internal/errors"
)

// RequireAuth verifies the Authorization bearer token and stores the
// authenticated user's ID in the request context. Missing, expired and
// tampered tokens each get their own message, all under 401.
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "Authentication required. No token provided.")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apierrors.Unauthorized(c, "Token has expired")
			} else {
				apierrors.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
