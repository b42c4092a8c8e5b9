package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_id"
	sessionContextKey = "sessionID"

	// one year; carts should outlive a browser session
	sessionCookieMaxAge = 365 * 24 * 60 * 60
)

// SessionMiddleware guarantees every request carries a guest session id. The
// id names the session's cart and wishlist storage keys; a missing or blank
// cookie gets a fresh UUID v7 minted and set on the response.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.Must(uuid.NewV7()).String()

			isProd := os.Getenv("APP_ENV") == "production"
			c.SetCookie(
				sessionCookieName,
				sessionID,
				sessionCookieMaxAge,
				"/",
				"",
				isProd,
				true, // HttpOnly
			)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext returns the guest session id set by
// SessionMiddleware.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(sessionContextKey)
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
