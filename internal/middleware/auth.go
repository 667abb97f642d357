package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/internal/utils"
)

const (
	// SessionCookieName is where login places the signed session token.
	SessionCookieName = "access_token_cookie"

	currentUserContextKey = "current_user"
)

// CurrentUser returns the username the request authenticated as, or false
// when the auth middleware did not run or rejected the request.
func CurrentUser(c *gin.Context) (string, bool) {
	value, ok := c.Get(currentUserContextKey)
	if !ok {
		return "", false
	}
	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// Auth gates protected routes on a valid session cookie. A missing,
// malformed, tampered or expired token aborts with 401. The subject
// username is exposed to handlers via CurrentUser; whether that username
// still resolves to a user row is the handler's concern.
func Auth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing or invalid session token",
			})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing or invalid session token",
			})
			return
		}

		c.Set(currentUserContextKey, claims.Subject)
		c.Next()
	}
}
