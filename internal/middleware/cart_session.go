package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionCookie = "cart_session"

// CartSession reads the session cookie scoping the visitor's cart and
// mints one on first contact. The cookie carries no identity, only the
// handle for the in-memory cart.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cartSessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cartSessionCookie, sessionID, 0, "/", "", false, true)
		}

		c.Set("cart_session_id", sessionID)
		c.Next()
	}
}
