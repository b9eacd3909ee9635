package middleware

import "github.com/gin-gonic/gin"

// OptionalAuthMiddleware injects the user id when a valid token is
// present and lets the request through as a guest otherwise.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			// token present but invalid or expired: continue as guest
			c.Next()
			return
		}

		if userID, _ := claims["sub"].(string); userID != "" {
			c.Set("user_id_validated", userID)
		} else if userID, _ := claims["user_id"].(string); userID != "" {
			c.Set("user_id_validated", userID)
		}

		c.Next()
	}
}
