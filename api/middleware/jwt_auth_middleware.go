package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/internal/tokenutil"
)

// JwtAuthMiddleware gates the admin-only mutation endpoints. Everything
// behind it can assume the request is already authorized.
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) == 2 {
			authToken := t[1]
			authorized, _ := tokenutil.IsAuthorized(authToken, secret)
			if authorized {
				userID, err := tokenutil.ExtractIDFromToken(authToken, secret)
				if err == nil {
					c.Set("x-user-id", userID)
					c.Next()
					return
				}
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "not authorized"})
		c.Abort()
	}
}
