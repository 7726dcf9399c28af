package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/openboard/backend/internal/service"
)

const authUserKey = "auth_user_id"

// AuthMiddleware guards protected routes. A request with no Authorization
// header is rejected before any token parsing; a present header is split into
// scheme and token, and only the token's position matters — the scheme word
// itself is not compared against "Bearer".
func AuthMiddleware(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrMissingCredential.Error()})
			return
		}

		fields := strings.Fields(header)
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidToken.Error()})
			return
		}

		userID, err := tokens.Verify(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidToken.Error()})
			return
		}

		c.Set(authUserKey, userID)
		c.Next()
	}
}

func GetAuthUserID(c *gin.Context) (int64, bool) {
	if value, ok := c.Get(authUserKey); ok {
		if id, ok := value.(int64); ok {
			return id, true
		}
	}
	return 0, false
}

// CORSMiddleware allows a single configured origin with credentials. An empty
// origin disables CORS headers entirely.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin != "" && c.GetHeader("Origin") == origin {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
