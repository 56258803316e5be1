package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"starwars/internal/pkg/jwt"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// JWTAuth requires a Bearer access token. Websocket clients that cannot set
// headers may pass it as the access_token query parameter instead.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, msg := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, code, msg)
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (token, code, msg string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if q := c.Query("access_token"); q != "" {
			return q, "", ""
		}
		return "", "AUTH_HEADER_MISSING", "Authorization header is required"
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", "INVALID_AUTH_FORMAT", "Authorization header must be Bearer <token>"
	}
	return strings.TrimSpace(parts[1]), "", ""
}

func abortUnauthorized(c *gin.Context, code, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": msg},
	})
}

// UserID returns the authenticated user id set by JWTAuth, or 0.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}
