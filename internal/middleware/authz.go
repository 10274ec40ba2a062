package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/authz"
)

// RequireElevated lets owners and admins through.
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role := AccountFromContext(c)
		if role == "" {
			abortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "no role in context")
			return
		}
		if !authz.IsElevated(role) {
			abortError(c, http.StatusForbidden, "FORBIDDEN", "forbidden")
			return
		}
		c.Next()
	}
}

// ReadOnlyGuard lets roles that cannot edit records through on safe methods
// only. Requests without a role are left to AuthMiddleware.
func ReadOnlyGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role := AccountFromContext(c)
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			if role != "" && !authz.CanEditRecords(role) {
				abortError(c, http.StatusForbidden, "FORBIDDEN", "read-only role")
				return
			}
		}
		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
