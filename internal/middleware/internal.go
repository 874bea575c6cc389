package middleware

import (
	"crypto/subtle"

	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// InternalKeyHeader carries the shared secret for service-to-service routes.
const InternalKeyHeader = "X-Internal-Key"

// InternalKey guards routes called by the automation platform and operators.
func (m Middleware) InternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		if m.internalKey == "" || key == "" {
			m.l.Warnf(c.Request.Context(), "Missing internal key | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "Invalid internal key | Path: %s", c.Request.URL.Path)
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
