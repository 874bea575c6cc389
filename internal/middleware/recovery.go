package middleware

import (
	"strings"

	"crisis-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s\n%s",
					err, c.Request.Method, c.Request.URL.Path, strings.Join(response.StackTrace(3), "\n"))

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
