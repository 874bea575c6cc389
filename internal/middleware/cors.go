package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsMethods = "GET, POST, OPTIONS"
	anyOrigin   = "*"
)

// Headers the chat widget and internal callers send.
var corsHeaders = strings.Join([]string{
	"Origin",
	"Content-Type",
	"Accept",
	"Accept-Language",
	LangHeader,
	InternalKeyHeader,
}, ", ")

// CORSConfig comes from http_server.cors.
type CORSConfig struct {
	// AllowedOrigins accepts exact origins, "*" or "*.domain" for subdomains.
	AllowedOrigins   []string
	AllowCredentials bool
	MaxAge           int // seconds
}

// CORS answers preflights with 204 and tags allowed origins on every other request.
// A wildcard list never reflects "*" when credentials are on; the caller's origin is echoed instead.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		c.Writer.Header().Add("Vary", "Origin")

		if origin != "" && cfg.allows(origin) {
			if cfg.wildcard() && !cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Origin", anyOrigin)
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
			}
			if cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Methods", corsMethods)
		c.Header("Access-Control-Allow-Headers", corsHeaders)
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}

func (cfg CORSConfig) wildcard() bool {
	for _, o := range cfg.AllowedOrigins {
		if o == anyOrigin {
			return true
		}
	}
	return false
}

func (cfg CORSConfig) allows(origin string) bool {
	for _, allowed := range cfg.AllowedOrigins {
		switch {
		case allowed == anyOrigin, strings.EqualFold(allowed, origin):
			return true
		case strings.HasPrefix(allowed, "*."):
			// "*.example.com" matches https://app.example.com, not https://badexample.com
			if strings.HasSuffix(strings.ToLower(origin), strings.ToLower(allowed[1:])) {
				return true
			}
		}
	}
	return false
}
