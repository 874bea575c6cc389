package middleware

import (
	"crisis-alert-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// LangHeader carries an explicit request language.
const LangHeader = "lang"

// Locale extracts the request language and stores it in the request context.
// The "lang" header wins over Accept-Language. Unknown values fall back to
// the default locale.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		langHeader := c.GetHeader(LangHeader)
		if langHeader == "" {
			langHeader = c.GetHeader("Accept-Language")
		}

		lang := locale.ParseLang(langHeader)

		ctx := locale.SetLocaleToContext(c.Request.Context(), lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
