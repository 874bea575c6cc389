package locale

import (
	"context"
	"strings"
)

// ParseLang normalizes a language code or Accept-Language style value.
// Unsupported values map to DefaultLang.
func ParseLang(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}

	switch lang {
	case ES, "spanish", "español", "espanol":
		return ES
	case EN, "english":
		return EN
	default:
		return DefaultLang
	}
}

// IsValidLang checks if a language code is supported.
func IsValidLang(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// GetLang retrieves the locale from context, returning the default if not found.
func GetLang(ctx context.Context) string {
	lang, ok := GetLocaleFromContext(ctx)
	if !ok {
		return DefaultLang
	}
	return lang
}

func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, Locale{}, lang)
}

// GetLocaleFromContext returns the locale and true if one was set.
func GetLocaleFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(Locale{}).(string)
	if !ok || lang == "" {
		return "", false
	}
	return lang, true
}
