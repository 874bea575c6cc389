package locale

// Supported languages
const (
	ES = "es" // Spanish
	EN = "en" // English
)

// DefaultLang is the default language used when no valid locale is provided.
const DefaultLang = ES
