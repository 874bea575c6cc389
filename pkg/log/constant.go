package log

const (
	// ModeProduction is the production logger mode.
	ModeProduction = "production"
	// ModeDevelopment is the development logger mode.
	ModeDevelopment = "development"
	// EncodingConsole is console (human-readable) encoding.
	EncodingConsole = "console"
	// EncodingJSON is JSON encoding.
	EncodingJSON = "json"
)

// Log level names (for config mapping).
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

const timeFormat = "2006-01-02 15:04:05.000"
