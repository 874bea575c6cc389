package llm

import "time"

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
	DefaultTimeout     = 30 * time.Second

	roleSystem = "system"
	roleUser   = "user"

	unspecifiedContext = "No especificado"
)

// DefaultSystemPrompt is used when Config.SystemPrompt is empty. %s receives the emotional context.
const DefaultSystemPrompt = `Eres un acompañante especializado en bienestar emocional y espiritual.
Sé empático, comprensivo y esperanzador. Nunca des consejos médicos profesionales.
Contexto emocional actual: %s
Responde con calidez y ofrece pasos prácticos.`
