package risk

import (
	"strings"
	"testing"

	"crisis-alert-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EmergencyResponse(t *testing.T) {
	responses := DefaultResponses()

	for _, lang := range []string{"es", "en"} {
		catalog := responses.Catalog(lang)
		t.Run(lang, func(t *testing.T) {
			assert.Equal(t, "", catalog.EmergencyResponse(model.RiskLevelLow))

			seen := map[string]bool{}
			for _, level := range []model.RiskLevel{model.RiskLevelMedium, model.RiskLevelHigh, model.RiskLevelCritical} {
				text := catalog.EmergencyResponse(level)
				require.NotEmpty(t, text, level)
				assert.True(t, containsAny(text, catalog.Helplines), "%s response lists no helpline", level)
				assert.False(t, seen[text], "%s response is not distinct", level)
				seen[text] = true
			}
			assert.NotEmpty(t, catalog.Fallback)
		})
	}
}

func TestResponses_CriticalContainsEmergencyNumbers(t *testing.T) {
	text := DefaultResponses().EmergencyResponse("es", model.RiskLevelCritical)
	assert.Contains(t, text, "112")
	assert.Contains(t, text, "024")
	assert.Contains(t, text, "Salmo 34:18")
}

func TestResponses_Catalog_FallsBackToDefault(t *testing.T) {
	responses := DefaultResponses()
	assert.Equal(t,
		responses.EmergencyResponse("es", model.RiskLevelHigh),
		responses.EmergencyResponse("fr", model.RiskLevelHigh))
	assert.Equal(t,
		responses.EmergencyResponse("en", model.RiskLevelHigh),
		responses.EmergencyResponse("EN", model.RiskLevelHigh))
}

func TestParseResponses_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed yaml", data: "catalogs: ["},
		{name: "default lang without catalog", data: `
default_lang: de
catalogs:
  es: {helplines: ["112"], responses: {CRITICAL: "112", HIGH: "112", MEDIUM: "112"}}`},
		{name: "missing helplines", data: `
default_lang: es
catalogs:
  es: {responses: {CRITICAL: "112", HIGH: "112", MEDIUM: "112"}}`},
		{name: "response without helpline", data: `
default_lang: es
catalogs:
  es: {helplines: ["112"], responses: {CRITICAL: "call 112", HIGH: "talk to someone", MEDIUM: "112"}}`},
		{name: "missing level", data: `
default_lang: es
catalogs:
  es: {helplines: ["112"], responses: {CRITICAL: "112", HIGH: "112"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponses([]byte(strings.TrimSpace(tt.data)))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidResponses)
		})
	}
}

func TestParseResponses_IgnoresLowText(t *testing.T) {
	r, err := ParseResponses([]byte(`
default_lang: es
catalogs:
  es: {helplines: ["112"], responses: {LOW: "hola", CRITICAL: "112", HIGH: "112", MEDIUM: "112"}}`))
	require.NoError(t, err)
	assert.Equal(t, "", r.EmergencyResponse("es", model.RiskLevelLow))
}
