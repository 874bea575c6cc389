package risk

import (
	"fmt"
	"os"
	"strings"

	"crisis-alert-srv/internal/model"

	"gopkg.in/yaml.v3"
)

// Catalog is the emergency copy for one language.
type Catalog struct {
	Helplines []string                   `yaml:"helplines"`
	Responses map[model.RiskLevel]string `yaml:"responses"`
	Fallback  string                     `yaml:"fallback"`
}

// EmergencyResponse returns the text that replaces the conversational reply for
// level, or "" for LOW.
func (c Catalog) EmergencyResponse(level model.RiskLevel) string {
	if level == model.RiskLevelLow {
		return ""
	}
	return c.Responses[level]
}

// Responses selects a Catalog by language.
type Responses struct {
	DefaultLang string             `yaml:"default_lang"`
	Catalogs    map[string]Catalog `yaml:"catalogs"`
}

// DefaultResponses returns the embedded catalogs.
func DefaultResponses() *Responses {
	r, err := ParseResponses(defaultResponses)
	if err != nil {
		panic(fmt.Sprintf("risk: embedded responses are invalid: %v", err))
	}
	return r
}

// LoadResponses reads a catalog file. An empty path returns the embedded default.
func LoadResponses(path string) (*Responses, error) {
	if path == "" {
		return DefaultResponses(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses %s: %w", path, err)
	}
	return ParseResponses(data)
}

// ParseResponses decodes and validates YAML catalogs. Every non-LOW response must
// mention at least one of its catalog's helplines.
func ParseResponses(data []byte) (*Responses, error) {
	var r Responses
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponses, err)
	}
	r.DefaultLang = strings.ToLower(strings.TrimSpace(r.DefaultLang))
	if _, ok := r.Catalogs[r.DefaultLang]; !ok {
		return nil, fmt.Errorf("%w: default_lang %q has no catalog", ErrInvalidResponses, r.DefaultLang)
	}

	for lang, c := range r.Catalogs {
		if len(c.Helplines) == 0 {
			return nil, fmt.Errorf("%w: %s: helplines are required", ErrInvalidResponses, lang)
		}
		for _, level := range []model.RiskLevel{model.RiskLevelMedium, model.RiskLevelHigh, model.RiskLevelCritical} {
			text := strings.TrimSpace(c.Responses[level])
			if text == "" {
				return nil, fmt.Errorf("%w: %s: %s response is empty", ErrInvalidResponses, lang, level)
			}
			if !containsAny(text, c.Helplines) {
				return nil, fmt.Errorf("%w: %s: %s response lists no helpline", ErrInvalidResponses, lang, level)
			}
			c.Responses[level] = text
		}
		c.Fallback = strings.TrimSpace(c.Fallback)
		delete(c.Responses, model.RiskLevelLow)
		r.Catalogs[lang] = c
	}
	return &r, nil
}

// Catalog returns the catalog for lang, falling back to the default language.
func (r *Responses) Catalog(lang string) Catalog {
	if c, ok := r.Catalogs[strings.ToLower(lang)]; ok {
		return c
	}
	return r.Catalogs[r.DefaultLang]
}

// EmergencyResponse is shorthand for r.Catalog(lang).EmergencyResponse(level).
func (r *Responses) EmergencyResponse(lang string, level model.RiskLevel) string {
	return r.Catalog(lang).EmergencyResponse(level)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
