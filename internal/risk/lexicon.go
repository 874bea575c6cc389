package risk

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TermSet is a group of terms that share one per-hit weight.
type TermSet struct {
	Weight int      `yaml:"weight"`
	Terms  []string `yaml:"terms"`
}

// Threshold is the minimum score of a level and the action suggested for it.
type Threshold struct {
	MinScore        int    `yaml:"min_score"`
	SuggestedAction string `yaml:"suggested_action"`
}

// Thresholds holds the level boundaries, evaluated from highest to lowest.
type Thresholds struct {
	Critical Threshold `yaml:"critical"`
	High     Threshold `yaml:"high"`
	Medium   Threshold `yaml:"medium"`
}

// Lexicon is the versioned classification artifact used by the Scorer.
// It is read-only once loaded.
type Lexicon struct {
	Version    string     `yaml:"version"`
	High       TermSet    `yaml:"high"`
	Medium     TermSet    `yaml:"medium"`
	Crisis     TermSet    `yaml:"crisis"`
	Thresholds Thresholds `yaml:"thresholds"`
	LowAction  string     `yaml:"low_action"`
}

// DefaultLexicon returns the embedded lexicon.
func DefaultLexicon() *Lexicon {
	lex, err := ParseLexicon(defaultLexicon)
	if err != nil {
		panic(fmt.Sprintf("risk: embedded lexicon is invalid: %v", err))
	}
	return lex
}

// LoadLexicon reads a lexicon file. An empty path returns the embedded default.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes and validates a YAML lexicon. Terms are lowercased.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}
	if err := lex.normalize(); err != nil {
		return nil, err
	}
	return &lex, nil
}

func (lex *Lexicon) normalize() error {
	if strings.TrimSpace(lex.Version) == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidLexicon)
	}

	sets := []struct {
		name string
		set  *TermSet
	}{
		{"high", &lex.High},
		{"medium", &lex.Medium},
		{"crisis", &lex.Crisis},
	}
	for _, s := range sets {
		if s.set.Weight <= 0 {
			return fmt.Errorf("%w: %s weight must be positive", ErrInvalidLexicon, s.name)
		}
		seen := make(map[string]struct{}, len(s.set.Terms))
		for i, term := range s.set.Terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				return fmt.Errorf("%w: %s term %d is empty", ErrInvalidLexicon, s.name, i)
			}
			if _, dup := seen[term]; dup {
				return fmt.Errorf("%w: %s term %q is duplicated", ErrInvalidLexicon, s.name, term)
			}
			seen[term] = struct{}{}
			s.set.Terms[i] = term
		}
	}

	th := lex.Thresholds
	if !(th.Critical.MinScore > th.High.MinScore && th.High.MinScore > th.Medium.MinScore && th.Medium.MinScore > 0) {
		return fmt.Errorf("%w: thresholds must be strictly descending and positive (critical=%d high=%d medium=%d)",
			ErrInvalidLexicon, th.Critical.MinScore, th.High.MinScore, th.Medium.MinScore)
	}
	return nil
}
