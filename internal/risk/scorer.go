package risk

import (
	"strings"

	"crisis-alert-srv/internal/model"
)

// Scorer classifies free text against a Lexicon. It holds no mutable state and is
// safe for concurrent use.
type Scorer struct {
	lex *Lexicon
}

// NewScorer returns a Scorer over lex. A nil lex uses the embedded default.
func NewScorer(lex *Lexicon) *Scorer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Scorer{lex: lex}
}

// Lexicon returns the lexicon in use.
func (s *Scorer) Lexicon() *Lexicon {
	return s.lex
}

// Assess scores a message. Matching is case-insensitive substring search with no
// tokenization or negation handling, so "no estoy triste" still matches "triste".
// Every matching term contributes its set's weight once.
func (s *Scorer) Assess(message string) model.RiskAssessment {
	text := strings.ToLower(message)
	score := 0
	triggers := make([]string, 0)

	for _, set := range []TermSet{s.lex.High, s.lex.Medium, s.lex.Crisis} {
		for _, term := range set.Terms {
			if strings.Contains(text, term) {
				score += set.Weight
				triggers = append(triggers, term)
			}
		}
	}

	level, action := s.lex.Classify(score)
	return model.RiskAssessment{
		Level:                level,
		Score:                score,
		Triggers:             triggers,
		RequiresIntervention: level.RequiresIntervention(),
		SuggestedAction:      action,
		LexiconVersion:       s.lex.Version,
	}
}

// Classify maps a score to its level and suggested action.
func (lex *Lexicon) Classify(score int) (model.RiskLevel, string) {
	th := lex.Thresholds
	switch {
	case score >= th.Critical.MinScore:
		return model.RiskLevelCritical, th.Critical.SuggestedAction
	case score >= th.High.MinScore:
		return model.RiskLevelHigh, th.High.SuggestedAction
	case score >= th.Medium.MinScore:
		return model.RiskLevelMedium, th.Medium.SuggestedAction
	default:
		return model.RiskLevelLow, lex.LowAction
	}
}
