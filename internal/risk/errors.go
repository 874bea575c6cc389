package risk

import "errors"

var (
	ErrInvalidLexicon   = errors.New("invalid risk lexicon")
	ErrInvalidResponses = errors.New("invalid response catalog")
)
