package risk

import _ "embed"

//go:embed lexicon.yaml
var defaultLexicon []byte

//go:embed responses.yaml
var defaultResponses []byte
