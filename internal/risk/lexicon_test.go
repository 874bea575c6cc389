package risk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, "1.0.0", lex.Version)
	assert.Equal(t, 10, lex.High.Weight)
	assert.Equal(t, 5, lex.Medium.Weight)
	assert.Equal(t, 8, lex.Crisis.Weight)
	assert.Equal(t, 20, lex.Thresholds.Critical.MinScore)
	assert.Equal(t, 15, lex.Thresholds.High.MinScore)
	assert.Equal(t, 8, lex.Thresholds.Medium.MinScore)
	assert.Len(t, lex.High.Terms, 22)
	assert.Len(t, lex.Medium.Terms, 17)
	assert.Len(t, lex.Crisis.Terms, 7)
	assert.Equal(t, "continue routine emotional/spiritual support", lex.LowAction)
}

const validLexicon = `
version: test
high: {weight: 10, terms: ["MORIR"]}
medium: {weight: 5, terms: ["triste"]}
crisis: {weight: 8, terms: ["estoy en crisis"]}
thresholds:
  critical: {min_score: 20, suggested_action: a}
  high: {min_score: 15, suggested_action: b}
  medium: {min_score: 8, suggested_action: c}
low_action: d
`

func TestParseLexicon(t *testing.T) {
	lex, err := ParseLexicon([]byte(validLexicon))
	require.NoError(t, err)
	assert.Equal(t, []string{"morir"}, lex.High.Terms)
}

func TestParseLexicon_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed yaml", data: "version: [unterminated"},
		{name: "missing version", data: `
high: {weight: 10, terms: [a]}
medium: {weight: 5, terms: [b]}
crisis: {weight: 8, terms: [c]}
thresholds: {critical: {min_score: 20}, high: {min_score: 15}, medium: {min_score: 8}}`},
		{name: "zero weight", data: `
version: x
high: {weight: 0, terms: [a]}
medium: {weight: 5, terms: [b]}
crisis: {weight: 8, terms: [c]}
thresholds: {critical: {min_score: 20}, high: {min_score: 15}, medium: {min_score: 8}}`},
		{name: "empty term", data: `
version: x
high: {weight: 10, terms: ["  "]}
medium: {weight: 5, terms: [b]}
crisis: {weight: 8, terms: [c]}
thresholds: {critical: {min_score: 20}, high: {min_score: 15}, medium: {min_score: 8}}`},
		{name: "duplicate term", data: `
version: x
high: {weight: 10, terms: [a, A]}
medium: {weight: 5, terms: [b]}
crisis: {weight: 8, terms: [c]}
thresholds: {critical: {min_score: 20}, high: {min_score: 15}, medium: {min_score: 8}}`},
		{name: "thresholds not descending", data: `
version: x
high: {weight: 10, terms: [a]}
medium: {weight: 5, terms: [b]}
crisis: {weight: 8, terms: [c]}
thresholds: {critical: {min_score: 15}, high: {min_score: 15}, medium: {min_score: 8}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLexicon([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLexicon)
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	t.Run("empty path uses embedded default", func(t *testing.T) {
		lex, err := LoadLexicon("")
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", lex.Version)
	})

	t.Run("reads override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validLexicon), 0o600))

		lex, err := LoadLexicon(path)
		require.NoError(t, err)
		assert.Equal(t, "test", lex.Version)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLexicon(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
