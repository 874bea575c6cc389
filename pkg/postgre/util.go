package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// IsUUID validates if the given string is a valid UUID.
func IsUUID(u string) error {
	if u == "" {
		return fmt.Errorf("%w: UUID cannot be empty", ErrInvalidUUID)
	}
	if _, err := uuid.Parse(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}

// NewUUID generates a new UUID string.
func NewUUID() string {
	return uuid.New().String()
}

// NullString maps "" to SQL NULL.
func NullString(s string) null.String {
	return null.NewString(s, s != "")
}

// Where accumulates AND-ed conditions with positional ($n) arguments.
type Where struct {
	conds []string
	args  []any
}

// Add appends cond, where each "?" is replaced by the next placeholder.
func (w *Where) Add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

// Arg registers a trailing argument (such as LIMIT) and returns its placeholder.
func (w *Where) Arg(a any) string {
	w.args = append(w.args, a)
	return "$" + strconv.Itoa(len(w.args))
}

// SQL renders " WHERE ..." or "" when no condition was added.
func (w *Where) SQL() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *Where) Args() []any {
	return w.args
}
