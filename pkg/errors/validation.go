package errors

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError describes every problem found with one request field.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// ValidationErrorCollector gathers field errors for a whole request body.
// Errors for the same field are merged into one entry.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

// Add records err, merging its messages into an existing entry for the same field.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	for _, e := range c.errors {
		if e.Field == err.Field {
			e.Messages = append(e.Messages, err.Messages...)
			return c
		}
	}
	c.errors = append(c.errors, err)
	return c
}

// Required flags a blank value.
func (c *ValidationErrorCollector) Required(code int, field, value string) *ValidationErrorCollector {
	if strings.TrimSpace(value) == "" {
		c.Add(NewValidationError(code, field, "is required"))
	}
	return c
}

// MaxRunes flags a value longer than max characters.
func (c *ValidationErrorCollector) MaxRunes(code int, field, value string, max int) *ValidationErrorCollector {
	if utf8.RuneCountInString(value) > max {
		c.Add(NewValidationError(code, field, fmt.Sprintf("must be at most %d characters", max)))
	}
	return c
}

func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

// Err returns c when something was collected and nil otherwise.
func (c *ValidationErrorCollector) Err() error {
	if !c.HasError() {
		return nil
	}
	return c
}

func (c *ValidationErrorCollector) Error() string {
	parts := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
