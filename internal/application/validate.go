package application

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError is one failed check on a draft record.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures so handlers can surface
// every problem at once instead of a single blocking message.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type draftCheck struct {
	errs []FieldError
}

func (d *draftCheck) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		d.errs = append(d.errs, FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)})
	}
}

func (d *draftCheck) reference(field string, id int64) {
	if id <= 0 {
		d.errs = append(d.errs, FieldError{Field: field, Message: fmt.Sprintf("%s must be selected", field)})
	}
}

func (d *draftCheck) email(field, value string) {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		d.errs = append(d.errs, FieldError{Field: field, Message: fmt.Sprintf("%s must be a valid email address", field)})
	}
}

func (d *draftCheck) oneOf(field, value string, valid func(string) bool, hint string) {
	if !valid(value) {
		d.errs = append(d.errs, FieldError{Field: field, Message: fmt.Sprintf("%s must be one of [%s]", field, hint)})
	}
}

func (d *draftCheck) result() error {
	if len(d.errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: d.errs}
}
