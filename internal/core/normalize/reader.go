package normalize

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/farmhand/internal/core/farmerr"
)

// Reader pulls typed values out of a canonical record, collecting a field
// error for every value that fails to coerce or violates a basic bound.
type Reader struct {
	rec  map[string]any
	errs []farmerr.FieldError
}

// NewReader returns a Reader over rec.
func NewReader(rec map[string]any) *Reader {
	return &Reader{rec: rec}
}

// Fail records a field error.
func (r *Reader) Fail(field, message string) {
	r.errs = append(r.errs, farmerr.FieldError{Field: field, Message: message})
}

// Failed reports whether field already carries an error.
func (r *Reader) Failed(field string) bool {
	for _, e := range r.errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Errors returns the collected field errors in the order they were found.
func (r *Reader) Errors() []farmerr.FieldError {
	return r.errs
}

// Text returns the trimmed text of field, or "" when absent.
func (r *Reader) Text(field string) string {
	return strings.TrimSpace(String(r.rec[field]))
}

// RequiredText is Text that fails on blank values.
func (r *Reader) RequiredText(field string) string {
	s := r.Text(field)
	if s == "" {
		r.Fail(field, "is required")
	}
	return s
}

// OneOf is RequiredText restricted to allowed.
func (r *Reader) OneOf(field string, allowed []string) string {
	s := r.RequiredText(field)
	if s != "" && !slices.Contains(allowed, s) {
		r.Fail(field, "must be one of "+strings.Join(allowed, ", "))
	}
	return s
}

// PositiveDecimal reads a decimal that must be greater than zero.
func (r *Reader) PositiveDecimal(field string) decimal.Decimal {
	d, err := Decimal(r.rec[field])
	if err != nil {
		r.Fail(field, "must be a positive number")
		return decimal.Zero
	}
	if !d.IsPositive() {
		r.Fail(field, "must be a positive number")
	}
	return d
}

// Int reads a whole number. It reports false when the value is missing or
// malformed; the error has already been recorded.
func (r *Reader) Int(field string) (int, bool) {
	n, err := Int(r.rec[field])
	if err != nil {
		r.Fail(field, "must be a whole number")
		return 0, false
	}
	return n, true
}

// FK reads a required foreign key.
func (r *Reader) FK(field string) int64 {
	id, err := ParseFK(r.rec[field])
	if err != nil {
		r.Fail(field, "must reference an existing record by numeric id")
		return 0
	}
	return id
}

// OptionalFK reads a nullable foreign key; 0 means none.
func (r *Reader) OptionalFK(field string) int64 {
	id, err := OptionalFK(r.rec[field])
	if err != nil {
		r.Fail(field, "must be a numeric id or empty")
		return 0
	}
	return id
}

// Date reads a date kept in its raw text form. A present value must parse;
// required additionally rejects blanks.
func (r *Reader) Date(field string, required bool) string {
	s := r.Text(field)
	switch {
	case s == "" && required:
		r.Fail(field, "is required")
	case s != "" && !ValidDate(s):
		r.Fail(field, "must be a valid date")
	}
	return s
}

// Bool reads a boolean flag; absent means false.
func (r *Reader) Bool(field string) bool {
	return Bool(r.rec[field])
}
