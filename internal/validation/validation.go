// Package validation checks raw request input against declarative schemas.
// Malformed business data is a normal outcome: Validate reports every failing
// field at once and never panics on bad input.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	CodeInvalidType   = "invalid_type"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeInvalidString = "invalid_string"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindNumber
)

type Field struct {
	Name     string
	Kind     Kind
	Optional bool

	// String bounds. MinLen of 1 doubles as "must not be empty".
	MinLen int
	MaxLen int

	Pattern        *regexp.Regexp
	PatternMessage string

	// Numeric bounds, inclusive.
	Min float64
	Max float64
}

type Schema struct {
	Fields []Field
}

// Validate checks in against the schema and returns the coerced value set:
// strings stay strings, KindInt becomes int, KindNumber becomes float64.
// Fields absent from optional slots are absent from the result. Unknown input
// keys are dropped. On failure the full error list is returned and the value
// set is nil.
func (s Schema) Validate(in map[string]any) (map[string]any, []FieldError) {
	out := make(map[string]any, len(s.Fields))
	var errs []FieldError

	for _, f := range s.Fields {
		raw, present := in[f.Name]
		if !present || raw == nil {
			if !f.Optional {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s is required", f.Name),
					Code:    CodeInvalidType,
				})
			}
			continue
		}

		switch f.Kind {
		case KindString:
			v, ok := raw.(string)
			if !ok {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s must be a string", f.Name),
					Code:    CodeInvalidType,
				})
				continue
			}
			if fe := f.checkString(v); fe != nil {
				errs = append(errs, *fe)
				continue
			}
			out[f.Name] = v

		case KindInt:
			n, ok := asNumber(raw)
			if !ok || n != math.Trunc(n) {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s must be an integer", f.Name),
					Code:    CodeInvalidType,
				})
				continue
			}
			if fe := f.checkRange(n); fe != nil {
				errs = append(errs, *fe)
				continue
			}
			out[f.Name] = int(n)

		case KindNumber:
			n, ok := asNumber(raw)
			if !ok {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s must be a number", f.Name),
					Code:    CodeInvalidType,
				})
				continue
			}
			if fe := f.checkRange(n); fe != nil {
				errs = append(errs, *fe)
				continue
			}
			out[f.Name] = n
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (f Field) checkString(v string) *FieldError {
	if len(v) < f.MinLen {
		msg := fmt.Sprintf("%s must be at least %d characters", f.Name, f.MinLen)
		if f.MinLen == 1 {
			msg = fmt.Sprintf("%s must not be empty", f.Name)
		}
		return &FieldError{Field: f.Name, Message: msg, Code: CodeTooSmall}
	}
	if f.MaxLen > 0 && len(v) > f.MaxLen {
		return &FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s must not exceed %d characters", f.Name, f.MaxLen),
			Code:    CodeTooBig,
		}
	}
	if f.Pattern != nil && !f.Pattern.MatchString(v) {
		return &FieldError{Field: f.Name, Message: f.PatternMessage, Code: CodeInvalidString}
	}
	return nil
}

func (f Field) checkRange(n float64) *FieldError {
	if n < f.Min {
		return &FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s must not be less than %s", f.Name, trimFloat(f.Min)),
			Code:    CodeTooSmall,
		}
	}
	if n > f.Max {
		return &FieldError{
			Field:   f.Name,
			Message: fmt.Sprintf("%s must not exceed %s", f.Name, trimFloat(f.Max)),
			Code:    CodeTooBig,
		}
	}
	return nil
}

// asNumber accepts the numeric types a decoded JSON body or a test fixture
// can carry.
func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	}
	return 0, false
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
