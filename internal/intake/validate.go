package intake

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"hireboard/internal/domain/candidate"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

// ValidationError carries one message per failing field.
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return ErrValidation.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Check validates data and keeps only failures for the given fields. With
// no fields every rule applies. Text fields are checked trimmed, so a
// whitespace-only value counts as missing.
func (v *Validator) Check(data candidate.NewCandidate, fields ...Field) *ValidationError {
	err := v.v.Struct(trimmed(data))
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: map[Field]string{"": err.Error()}}
	}

	want := map[Field]bool{}
	for _, f := range fields {
		want[f] = true
	}

	out := map[Field]string{}
	for _, fe := range verrs {
		f := Field(fe.Field())
		if len(want) > 0 && !want[f] {
			continue
		}
		if _, seen := out[f]; seen {
			continue
		}
		out[f] = messageFor(f, fe.Tag())
	}
	if len(out) == 0 {
		return nil
	}
	return &ValidationError{Fields: out}
}

func trimmed(data candidate.NewCandidate) candidate.NewCandidate {
	data.Name = strings.TrimSpace(data.Name)
	data.Email = strings.TrimSpace(data.Email)
	data.Phone = strings.TrimSpace(data.Phone)
	data.Location = strings.TrimSpace(data.Location)
	data.LinkedInURL = strings.TrimSpace(data.LinkedInURL)
	data.Notes = strings.TrimSpace(data.Notes)
	return data
}

func messageFor(f Field, tag string) string {
	switch tag {
	case "required":
		return label(f) + " is required"
	case "email":
		return "Please enter a valid email address"
	case "url":
		return "Please enter a valid LinkedIn URL"
	default:
		return label(f) + " is invalid"
	}
}

func label(f Field) string {
	switch f {
	case FieldLinkedInURL:
		return "LinkedIn URL"
	case "":
		return "Value"
	default:
		s := string(f)
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
