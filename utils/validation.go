package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var lengthValidator = validator.New()

// Rule transforms or checks one raw field value. A failed check returns the
// value unchanged together with the message to report.
type Rule func(value string) (string, error)

// FieldError is one field-attributed rejection.
type FieldError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Value    string `json:"value"`
	Location string `json:"location"`
}

// ValidationErrors collects every failure found in a request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// FieldRules is the ordered rule chain for a single body field.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Schema is the list of field chains applied to one request body.
type Schema []FieldRules

// Validate runs every chain to the end and returns the cleaned values. All
// failures are collected; a failing rule does not stop the rest of the chain.
func (s Schema) Validate(input map[string]string) (map[string]string, ValidationErrors) {
	clean := make(map[string]string, len(s))
	var errs ValidationErrors
	for _, fr := range s {
		value := input[fr.Field]
		for _, rule := range fr.Rules {
			next, err := rule(value)
			if err != nil {
				errs = append(errs, FieldError{
					Field:    fr.Field,
					Message:  err.Error(),
					Value:    value,
					Location: "body",
				})
				continue
			}
			value = next
		}
		clean[fr.Field] = value
	}
	return clean, errs
}

func Trim(value string) (string, error) {
	return strings.TrimSpace(value), nil
}

// MinLength fails with msg when value has fewer than n characters.
func MinLength(n int, msg string) Rule {
	tag := fmt.Sprintf("min=%d", n)
	return func(value string) (string, error) {
		if err := lengthValidator.Var(value, tag); err != nil {
			return value, errors.New(msg)
		}
		return value, nil
	}
}

// MaxLength fails with msg when value has more than n characters.
func MaxLength(n int, msg string) Rule {
	tag := fmt.Sprintf("max=%d", n)
	return func(value string) (string, error) {
		if err := lengthValidator.Var(value, tag); err != nil {
			return value, errors.New(msg)
		}
		return value, nil
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces HTML-significant characters with entities.
func Escape(value string) (string, error) {
	return htmlEscaper.Replace(value), nil
}
