// Package contact holds the validation rules of the contact form.
package contact

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/liangshaojie/portfolio/i18n"
)

// ErrInvalid is returned when a submission fails validation.
var ErrInvalid = errors.New("contact form has invalid fields")

// Field names used by the form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Rule is a validator tag plus the translation key shown when it fails.
type Rule struct {
	Tag      string
	ErrorKey i18n.Key
}

// local@domain.tld: no whitespace, one @, a dot somewhere after it.
// \s is ASCII only in RE2, so Unicode separators are excluded explicitly.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

var rules = map[string]Rule{
	FieldName:    {Tag: "required,min=2", ErrorKey: "contact.form.name.error"},
	FieldEmail:   {Tag: "required,contact_email", ErrorKey: "contact.form.email.error"},
	FieldMessage: {Tag: "required,min=10", ErrorKey: "contact.form.message.error"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// FieldState is the outcome of validating one field.
type FieldState struct {
	Name     string
	Value    string
	Valid    bool
	ErrorKey i18n.Key
}

// Check validates a field value by field name. Values are trimmed first.
// Fields without a rule are always valid.
func Check(name, value string) FieldState {
	value = strings.TrimSpace(value)
	state := FieldState{Name: name, Value: value, Valid: true}

	rule, ok := rules[name]
	if !ok {
		return state
	}
	if err := validate.Var(value, rule.Tag); err != nil {
		state.Valid = false
		state.ErrorKey = rule.ErrorKey
	}
	return state
}
