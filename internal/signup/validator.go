package signup

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/solstice-id/solstice-id/internal/i18n"
)

// fieldOrder fixes the serialization order of field errors.
var fieldOrder = []string{"username", "email", "password"}

// messageKeys maps field/failed-tag pairs to message table keys. Within a
// field the first failing tag wins, so tag order in the struct decides rule
// precedence (the password character-mix check runs before the length check).
var messageKeys = map[string]string{
	"username/required":     i18n.MsgUsernameRequired,
	"username/min":          i18n.MsgUsernameSize,
	"username/max":          i18n.MsgUsernameSize,
	"email/required":        i18n.MsgEmailRequired,
	"email/basic_email":     i18n.MsgEmailInvalid,
	"password/required":     i18n.MsgPasswordRequired,
	"password/password_mix": i18n.MsgPasswordMix,
	"password/min":          i18n.MsgPasswordSize,
}

// local@domain with at least one dot in the domain part.
var basicEmailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator evaluates signup field rules and localizes the outcome.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator with the signup rule set registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return basicEmailRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password_mix", func(fl validator.FieldLevel) bool {
		var upper, lower, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return upper && lower && digit
	})
	return &Validator{validate: v}
}

// Check evaluates all three fields independently and returns the first
// failing rule per field, localized. A clean request yields an empty map.
// Malformed input is a normal outcome here, never an error.
func (v *Validator) Check(req SignupRequest, locale string) map[string]string {
	fieldErrs := make(map[string]string)
	err := v.validate.Struct(req)
	if err == nil {
		return fieldErrs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct values cannot trigger InvalidValidationError.
		return fieldErrs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := fieldErrs[field]; seen {
			continue
		}
		key, ok := messageKeys[field+"/"+fe.Tag()]
		if !ok {
			continue
		}
		fieldErrs[field] = i18n.Message(locale, key)
	}
	return fieldErrs
}

// orderFieldErrors projects a field->message map onto the fixed field order.
func orderFieldErrors(m map[string]string) FieldErrors {
	out := make(FieldErrors, 0, len(m))
	for _, field := range fieldOrder {
		if msg, ok := m[field]; ok {
			out = append(out, FieldError{Field: field, Message: msg})
		}
	}
	return out
}
