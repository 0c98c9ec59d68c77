// Package validation holds the custom struct tags shared by the HTTP handlers and the CLI.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// TagName is the struct tag gin validates
const TagName = "binding"

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	hhmmPattern  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Register adds the phone and hhmm tags to v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
}

// IsHHMM reports whether value is a 24-hour HH:MM time
func IsHHMM(value string) bool {
	return hhmmPattern.MatchString(value)
}

// New returns a validator reading the binding tag with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName(TagName)
	_ = Register(v)
	return v
}
