package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var clockTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// RegisterCustomRules installs the application's custom binding rules on
// gin's validator engine. Call once at startup.
func RegisterCustomRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("clocktime", clockTime)
}

// clockTime accepts appointment times of the form "HH:MM" (24h clock).
func clockTime(fl validator.FieldLevel) bool {
	return clockTimeRe.MatchString(fl.Field().String())
}

// IsClockTime reports whether s is a valid "HH:MM" time string. Exposed
// for call sites outside request binding.
func IsClockTime(s string) bool {
	return clockTimeRe.MatchString(s)
}
