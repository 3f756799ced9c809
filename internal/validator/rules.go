package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// registerCustomRules wires project-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return cardExpiryRe.MatchString(fl.Field().String())
	})
}
