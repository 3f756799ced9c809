package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cardForm struct {
	Number string `json:"number" validate:"required,min=12,max=23"`
	Expiry string `json:"expiry" validate:"required,card_expiry"`
}

func TestValidate_CardExpiryRule(t *testing.T) {
	v := New()

	valid := []string{"01/25", "12/30", "09/99"}
	for _, expiry := range valid {
		err := v.Validate(&cardForm{Number: "4242424242424242", Expiry: expiry})
		assert.NoError(t, err, "expiry %q should pass", expiry)
	}

	invalid := []string{"13/25", "00/25", "1/25", "01-25", "0125", "01/2025"}
	for _, expiry := range invalid {
		err := v.Validate(&cardForm{Number: "4242424242424242", Expiry: expiry})
		assert.Error(t, err, "expiry %q should fail", expiry)
	}
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&cardForm{Number: "", Expiry: "01/25"})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "number")
	assert.NotContains(t, vErr.Errors, "Number")
}
