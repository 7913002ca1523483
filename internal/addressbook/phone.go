package addressbook

import (
	"github.com/go-playground/validator/v10"
)

const phoneRule = "len=10,number"

var validate = validator.New()

// Phone is a number of exactly ten decimal digits
type Phone struct {
	value string
}

// NewPhone validates value and wraps it
func NewPhone(value string) (*Phone, error) {
	if !IsValidPhone(value) {
		return nil, invalidPhone(value)
	}
	return &Phone{value: value}, nil
}

// IsValidPhone reports whether candidate is exactly ten ASCII digits
func IsValidPhone(candidate string) bool {
	return validate.Var(candidate, phoneRule) == nil
}

func (p *Phone) Value() string  { return p.value }
func (p *Phone) String() string { return p.value }

func invalidPhone(value string) error {
	return &ValidationError{Field: "phone", Value: value, Message: "Incorrect phone format."}
}
