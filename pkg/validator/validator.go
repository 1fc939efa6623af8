package validator

import "github.com/go-playground/validator/v10"

// Validator checks the `validate` tags on request structs.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}
