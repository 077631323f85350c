package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validator opakowuje go-playground/validator pod interfejs echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
