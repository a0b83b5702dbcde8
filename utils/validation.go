package utils

import (
	"github.com/go-playground/validator/v10"
)

const maxPropertyIDLength = 64

// IsValidPropertyID accepts the ids the stores hand out: numeric demo ids,
// Mongo hex ids and UUIDs.
func IsValidPropertyID(id string) bool {
	if id == "" || len(id) > maxPropertyIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// RequestValidator plugs go-playground/validator into echo's c.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
