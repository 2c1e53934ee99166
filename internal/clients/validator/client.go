package validator

import (
	"freezestore/pkg/logger"
	"freezestore/pkg/model"
	"freezestore/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type ClientValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewClientValidator(log *logger.Logger) *ClientValidator {
	v, err := validation.New()
	if err != nil {
		log.Fatal("Failed to build client validator", "error", err)
	}
	return &ClientValidator{validate: v, logger: log}
}

// Validate expects sanitized input.
func (v *ClientValidator) Validate(input *model.ClientInput) error {
	return validation.Struct(v.validate, input)
}
