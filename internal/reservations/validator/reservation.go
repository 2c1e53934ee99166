package validator

import (
	"fmt"
	"time"

	"freezestore/pkg/logger"
	"freezestore/pkg/model"
	"freezestore/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var startDateLayouts = []string{"2006-01-02", time.RFC3339}

type ReservationValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewReservationValidator(log *logger.Logger) *ReservationValidator {
	v, err := validation.New()
	if err != nil {
		log.Fatal("Failed to build reservation validator", "error", err)
	}
	return &ReservationValidator{validate: v, logger: log}
}

// ValidateCreate checks field rules plus the cross-field ones: a parseable start date and,
// when spaces are listed, exactly spaces_needed of them.
func (v *ReservationValidator) ValidateCreate(input *model.ReservationInput) error {
	var errs validation.ValidationErrors
	if err := validation.Struct(v.validate, input); err != nil {
		fieldErrs, ok := err.(validation.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if input.StartDate != "" {
		if _, err := ParseStartDate(input.StartDate); err != nil {
			errs = append(errs, validation.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a date (YYYY-MM-DD) or an RFC 3339 timestamp",
			})
		}
	}

	if len(input.SpaceIDs) > 0 && len(input.SpaceIDs) != input.SpacesNeeded {
		errs = append(errs, validation.ValidationError{
			Field:   "space_ids",
			Message: fmt.Sprintf("space_ids must list exactly %d spaces", input.SpacesNeeded),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *ReservationValidator) ValidateQuote(input *model.QuoteInput) error {
	return validation.Struct(v.validate, input)
}

func (v *ReservationValidator) ValidateExtend(input *model.ExtendInput) error {
	return validation.Struct(v.validate, input)
}

// ParseStartDate reads a calendar date as midnight UTC or a full RFC 3339 timestamp.
func ParseStartDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range startDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
