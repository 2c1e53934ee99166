package validation

import (
	"errors"
	"testing"

	apperrors "freezestore/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,min=2"`
	RFC   string `json:"rfc" validate:"required,rfc"`
	Email string `json:"email" validate:"required,email"`
	Days  int    `json:"total_days" validate:"gte=1"`
}

func TestValidRFC(t *testing.T) {
	tests := []struct {
		rfc  string
		want bool
	}{
		{"ADN850123ABC", true},
		{"GOMA800101XY9", true},
		{"Ñ&A850123AB1", true},
		{"adn850123abc", false},
		{"AD850123ABC", false},
		{"ADN85012ABC", false},
		{"ADN850123AB", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRFC(tt.rfc), tt.rfc)
	}
}

func TestStruct_TranslatesWithJSONNames(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	err = Struct(v, &sample{Name: "A", RFC: "nope", Email: "x", Days: 0})
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Equal(t, "name must be at least 2", byField["name"])
	assert.Equal(t, "rfc must be a valid RFC (e.g., ADN850123ABC)", byField["rfc"])
	assert.Equal(t, "email must be a valid email address", byField["email"])
	assert.Equal(t, "total_days must be greater than or equal to 1", byField["total_days"])
}

func TestStruct_Valid(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, Struct(v, &sample{Name: "Alimentos", RFC: "ADN850123ABC", Email: "a@b.mx", Days: 3}))
}

func TestValidationErrors_AppError(t *testing.T) {
	appErr := ValidationErrors{{Field: "rfc", Message: "bad"}}.AppError("Invalid client input")

	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, 422, appErr.StatusCode())
	assert.Equal(t, []ValidationError{{Field: "rfc", Message: "bad"}}, appErr.Details["fields"])
}
