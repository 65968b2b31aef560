package validator

import (
	"testing"

	domainerrors "artisanconnect/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Title  string `form:"title" validate:"notblank,max=10"`
	Price  string `form:"price" validate:"required,positive_decimal"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=pending responded closed"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleForm{Title: "Mug", Price: "12.50", Email: "a@b.co", Status: "closed", Rating: 5})
	assert.NoError(t, err)
}

func TestValidate_ReportsFieldsByTagName(t *testing.T) {
	v := New()

	err := v.Validate(&sampleForm{Title: "   ", Price: "0", Email: "nope", Status: "archived", Rating: 6})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	assert.Equal(t, map[string]string{
		"title":  "is required",
		"price":  "must be a positive number",
		"email":  "must be a valid email address",
		"status": "must be one of pending, responded, closed",
		"rating": "must be at most 5",
	}, validationErr.Fields())
}

func TestValidate_PositiveDecimal(t *testing.T) {
	v := New()

	tests := []struct {
		price string
		valid bool
	}{
		{"1", true},
		{" 45.99 ", true},
		{"0.01", true},
		{"0", false},
		{"-3", false},
		{"twelve", false},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			err := v.Validate(&sampleForm{Title: "Mug", Price: tt.price, Rating: 3})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_StringLengthMessages(t *testing.T) {
	v := New()

	err := v.Validate(&sampleForm{Title: "a title that is too long", Price: "3", Rating: 0})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "must be at most 10 characters", validationErr.Fields()["title"])
	assert.Equal(t, "must be at least 1", validationErr.Fields()["rating"])
}
