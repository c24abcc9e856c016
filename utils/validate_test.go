package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeRequest struct {
	VenueID   string `json:"venueId" validate:"required,uuid4"`
	ProductID string `json:"productId" validate:"required,uuid4"`
}

type deleteRequest struct {
	VenueID   string `json:"venueId" validate:"omitempty,uuid4"`
	ProductID string `json:"productId" validate:"omitempty,uuid4"`
}

func TestValidateStructReportsEveryFailingField(t *testing.T) {
	errs := ValidateStruct(storeRequest{VenueID: "not-a-uuid"})
	require.Len(t, errs, 2)
	assert.Equal(t, "venueId", errs[0].Field)
	assert.Equal(t, "venueId must be a valid version 4 UUID", errs[0].Message)
	assert.Equal(t, "productId", errs[1].Field)
	assert.Equal(t, "productId must not be empty", errs[1].Message)
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	errs := ValidateStruct(storeRequest{
		VenueID:   "2b3f8a44-31f0-4bfb-9b7a-0a8e5e8f1a01",
		ProductID: "9d6f2c58-7c1e-4d6a-8f2b-3c4d5e6f7a02",
	})
	assert.Nil(t, errs)
}

func TestValidateStructOptionalFields(t *testing.T) {
	assert.Nil(t, ValidateStruct(deleteRequest{}), "both fields may be absent")

	errs := ValidateStruct(deleteRequest{ProductID: "nope"})
	require.Len(t, errs, 1)
	assert.Equal(t, "productId", errs[0].Field)
}
