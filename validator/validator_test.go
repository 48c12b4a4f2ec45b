package validator

import (
	"testing"

	"hotelops/dto"
	"hotelops/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		err := ValidateStruct(dto.CreateReservationRequest{StartDate: "2024-05-01"})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
		assert.Equal(t, errors.KindValidation, errors.GetAppError(err).Kind)
	})

	t.Run("bad enum", func(t *testing.T) {
		err := ValidateStruct(dto.RoomListQuery{Status: "Dirty"})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
		assert.Contains(t, err.Error(), "Status")
	})

	t.Run("valid", func(t *testing.T) {
		err := ValidateStruct(dto.RoomRequest{RoomNumber: "101", Capacity: 2, Features: []string{"wifi"}})
		assert.NoError(t, err)
	})

	t.Run("bad email", func(t *testing.T) {
		err := ValidateStruct(dto.CustomerRequest{FullName: "A", Email: "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})
}
