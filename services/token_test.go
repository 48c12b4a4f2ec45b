package services

import (
	"testing"

	"hotelops/constants"
	"hotelops/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStaffToken(t *testing.T) {
	token, err := SignStaffToken(7, constants.RoleManager, "s3cret")
	require.NoError(t, err)

	claims, err := ParseStaffToken("Bearer "+token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, constants.RoleManager, claims.Role)

	_, err = ParseStaffToken(token, "other")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))

	_, err = ParseStaffToken("", "s3cret")
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))
}
