package models

import (
	"testing"
	"time"

	"hotelops/constants"
	apperrors "hotelops/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStateTransitions(t *testing.T) {
	at := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)

	r := &Reservation{Status: constants.ReservationStatusPending}
	assert.True(t, apperrors.HasCode(GetReservationState(r.Status).CheckOut(r, at), apperrors.ErrCodeInvalidTransition))

	require.NoError(t, GetReservationState(r.Status).CheckIn(r, at))
	assert.Equal(t, constants.ReservationStatusCheckedIn, r.Status)
	assert.Equal(t, &at, r.CheckedInAt)
	assert.True(t, apperrors.HasCode(GetReservationState(r.Status).CheckIn(r, at), apperrors.ErrCodeInvalidTransition))

	require.NoError(t, GetReservationState(r.Status).CheckOut(r, at))
	assert.Equal(t, constants.ReservationStatusCheckedOut, r.Status)
	assert.False(t, r.IsActive())

	for _, action := range []func(ReservationState) error{
		func(s ReservationState) error { return s.CheckIn(r, at) },
		func(s ReservationState) error { return s.CheckOut(r, at) },
		func(s ReservationState) error { return s.Cancel(r, at, "x") },
	} {
		assert.ErrorIs(t, action(GetReservationState(r.Status)), apperrors.ErrInvalidTransition)
	}
}

func TestReservationCancelKeepsReason(t *testing.T) {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	r := &Reservation{Status: constants.ReservationStatusPending}
	require.NoError(t, GetReservationState(r.Status).Cancel(r, at, "no show"))
	assert.Equal(t, constants.ReservationStatusCancelled, r.Status)
	assert.Equal(t, "no show", r.CancelReason)
}

func TestRoomHasFeatures(t *testing.T) {
	room := Room{Features: []string{"WiFi", "Balcony"}}
	assert.True(t, room.HasFeatures([]string{"wifi"}))
	assert.False(t, room.HasFeatures([]string{"wifi", "bathtub"}))
}
