package availability

import (
	"testing"

	"hotelops/constants"
	apperrors "hotelops/errors"
	"hotelops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservation(id, roomID uint, start, end, status string) models.Reservation {
	return models.Reservation{
		ID:        id,
		RoomID:    roomID,
		StartDate: day(start),
		EndDate:   day(end),
		Status:    status,
	}
}

func TestOverlaps_HalfOpenRule(t *testing.T) {
	existing := []models.Reservation{
		reservation(1, 101, "2026-01-01", "2026-01-05", constants.ReservationStatusPending),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"overlapping tail", "2026-01-03", "2026-01-10", true},
		{"same day turnover after", "2026-01-05", "2026-01-10", false},
		{"same day turnover before", "2025-12-28", "2026-01-01", false},
		{"contained", "2026-01-02", "2026-01-03", true},
		{"containing", "2025-12-30", "2026-01-08", true},
		{"identical", "2026-01-01", "2026-01-05", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlaps(101, day(tt.start), day(tt.end), existing, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps_OnlyActiveReservationsParticipate(t *testing.T) {
	existing := []models.Reservation{
		reservation(1, 101, "2026-01-01", "2026-01-05", constants.ReservationStatusCheckedOut),
		reservation(2, 101, "2026-01-01", "2026-01-05", constants.ReservationStatusCancelled),
		reservation(3, 202, "2026-01-01", "2026-01-05", constants.ReservationStatusCheckedIn),
	}
	got, err := Overlaps(101, day("2026-01-02"), day("2026-01-04"), existing, nil)
	require.NoError(t, err)
	assert.False(t, got)

	existing = append(existing, reservation(4, 101, "2026-01-03", "2026-01-04", constants.ReservationStatusCheckedIn))
	got, err = Overlaps(101, day("2026-01-02"), day("2026-01-04"), existing, nil)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestOverlaps_ExcludeReservation(t *testing.T) {
	existing := []models.Reservation{
		reservation(1, 101, "2026-01-01", "2026-01-05", constants.ReservationStatusPending),
		reservation(2, 101, "2026-01-08", "2026-01-12", constants.ReservationStatusPending),
	}
	self := uint(1)

	// kéo dài trong khoảng trống
	got, err := Overlaps(101, day("2026-01-01"), day("2026-01-08"), existing, &self)
	require.NoError(t, err)
	assert.False(t, got)

	// chạm vào reservation khác
	got, err = Overlaps(101, day("2026-01-01"), day("2026-01-09"), existing, &self)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestOverlaps_InvalidRange(t *testing.T) {
	_, err := Overlaps(101, day("2026-01-05"), day("2026-01-01"), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestFindConflict_ReturnsConflictingReservation(t *testing.T) {
	existing := []models.Reservation{
		reservation(7, 101, "2026-01-01", "2026-01-05", constants.ReservationStatusPending),
	}
	conflict := FindConflict(101, DateRange{Start: day("2026-01-04"), End: day("2026-01-06")}, existing, nil)
	require.NotNil(t, conflict)
	assert.Equal(t, uint(7), conflict.ID)
}
