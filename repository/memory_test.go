package repository

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"hotelops/constants"
	apperrors "hotelops/errors"
	"hotelops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedRoom(t *testing.T, store *Store, number string) *models.Room {
	t.Helper()
	room := &models.Room{RoomNumber: number, RoomType: "Double", Capacity: 2, Price: 100}
	require.NoError(t, store.Rooms.Create(context.Background(), room))
	return room
}

func TestMemoryReservations_ConcurrentCreateOnlyOneWins(t *testing.T) {
	store := NewMemoryStore()
	room := seedRoom(t, store, "101")

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Reservations.Create(context.Background(), &models.Reservation{
				RoomID:    room.ID,
				StartDate: date("2026-01-03"),
				EndDate:   date("2026-01-05"),
			})
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrRoomUnavailable)
	}
	assert.Equal(t, 1, succeeded)
}

func TestMemoryReservations_BackToBackAllowed(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	room := seedRoom(t, store, "101")

	require.NoError(t, store.Reservations.Create(ctx, &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-03"), EndDate: date("2026-01-05")}))
	require.NoError(t, store.Reservations.Create(ctx, &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-05"), EndDate: date("2026-01-07")}))

	err := store.Reservations.Create(ctx, &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-04"), EndDate: date("2026-01-06")})
	assert.ErrorIs(t, err, apperrors.ErrRoomUnavailable)
}

func TestMemoryReservations_TransitionIsCompareAndSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	room := seedRoom(t, store, "101")

	res := &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-03"), EndDate: date("2026-01-05")}
	require.NoError(t, store.Reservations.Create(ctx, res))
	assert.Equal(t, constants.ReservationStatusPending, res.Status)

	res.Status = constants.ReservationStatusCheckedIn
	require.NoError(t, store.Reservations.Transition(ctx, res, constants.ReservationStatusPending))

	res.Status = constants.ReservationStatusCancelled
	err := store.Reservations.Transition(ctx, res, constants.ReservationStatusPending)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestMemoryReservations_SecondCheckInRejected(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	room := seedRoom(t, store, "101")

	first := &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-01"), EndDate: date("2026-01-03")}
	second := &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-03"), EndDate: date("2026-01-05")}
	require.NoError(t, store.Reservations.Create(ctx, first))
	require.NoError(t, store.Reservations.Create(ctx, second))

	first.Status = constants.ReservationStatusCheckedIn
	require.NoError(t, store.Reservations.Transition(ctx, first, constants.ReservationStatusPending))

	second.Status = constants.ReservationStatusCheckedIn
	err := store.Reservations.Transition(ctx, second, constants.ReservationStatusPending)
	assert.ErrorIs(t, err, apperrors.ErrRoomOccupied)
}

func TestMemoryReservations_UpdateExcludesItself(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	room := seedRoom(t, store, "101")

	res := &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-03"), EndDate: date("2026-01-05")}
	require.NoError(t, store.Reservations.Create(ctx, res))

	res.EndDate = date("2026-01-06")
	require.NoError(t, store.Reservations.Update(ctx, res))
	assert.Equal(t, date("2026-01-06"), res.EndDate)
}

func TestMemoryReservations_ListFilters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	room := seedRoom(t, store, "101")

	for _, rng := range [][2]string{{"2026-01-01", "2026-01-03"}, {"2026-01-03", "2026-01-05"}, {"2026-01-10", "2026-01-12"}} {
		require.NoError(t, store.Reservations.Create(ctx, &models.Reservation{RoomID: room.ID, StartDate: date(rng[0]), EndDate: date(rng[1])}))
	}

	from, to := date("2026-01-02"), date("2026-01-04")
	list, total, err := store.Reservations.List(ctx, ReservationFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	list, total, err = store.Reservations.List(ctx, ReservationFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	assert.Equal(t, date("2026-01-10"), list[0].StartDate)

	list, total, err = store.Reservations.List(ctx, ReservationFilter{Page: math.MaxInt / 2, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, list)

	customers, _, err := store.Customers.List(ctx, math.MaxInt/2, 100)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestMemoryMaintenance_FlagFollowsOpenIssues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	room := seedRoom(t, store, "201")

	first := &models.MaintenanceIssue{RoomID: room.ID, Description: "broken AC", ReportedDate: date("2026-01-01")}
	second := &models.MaintenanceIssue{RoomID: room.ID, Description: "leak", ReportedDate: date("2026-01-02")}
	require.NoError(t, store.Maintenance.Create(ctx, first))
	require.NoError(t, store.Maintenance.Create(ctx, second))

	got, err := store.Rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOnMaintenance)

	resolved := date("2026-01-03")
	first.ResolvedDate = &resolved
	require.NoError(t, store.Maintenance.Resolve(ctx, first))

	got, _ = store.Rooms.GetByID(ctx, room.ID)
	assert.True(t, got.IsOnMaintenance)

	second.ResolvedDate = &resolved
	require.NoError(t, store.Maintenance.Resolve(ctx, second))

	got, _ = store.Rooms.GetByID(ctx, room.ID)
	assert.False(t, got.IsOnMaintenance)

	assert.ErrorIs(t, store.Maintenance.Resolve(ctx, second), apperrors.ErrAlreadyResolved)
}

func TestMemoryMaintenance_IssueScopedToRoom(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	a := seedRoom(t, store, "201")
	b := seedRoom(t, store, "202")

	issue := &models.MaintenanceIssue{RoomID: a.ID, Description: "broken AC", ReportedDate: date("2026-01-01")}
	require.NoError(t, store.Maintenance.Create(ctx, issue))

	_, err := store.Maintenance.GetByID(ctx, b.ID, issue.ID)
	assert.ErrorIs(t, err, apperrors.ErrIssueNotFound)
}

func TestMemoryRooms_DeleteGuardedByActiveReservations(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	room := seedRoom(t, store, "101")

	res := &models.Reservation{RoomID: room.ID, StartDate: date("2026-01-03"), EndDate: date("2026-01-05")}
	require.NoError(t, store.Reservations.Create(ctx, res))
	assert.ErrorIs(t, store.Rooms.Delete(ctx, room.ID), apperrors.ErrRoomHasActiveBookings)

	res.Status = constants.ReservationStatusCancelled
	require.NoError(t, store.Reservations.Transition(ctx, res, constants.ReservationStatusPending))
	require.NoError(t, store.Rooms.Delete(ctx, room.ID))

	_, err := store.Rooms.GetByID(ctx, room.ID)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestMemoryRooms_UniqueNumberAndFilters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedRoom(t, store, "101")

	err := store.Rooms.Create(ctx, &models.Room{RoomNumber: "101", Capacity: 1})
	assert.ErrorIs(t, err, apperrors.ErrRoomNumberTaken)

	require.NoError(t, store.Rooms.Create(ctx, &models.Room{RoomNumber: "102", RoomType: "Suite", Capacity: 4, Price: 300, Features: []string{"Balcony", "Sea view"}}))

	rooms, err := store.Rooms.List(ctx, RoomFilter{RoomTypes: []string{"suite"}, MinCapacity: 3, Features: []string{"balcony"}})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "102", rooms[0].RoomNumber)
}
