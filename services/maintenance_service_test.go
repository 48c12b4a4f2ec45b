package services

import (
	"context"
	"testing"

	"hotelops/constants"
	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Room 201: ngày dự kiến đã qua nhưng phòng vẫn bảo trì cho tới khi Resolve
func TestMaintenance_Room201PastEstimate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "2026-01-10")
	room := env.room(t, "201", "Suite", 4, 300)

	issue, err := env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{
		Description:             "broken AC",
		EstimatedCompletionDate: strPtr("2026-01-05"),
	})
	require.NoError(t, err)
	assert.Equal(t, day("2026-01-10"), issue.ReportedDate)

	status, err := env.availability.RoomStatus(ctx, room.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusUnderMaintenance, status.Status)
	require.NotNil(t, status.Maintenance)
	assert.Equal(t, "broken AC", status.Maintenance.Description)
	require.NotNil(t, status.Maintenance.EstimatedCompletionDate)
	assert.Equal(t, "2026-01-05", *status.Maintenance.EstimatedCompletionDate)

	overdue, err := env.maintenance.ListOverdue(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, issue.ID, overdue[0].ID)

	env.setToday("2026-01-20")
	status, err = env.availability.RoomStatus(ctx, room.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusUnderMaintenance, status.Status)

	_, err = env.facade.ResolveIssue(ctx, room.ID, issue.ID, dto.ResolveIssueRequest{Note: "compressor replaced"})
	require.NoError(t, err)

	status, err = env.availability.RoomStatus(ctx, room.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, status.Status)

	overdue, err = env.maintenance.ListOverdue(ctx)
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestMaintenance_ResolveIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "2026-01-10")
	room := env.room(t, "201", "Suite", 4, 300)

	issue, err := env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "leak"})
	require.NoError(t, err)

	resolved, err := env.facade.ResolveIssue(ctx, room.ID, issue.ID, dto.ResolveIssueRequest{})
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedDate)
	assert.Equal(t, day("2026-01-10"), *resolved.ResolvedDate)

	_, err = env.facade.ResolveIssue(ctx, room.ID, issue.ID, dto.ResolveIssueRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyResolved)
}

func TestMaintenance_Errors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "2026-01-10")
	room := env.room(t, "201", "Suite", 4, 300)
	other := env.room(t, "202", "Suite", 4, 300)

	_, err := env.facade.ReportIssue(ctx, 999, dto.ReportIssueRequest{Description: "leak"})
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)

	_, err = env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "   "})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRequiredField))

	_, err = env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "leak", EstimatedCompletionDate: strPtr("soon")})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat))

	issue, err := env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "leak"})
	require.NoError(t, err)

	_, err = env.facade.ResolveIssue(ctx, other.ID, issue.ID, dto.ResolveIssueRequest{})
	assert.ErrorIs(t, err, apperrors.ErrIssueNotFound)

	_, err = env.facade.ResolveIssue(ctx, room.ID, 999, dto.ResolveIssueRequest{})
	assert.ErrorIs(t, err, apperrors.ErrIssueNotFound)

	_, err = env.facade.ResolveIssue(ctx, room.ID, issue.ID, dto.ResolveIssueRequest{ResolvedDate: strPtr("2026-01-01")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestMaintenance_RoomStaysUnderMaintenanceUntilLastIssueResolved(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "2026-01-10")
	room := env.room(t, "201", "Suite", 4, 300)

	first, err := env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "leak"})
	require.NoError(t, err)
	second, err := env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "paint"})
	require.NoError(t, err)

	_, err = env.facade.ResolveIssue(ctx, room.ID, first.ID, dto.ResolveIssueRequest{})
	require.NoError(t, err)

	status, err := env.availability.RoomStatus(ctx, room.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusUnderMaintenance, status.Status)
	assert.Equal(t, second.ID, status.Maintenance.IssueID)

	open, err := env.maintenance.ListByRoom(ctx, room.ID, true)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	all, err := env.maintenance.ListByRoom(ctx, room.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = env.facade.ResolveIssue(ctx, room.ID, second.ID, dto.ResolveIssueRequest{})
	require.NoError(t, err)

	got, err := env.rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOnMaintenance)
}

func TestMaintenance_BeatsCheckedInGuest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "2026-01-02")
	room := env.room(t, "101", "Double", 2, 100)
	guest := env.customer(t, "Guest")

	r, err := env.book(room.ID, guest.ID, "2026-01-01", "2026-01-05")
	require.NoError(t, err)
	_, err = env.facade.CheckIn(ctx, r.ID)
	require.NoError(t, err)
	_, err = env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "leak"})
	require.NoError(t, err)

	status, err := env.availability.RoomStatus(ctx, room.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusUnderMaintenance, status.Status)
	assert.Nil(t, status.Occupant)
}

// Ngày báo/xử lý trong tương lai bị từ chối, các view luôn thống nhất
func TestMaintenance_RejectsFutureDates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "2026-01-10")
	room := env.room(t, "301", "Double", 2, 100)

	_, err := env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{
		Description:  "broken lamp",
		ReportedDate: strPtr("2026-03-01"),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidDateRange))

	issue, err := env.facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "broken lamp"})
	require.NoError(t, err)

	_, err = env.facade.ResolveIssue(ctx, room.ID, issue.ID, dto.ResolveIssueRequest{ResolvedDate: strPtr("2026-02-01")})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidDateRange))

	open, err := env.maintenance.ListByRoom(ctx, room.ID, true)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	_, err = env.facade.ResolveIssue(ctx, room.ID, issue.ID, dto.ResolveIssueRequest{ResolvedDate: strPtr("2026-01-10")})
	require.NoError(t, err)

	now, err := env.availability.RoomStatus(ctx, room.ID, nil)
	require.NoError(t, err)
	today := day("2026-01-10")
	board, err := env.availability.BoardStatus(ctx, &today, dto.RoomSearchFilters{})
	require.NoError(t, err)
	require.Len(t, board.Rooms, 1)
	rng, err := availability.NewDateRange(today, day("2026-01-11"))
	require.NoError(t, err)
	available, err := env.availability.FindAvailableRooms(ctx, rng, dto.RoomSearchFilters{})
	require.NoError(t, err)

	assert.Equal(t, constants.RoomStatusAvailable, now.Status)
	assert.Equal(t, constants.RoomStatusAvailable, board.Rooms[0].Status)
	assert.Len(t, available, 1)
}
