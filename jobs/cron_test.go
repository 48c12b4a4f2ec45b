package jobs

import (
	"context"
	"testing"
	"time"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/repository"
	"hotelops/services"
	"hotelops/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, today string) *services.Container {
	t.Helper()
	d, err := time.Parse(constants.DateLayout, today)
	require.NoError(t, err)
	return services.NewContainer(services.ContainerOptions{
		Store:  repository.NewMemoryStore(),
		Clock:  &services.FixedClock{At: d},
		Logger: logger.NewNopLogger(),
	})
}

func TestReportOverdueIssues(t *testing.T) {
	app := newApp(t, "2024-05-10")
	ctx := context.Background()

	room, err := app.Facade.CreateRoom(ctx, dto.RoomRequest{RoomNumber: "201", Capacity: 2})
	require.NoError(t, err)

	past := "2024-05-01"
	future := "2024-05-20"
	_, err = app.Facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "leak", EstimatedCompletionDate: &past, ReportedDate: &past})
	require.NoError(t, err)
	_, err = app.Facade.ReportIssue(ctx, room.ID, dto.ReportIssueRequest{Description: "paint", EstimatedCompletionDate: &future})
	require.NoError(t, err)

	n, err := ReportOverdueIssues(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	status, err := app.Availability.RoomStatus(ctx, room.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusUnderMaintenance, status.Status)
}

func TestInitCronJobs(t *testing.T) {
	app := newApp(t, "2024-05-10")
	c := cron.New()
	require.NoError(t, InitCronJobs(c, app))
	defer c.Stop()

	assert.Len(t, c.Entries(), 2)
	assert.NoError(t, FlushBoardCache(context.Background(), app))
}
