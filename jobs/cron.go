package jobs

import (
	"context"
	"time"

	"hotelops/services"

	"github.com/robfig/cron/v3"
)

const jobTimeout = time.Minute

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, app *services.Container) error {
	// 0h mỗi ngày: "hôm nay" đổi nên sơ đồ phòng đã cache không còn đúng
	if _, err := c.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := FlushBoardCache(ctx, app); err != nil {
			app.Logger.Error("Lỗi khi xóa cache sơ đồ phòng: %v", err)
		}
	}); err != nil {
		return err
	}

	// 7h mỗi ngày: báo cáo sự cố quá hạn
	if _, err := c.AddFunc("0 7 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if _, err := ReportOverdueIssues(ctx, app); err != nil {
			app.Logger.Error("Lỗi khi lấy danh sách sự cố quá hạn: %v", err)
		}
	}); err != nil {
		return err
	}

	c.Start()
	app.Logger.Info("Cron jobs initialized successfully")
	return nil
}

func FlushBoardCache(ctx context.Context, app *services.Container) error {
	app.Logger.Info("Đang xóa cache sơ đồ phòng lúc: %v", app.Clock.Now())
	return app.Availability.InvalidateBoard(ctx)
}

// ReportOverdueIssues ghi log các sự cố còn mở đã quá ngày dự kiến. Chỉ để
// nhắc nhở, trạng thái phòng không thay đổi.
func ReportOverdueIssues(ctx context.Context, app *services.Container) (int, error) {
	issues, err := app.Maintenance.ListOverdue(ctx)
	if err != nil {
		return 0, err
	}
	for _, issue := range issues {
		app.Logger.Info("Sự cố %d (phòng %d) quá hạn từ %s: %s",
			issue.ID, issue.RoomID, issue.EstimatedCompletionDate.Format("2006-01-02"), issue.Description)
	}
	return len(issues), nil
}
