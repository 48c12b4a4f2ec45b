package models

import "time"

// MaintenanceIssue sự cố bảo trì của phòng. Không bao giờ xóa cứng.
type MaintenanceIssue struct {
	ID                      uint       `json:"id" gorm:"primaryKey"`
	RoomID                  uint       `json:"roomId" gorm:"index;not null"`
	Description             string     `json:"description" gorm:"type:text;not null"`
	EstimatedCompletionDate *time.Time `json:"estimatedCompletionDate" gorm:"type:date"` // chỉ mang tính tham khảo
	ReportedDate            time.Time  `json:"reportedDate" gorm:"type:date;not null"`
	ResolvedDate            *time.Time `json:"resolvedDate" gorm:"type:date;index"`
	ResolutionNote          string     `json:"resolutionNote"`
	CreatedAt               time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt               time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (i *MaintenanceIssue) IsOpen() bool {
	return i.ResolvedDate == nil
}

// OpenOn: đã báo trước hoặc trong ngày d và chưa được xử lý tại ngày d
func (i *MaintenanceIssue) OpenOn(d time.Time) bool {
	if i.ReportedDate.After(d) {
		return false
	}
	return i.ResolvedDate == nil || i.ResolvedDate.After(d)
}

// IsOverdue: còn mở và đã quá ngày dự kiến hoàn thành
func (i *MaintenanceIssue) IsOverdue(today time.Time) bool {
	return i.IsOpen() && i.EstimatedCompletionDate != nil && i.EstimatedCompletionDate.Before(today)
}
