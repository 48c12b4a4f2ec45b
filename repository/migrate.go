package repository

import (
	"fmt"

	"hotelops/models"

	"gorm.io/gorm"
)

// Các ràng buộc mà AutoMigrate không tạo được. Exclusion constraint là chốt
// chặn cuối cùng chống đặt trùng phòng khi nhiều request chạy song song.
var constraintStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + constraintNoOverlap + `') THEN
			ALTER TABLE reservations ADD CONSTRAINT ` + constraintNoOverlap + `
				EXCLUDE USING gist (room_id WITH =, daterange(start_date, end_date, '[)') WITH &&)
				WHERE (status IN ('Pending', 'CheckedIn'));
		END IF;
	END $$`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + constraintValidRange + `') THEN
			ALTER TABLE reservations ADD CONSTRAINT ` + constraintValidRange + ` CHECK (start_date < end_date);
		END IF;
	END $$`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + constraintOneCheckedIn + ` ON reservations (room_id) WHERE status = 'CheckedIn'`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_issues_open ON maintenance_issues (room_id) WHERE resolved_date IS NULL`,
}

// Migrate tạo bảng và các ràng buộc
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Room{},
		&models.Reservation{},
		&models.MaintenanceIssue{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate constraint: %w", err)
		}
	}
	return nil
}
