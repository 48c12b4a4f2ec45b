package repository

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"hotelops/constants"
	apperrors "hotelops/errors"
	"hotelops/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewPostgresStore tạo Store dùng gorm
func NewPostgresStore(db *gorm.DB) *Store {
	return &Store{
		Rooms:        &RoomRepo{db: db},
		Reservations: &ReservationRepo{db: db},
		Maintenance:  &MaintenanceRepo{db: db},
		Customers:    &CustomerRepo{db: db},
	}
}

// sqlDate định dạng ngày để so sánh với cột kiểu date, tránh phụ thuộc
// TimeZone của session.
func sqlDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// lockRoom khóa dòng room cho tới hết transaction, tuần tự hóa mọi thao tác ghi trên cùng phòng
func lockRoom(tx *gorm.DB, roomID uint) error {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrRoomNotFound
	}
	return err
}

func ensureNoOverlap(tx *gorm.DB, roomID uint, start, end time.Time, excludeID uint) error {
	query := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ?", roomID, models.ActiveStatuses()).
		Where("start_date < CAST(? AS date) AND end_date > CAST(? AS date)", sqlDate(end), sqlDate(start))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrRoomUnavailable
	}
	return nil
}

// ---------------------------------------------------------------- rooms

type RoomRepo struct {
	db *gorm.DB
}

func (r *RoomRepo) Create(ctx context.Context, room *models.Room) error {
	return translateError(r.db.WithContext(ctx).Create(room).Error, "không thể tạo phòng")
}

func (r *RoomRepo) Update(ctx context.Context, room *models.Room) error {
	result := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ?", room.ID).
		Select("room_number", "room_type", "floor", "capacity", "price", "features", "description").
		Updates(room)
	if result.Error != nil {
		return translateError(result.Error, "không thể cập nhật phòng")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, id); err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ? AND status IN ?", id, models.ActiveStatuses()).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return apperrors.ErrRoomHasActiveBookings
		}

		return tx.Delete(&models.Room{}, id).Error
	})
	return translateError(err, "không thể xóa phòng")
}

func (r *RoomRepo) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrRoomNotFound
	}
	if err != nil {
		return nil, translateError(err, "không thể lấy phòng")
	}
	return &room, nil
}

func (r *RoomRepo) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	query := r.db.WithContext(ctx).Model(&models.Room{})

	if len(filter.RoomTypes) > 0 {
		lowered := make([]string, 0, len(filter.RoomTypes))
		for _, t := range filter.RoomTypes {
			lowered = append(lowered, strings.ToLower(t))
		}
		query = query.Where("LOWER(room_type) IN ?", lowered)
	}
	if filter.Floor != nil {
		query = query.Where("floor = ?", *filter.Floor)
	}
	if filter.MinCapacity > 0 {
		query = query.Where("capacity >= ?", filter.MinCapacity)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var rooms []models.Room
	if err := query.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, translateError(err, "không thể lấy danh sách phòng")
	}

	// Tiện ích so khớp không phân biệt hoa thường nên lọc trong bộ nhớ
	if len(filter.Features) > 0 {
		filtered := rooms[:0]
		for _, room := range rooms {
			if room.HasFeatures(filter.Features) {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}
	return rooms, nil
}

// ---------------------------------------------------------- reservations

type ReservationRepo struct {
	db *gorm.DB
}

func (r *ReservationRepo) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrReservationNotFound
	}
	if err != nil {
		return nil, translateError(err, "không thể lấy reservation")
	}
	return &reservation, nil
}

func (r *ReservationRepo) List(ctx context.Context, filter ReservationFilter) ([]models.Reservation, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Reservation{})

	if filter.RoomID != nil {
		query = query.Where("room_id = ?", *filter.RoomID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ActiveOnly {
		query = query.Where("status IN ?", models.ActiveStatuses())
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.To != nil {
		query = query.Where("start_date < CAST(? AS date)", sqlDate(*filter.To))
	}
	if filter.From != nil {
		query = query.Where("end_date > CAST(? AS date)", sqlDate(*filter.From))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "không thể đếm reservation")
	}

	query = query.Order("start_date ASC, id ASC")
	if filter.Limit > 0 {
		if filter.Page < 0 || filter.Page > math.MaxInt32/filter.Limit {
			return []models.Reservation{}, total, nil
		}
		query = query.Offset(filter.Page * filter.Limit).Limit(filter.Limit)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, 0, translateError(err, "không thể lấy danh sách reservation")
	}
	return reservations, total, nil
}

func (r *ReservationRepo) ListActiveByRooms(ctx context.Context, roomIDs []uint) ([]models.Reservation, error) {
	query := r.db.WithContext(ctx).Where("status IN ?", models.ActiveStatuses())
	if len(roomIDs) > 0 {
		query = query.Where("room_id IN ?", roomIDs)
	}

	var reservations []models.Reservation
	if err := query.Order("start_date ASC").Find(&reservations).Error; err != nil {
		return nil, translateError(err, "không thể lấy reservation active")
	}
	return reservations, nil
}

func (r *ReservationRepo) ListForPeriod(ctx context.Context, roomIDs []uint, from, to time.Time) ([]models.Reservation, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? OR (status <> ? AND start_date < CAST(? AS date) AND end_date > CAST(? AS date))",
			constants.ReservationStatusCheckedIn, constants.ReservationStatusCancelled, sqlDate(to), sqlDate(from))
	if len(roomIDs) > 0 {
		query = query.Where("room_id IN ?", roomIDs)
	}

	var reservations []models.Reservation
	if err := query.Order("start_date ASC").Find(&reservations).Error; err != nil {
		return nil, translateError(err, "không thể lấy reservation theo kỳ")
	}
	return reservations, nil
}

func (r *ReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, reservation.RoomID); err != nil {
			return err
		}
		if err := ensureNoOverlap(tx, reservation.RoomID, reservation.StartDate, reservation.EndDate, 0); err != nil {
			return err
		}
		return tx.Create(reservation).Error
	})
	return translateError(err, "không thể tạo reservation")
}

func (r *ReservationRepo) Update(ctx context.Context, reservation *models.Reservation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, reservation.RoomID); err != nil {
			return err
		}
		if err := ensureNoOverlap(tx, reservation.RoomID, reservation.StartDate, reservation.EndDate, reservation.ID); err != nil {
			return err
		}

		result := tx.Model(&models.Reservation{}).
			Where("id = ? AND status = ?", reservation.ID, constants.ReservationStatusPending).
			Updates(map[string]interface{}{
				"room_id":          reservation.RoomID,
				"start_date":       reservation.StartDate,
				"end_date":         reservation.EndDate,
				"number_of_guests": reservation.NumberOfGuests,
				"price":            reservation.Price,
				"note":             reservation.Note,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrReservationNotEditable
		}
		return nil
	})
	return translateError(err, "không thể cập nhật reservation")
}

func (r *ReservationRepo) Transition(ctx context.Context, reservation *models.Reservation, fromStatus string) error {
	result := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("id = ? AND status = ?", reservation.ID, fromStatus).
		Updates(map[string]interface{}{
			"status":         reservation.Status,
			"checked_in_at":  reservation.CheckedInAt,
			"checked_out_at": reservation.CheckedOutAt,
			"cancelled_at":   reservation.CancelledAt,
			"cancel_reason":  reservation.CancelReason,
		})
	if result.Error != nil {
		return translateError(result.Error, "không thể cập nhật trạng thái reservation")
	}
	if result.RowsAffected == 0 {
		// Trạng thái đã bị thay đổi bởi request khác
		return apperrors.ErrInvalidTransition
	}
	return nil
}

// ---------------------------------------------------------- maintenance

type MaintenanceRepo struct {
	db *gorm.DB
}

func syncMaintenanceFlag(tx *gorm.DB, roomID uint) error {
	var open int64
	if err := tx.Model(&models.MaintenanceIssue{}).
		Where("room_id = ? AND resolved_date IS NULL", roomID).
		Count(&open).Error; err != nil {
		return err
	}
	return tx.Model(&models.Room{}).Where("id = ?", roomID).Update("is_on_maintenance", open > 0).Error
}

func (r *MaintenanceRepo) Create(ctx context.Context, issue *models.MaintenanceIssue) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, issue.RoomID); err != nil {
			return err
		}
		if err := tx.Create(issue).Error; err != nil {
			return err
		}
		return syncMaintenanceFlag(tx, issue.RoomID)
	})
	return translateError(err, "không thể ghi nhận sự cố")
}

func (r *MaintenanceRepo) Resolve(ctx context.Context, issue *models.MaintenanceIssue) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, issue.RoomID); err != nil {
			return err
		}

		result := tx.Model(&models.MaintenanceIssue{}).
			Where("id = ? AND room_id = ? AND resolved_date IS NULL", issue.ID, issue.RoomID).
			Updates(map[string]interface{}{
				"resolved_date":   issue.ResolvedDate,
				"resolution_note": issue.ResolutionNote,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrAlreadyResolved
		}
		return syncMaintenanceFlag(tx, issue.RoomID)
	})
	return translateError(err, "không thể xử lý sự cố")
}

func (r *MaintenanceRepo) GetByID(ctx context.Context, roomID, issueID uint) (*models.MaintenanceIssue, error) {
	var issue models.MaintenanceIssue
	err := r.db.WithContext(ctx).Where("id = ? AND room_id = ?", issueID, roomID).First(&issue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrIssueNotFound
	}
	if err != nil {
		return nil, translateError(err, "không thể lấy sự cố")
	}
	return &issue, nil
}

func (r *MaintenanceRepo) ListByRoom(ctx context.Context, roomID uint, openOnly bool) ([]models.MaintenanceIssue, error) {
	query := r.db.WithContext(ctx).Where("room_id = ?", roomID)
	if openOnly {
		query = query.Where("resolved_date IS NULL")
	}

	var issues []models.MaintenanceIssue
	if err := query.Order("reported_date ASC, id ASC").Find(&issues).Error; err != nil {
		return nil, translateError(err, "không thể lấy danh sách sự cố")
	}
	return issues, nil
}

func (r *MaintenanceRepo) ListByRooms(ctx context.Context, roomIDs []uint, resolvedAfter time.Time) ([]models.MaintenanceIssue, error) {
	query := r.db.WithContext(ctx).
		Where("resolved_date IS NULL OR resolved_date > CAST(? AS date)", sqlDate(resolvedAfter))
	if len(roomIDs) > 0 {
		query = query.Where("room_id IN ?", roomIDs)
	}

	var issues []models.MaintenanceIssue
	if err := query.Order("reported_date ASC, id ASC").Find(&issues).Error; err != nil {
		return nil, translateError(err, "không thể lấy danh sách sự cố")
	}
	return issues, nil
}

func (r *MaintenanceRepo) ListOpen(ctx context.Context) ([]models.MaintenanceIssue, error) {
	var issues []models.MaintenanceIssue
	if err := r.db.WithContext(ctx).
		Where("resolved_date IS NULL").
		Order("reported_date ASC, id ASC").
		Find(&issues).Error; err != nil {
		return nil, translateError(err, "không thể lấy sự cố đang mở")
	}
	return issues, nil
}

// ------------------------------------------------------------- customers

type CustomerRepo struct {
	db *gorm.DB
}

func (r *CustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	return translateError(r.db.WithContext(ctx).Create(customer).Error, "không thể tạo khách hàng")
}

func (r *CustomerRepo) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, translateError(err, "không thể lấy khách hàng")
	}
	return &customer, nil
}

func (r *CustomerRepo) GetByIDs(ctx context.Context, ids []uint) ([]models.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&customers).Error; err != nil {
		return nil, translateError(err, "không thể lấy khách hàng")
	}
	return customers, nil
}

func (r *CustomerRepo) List(ctx context.Context, page, limit int) ([]models.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Customer{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "không thể đếm khách hàng")
	}

	var customers []models.Customer
	if limit > 0 {
		if page < 0 || page > math.MaxInt32/limit {
			return []models.Customer{}, total, nil
		}
		query = query.Offset(page * limit).Limit(limit)
	}
	if err := query.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, 0, translateError(err, "không thể lấy danh sách khách hàng")
	}
	return customers, total, nil
}
