package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"hotelops/constants"
	apperrors "hotelops/errors"
	"hotelops/models"
)

// memoryDB giữ dữ liệu trong bộ nhớ, dùng cho test và DB_DRIVER=memory.
// Một mutex duy nhất đảm bảo kiểm tra và ghi diễn ra nguyên tử như transaction.
type memoryDB struct {
	mu           sync.Mutex
	rooms        map[uint]models.Room
	reservations map[uint]models.Reservation
	issues       map[uint]models.MaintenanceIssue
	customers    map[uint]models.Customer
	seq          uint
	now          func() time.Time
}

// NewMemoryStore tạo Store lưu trong bộ nhớ
func NewMemoryStore() *Store {
	db := &memoryDB{
		rooms:        make(map[uint]models.Room),
		reservations: make(map[uint]models.Reservation),
		issues:       make(map[uint]models.MaintenanceIssue),
		customers:    make(map[uint]models.Customer),
		now:          time.Now,
	}
	return &Store{
		Rooms:        &memoryRooms{db},
		Reservations: &memoryReservations{db},
		Maintenance:  &memoryMaintenance{db},
		Customers:    &memoryCustomers{db},
	}
}

func (m *memoryDB) nextID() uint {
	m.seq++
	return m.seq
}

func (m *memoryDB) hasConflict(roomID uint, start, end time.Time, excludeID uint) bool {
	for _, r := range m.reservations {
		if r.ID == excludeID || r.RoomID != roomID || !r.IsActive() {
			continue
		}
		if r.StartDate.Before(end) && start.Before(r.EndDate) {
			return true
		}
	}
	return false
}

func containsID(ids []uint, id uint) bool {
	if len(ids) == 0 {
		return true
	}
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------- rooms

type memoryRooms struct{ db *memoryDB }

func (r *memoryRooms) roomNumberTaken(room *models.Room) bool {
	for _, existing := range r.db.rooms {
		if existing.ID != room.ID && existing.RoomNumber == room.RoomNumber {
			return true
		}
	}
	return false
}

func (r *memoryRooms) Create(_ context.Context, room *models.Room) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.roomNumberTaken(room) {
		return apperrors.ErrRoomNumberTaken
	}
	room.ID = r.db.nextID()
	room.CreatedAt = r.db.now()
	room.UpdatedAt = room.CreatedAt
	r.db.rooms[room.ID] = *room
	return nil
}

func (r *memoryRooms) Update(_ context.Context, room *models.Room) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.rooms[room.ID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	if r.roomNumberTaken(room) {
		return apperrors.ErrRoomNumberTaken
	}
	room.IsOnMaintenance = existing.IsOnMaintenance
	room.CreatedAt = existing.CreatedAt
	room.UpdatedAt = r.db.now()
	r.db.rooms[room.ID] = *room
	return nil
}

func (r *memoryRooms) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.rooms[id]; !ok {
		return apperrors.ErrRoomNotFound
	}
	for _, res := range r.db.reservations {
		if res.RoomID == id && res.IsActive() {
			return apperrors.ErrRoomHasActiveBookings
		}
	}
	delete(r.db.rooms, id)
	return nil
}

func (r *memoryRooms) GetByID(_ context.Context, id uint) (*models.Room, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	room, ok := r.db.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return &room, nil
}

func (r *memoryRooms) List(_ context.Context, filter RoomFilter) ([]models.Room, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rooms := make([]models.Room, 0, len(r.db.rooms))
	for _, room := range r.db.rooms {
		if len(filter.RoomTypes) > 0 {
			match := false
			for _, t := range filter.RoomTypes {
				if strings.EqualFold(room.RoomType, t) {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		if filter.Floor != nil && room.Floor != *filter.Floor {
			continue
		}
		if room.Capacity < filter.MinCapacity {
			continue
		}
		if filter.MaxPrice != nil && room.Price > *filter.MaxPrice {
			continue
		}
		if !room.HasFeatures(filter.Features) {
			continue
		}
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	return rooms, nil
}

// ---------------------------------------------------------- reservations

type memoryReservations struct{ db *memoryDB }

func sortReservations(list []models.Reservation) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartDate.Equal(list[j].StartDate) {
			return list[i].ID < list[j].ID
		}
		return list[i].StartDate.Before(list[j].StartDate)
	})
}

func (r *memoryReservations) GetByID(_ context.Context, id uint) (*models.Reservation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res, ok := r.db.reservations[id]
	if !ok {
		return nil, apperrors.ErrReservationNotFound
	}
	return &res, nil
}

func (r *memoryReservations) List(_ context.Context, filter ReservationFilter) ([]models.Reservation, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	statuses := make(map[string]bool, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses[s] = true
	}

	list := make([]models.Reservation, 0)
	for _, res := range r.db.reservations {
		if filter.RoomID != nil && res.RoomID != *filter.RoomID {
			continue
		}
		if filter.CustomerID != nil && res.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ActiveOnly && !res.IsActive() {
			continue
		}
		if len(statuses) > 0 && !statuses[res.Status] {
			continue
		}
		if filter.To != nil && !res.StartDate.Before(*filter.To) {
			continue
		}
		if filter.From != nil && !res.EndDate.After(*filter.From) {
			continue
		}
		list = append(list, res)
	}
	sortReservations(list)

	total := int64(len(list))
	if filter.Limit > 0 {
		start, end := pageBounds(filter.Page, filter.Limit, len(list))
		list = list[start:end]
	}
	return list, total, nil
}

func (r *memoryReservations) ListActiveByRooms(_ context.Context, roomIDs []uint) ([]models.Reservation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	list := make([]models.Reservation, 0)
	for _, res := range r.db.reservations {
		if res.IsActive() && containsID(roomIDs, res.RoomID) {
			list = append(list, res)
		}
	}
	sortReservations(list)
	return list, nil
}

func (r *memoryReservations) ListForPeriod(_ context.Context, roomIDs []uint, from, to time.Time) ([]models.Reservation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	list := make([]models.Reservation, 0)
	for _, res := range r.db.reservations {
		if !containsID(roomIDs, res.RoomID) {
			continue
		}
		inPeriod := res.Status != constants.ReservationStatusCancelled && res.StartDate.Before(to) && res.EndDate.After(from)
		if res.Status == constants.ReservationStatusCheckedIn || inPeriod {
			list = append(list, res)
		}
	}
	sortReservations(list)
	return list, nil
}

func (r *memoryReservations) Create(_ context.Context, res *models.Reservation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.rooms[res.RoomID]; !ok {
		return apperrors.ErrRoomNotFound
	}
	if !res.StartDate.Before(res.EndDate) {
		return apperrors.ErrInvalidDateRange
	}
	if r.db.hasConflict(res.RoomID, res.StartDate, res.EndDate, 0) {
		return apperrors.ErrRoomUnavailable
	}
	res.ID = r.db.nextID()
	if res.Status == "" {
		res.Status = constants.ReservationStatusPending
	}
	res.CreatedAt = r.db.now()
	res.UpdatedAt = res.CreatedAt
	r.db.reservations[res.ID] = *res
	return nil
}

func (r *memoryReservations) Update(_ context.Context, res *models.Reservation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.reservations[res.ID]
	if !ok {
		return apperrors.ErrReservationNotFound
	}
	if _, ok := r.db.rooms[res.RoomID]; !ok {
		return apperrors.ErrRoomNotFound
	}
	if r.db.hasConflict(res.RoomID, res.StartDate, res.EndDate, res.ID) {
		return apperrors.ErrRoomUnavailable
	}
	if existing.Status != constants.ReservationStatusPending {
		return apperrors.ErrReservationNotEditable
	}

	existing.RoomID = res.RoomID
	existing.StartDate = res.StartDate
	existing.EndDate = res.EndDate
	existing.NumberOfGuests = res.NumberOfGuests
	existing.Price = res.Price
	existing.Note = res.Note
	existing.UpdatedAt = r.db.now()
	r.db.reservations[res.ID] = existing
	*res = existing
	return nil
}

func (r *memoryReservations) Transition(_ context.Context, res *models.Reservation, fromStatus string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.reservations[res.ID]
	if !ok {
		return apperrors.ErrReservationNotFound
	}
	if existing.Status != fromStatus {
		return apperrors.ErrInvalidTransition
	}
	if res.Status == constants.ReservationStatusCheckedIn {
		for _, other := range r.db.reservations {
			if other.ID != res.ID && other.RoomID == res.RoomID && other.Status == constants.ReservationStatusCheckedIn {
				return apperrors.ErrRoomOccupied
			}
		}
	}

	existing.Status = res.Status
	existing.CheckedInAt = res.CheckedInAt
	existing.CheckedOutAt = res.CheckedOutAt
	existing.CancelledAt = res.CancelledAt
	existing.CancelReason = res.CancelReason
	existing.UpdatedAt = r.db.now()
	r.db.reservations[res.ID] = existing
	return nil
}

// ---------------------------------------------------------- maintenance

type memoryMaintenance struct{ db *memoryDB }

func (r *memoryMaintenance) syncFlag(roomID uint) {
	room, ok := r.db.rooms[roomID]
	if !ok {
		return
	}
	open := false
	for _, issue := range r.db.issues {
		if issue.RoomID == roomID && issue.IsOpen() {
			open = true
			break
		}
	}
	room.IsOnMaintenance = open
	r.db.rooms[roomID] = room
}

func sortIssues(list []models.MaintenanceIssue) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].ReportedDate.Equal(list[j].ReportedDate) {
			return list[i].ID < list[j].ID
		}
		return list[i].ReportedDate.Before(list[j].ReportedDate)
	})
}

func (r *memoryMaintenance) Create(_ context.Context, issue *models.MaintenanceIssue) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.rooms[issue.RoomID]; !ok {
		return apperrors.ErrRoomNotFound
	}
	issue.ID = r.db.nextID()
	issue.CreatedAt = r.db.now()
	issue.UpdatedAt = issue.CreatedAt
	r.db.issues[issue.ID] = *issue
	r.syncFlag(issue.RoomID)
	return nil
}

func (r *memoryMaintenance) Resolve(_ context.Context, issue *models.MaintenanceIssue) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.issues[issue.ID]
	if !ok || existing.RoomID != issue.RoomID {
		return apperrors.ErrIssueNotFound
	}
	if !existing.IsOpen() {
		return apperrors.ErrAlreadyResolved
	}
	existing.ResolvedDate = issue.ResolvedDate
	existing.ResolutionNote = issue.ResolutionNote
	existing.UpdatedAt = r.db.now()
	r.db.issues[issue.ID] = existing
	r.syncFlag(issue.RoomID)
	return nil
}

func (r *memoryMaintenance) GetByID(_ context.Context, roomID, issueID uint) (*models.MaintenanceIssue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	issue, ok := r.db.issues[issueID]
	if !ok || issue.RoomID != roomID {
		return nil, apperrors.ErrIssueNotFound
	}
	return &issue, nil
}

func (r *memoryMaintenance) ListByRoom(_ context.Context, roomID uint, openOnly bool) ([]models.MaintenanceIssue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	list := make([]models.MaintenanceIssue, 0)
	for _, issue := range r.db.issues {
		if issue.RoomID != roomID || openOnly && !issue.IsOpen() {
			continue
		}
		list = append(list, issue)
	}
	sortIssues(list)
	return list, nil
}

func (r *memoryMaintenance) ListByRooms(_ context.Context, roomIDs []uint, resolvedAfter time.Time) ([]models.MaintenanceIssue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	list := make([]models.MaintenanceIssue, 0)
	for _, issue := range r.db.issues {
		if !containsID(roomIDs, issue.RoomID) {
			continue
		}
		if issue.IsOpen() || issue.ResolvedDate.After(resolvedAfter) {
			list = append(list, issue)
		}
	}
	sortIssues(list)
	return list, nil
}

func (r *memoryMaintenance) ListOpen(_ context.Context) ([]models.MaintenanceIssue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	list := make([]models.MaintenanceIssue, 0)
	for _, issue := range r.db.issues {
		if issue.IsOpen() {
			list = append(list, issue)
		}
	}
	sortIssues(list)
	return list, nil
}

// ------------------------------------------------------------- customers

type memoryCustomers struct{ db *memoryDB }

func (r *memoryCustomers) Create(_ context.Context, customer *models.Customer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	customer.ID = r.db.nextID()
	customer.CreatedAt = r.db.now()
	customer.UpdatedAt = customer.CreatedAt
	r.db.customers[customer.ID] = *customer
	return nil
}

func (r *memoryCustomers) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	customer, ok := r.db.customers[id]
	if !ok {
		return nil, apperrors.ErrCustomerNotFound
	}
	return &customer, nil
}

func (r *memoryCustomers) GetByIDs(_ context.Context, ids []uint) ([]models.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	list := make([]models.Customer, 0, len(ids))
	for _, id := range ids {
		if customer, ok := r.db.customers[id]; ok {
			list = append(list, customer)
		}
	}
	return list, nil
}

func (r *memoryCustomers) List(_ context.Context, page, limit int) ([]models.Customer, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	list := make([]models.Customer, 0, len(r.db.customers))
	for _, customer := range r.db.customers {
		list = append(list, customer)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	total := int64(len(list))
	if limit > 0 {
		start, end := pageBounds(page, limit, len(list))
		list = list[start:end]
	}
	return list, total, nil
}

// pageBounds trả về [start, end) của trang, không tràn số khi page quá lớn
func pageBounds(page, limit, n int) (int, int) {
	if page < 0 || limit <= 0 || page > n/limit {
		return n, n
	}
	start := page * limit
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}
