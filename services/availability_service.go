package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hotelops/constants"
	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/availability"
	"hotelops/services/logger"
)

type AvailabilityServiceOptions struct {
	Store  *repository.Store
	Clock  Clock
	Cache  BoardCache
	Logger logger.Logger
}

// AvailabilityService trả lời các câu hỏi "phòng nào trống" và "phòng đang thế nào"
type AvailabilityService struct {
	store  *repository.Store
	clock  Clock
	cache  BoardCache
	logger logger.Logger
}

func NewAvailabilityService(opts AvailabilityServiceOptions) *AvailabilityService {
	cache := opts.Cache
	if cache == nil {
		cache = NoopBoardCache{}
	}
	return &AvailabilityService{
		store:  opts.Store,
		clock:  opts.Clock,
		cache:  cache,
		logger: opts.Logger,
	}
}

// candidateRooms áp dụng bộ lọc loại/tầng/sức chứa/tiện ích/giá.
// Loại phòng được so khớp gần đúng với các loại đang có.
func (s *AvailabilityService) candidateRooms(ctx context.Context, filters dto.RoomSearchFilters) ([]models.Room, error) {
	filter := repository.RoomFilter{
		Floor:    filters.Floor,
		Features: filters.Features,
		MaxPrice: filters.MaxPrice,
	}
	if filters.Guests != nil {
		filter.MinCapacity = *filters.Guests
	}

	if strings.TrimSpace(filters.RoomType) != "" {
		known, err := s.KnownRoomTypes(ctx)
		if err != nil {
			return nil, err
		}
		matched := MatchRoomTypes(filters.RoomType, known)
		if len(matched) == 0 {
			return []models.Room{}, nil
		}
		filter.RoomTypes = matched
	}

	return s.store.Rooms.List(ctx, filter)
}

func roomIDs(rooms []models.Room) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	return ids
}

// FindAvailableRooms: phòng không có sự cố chưa xử lý và không trùng lịch với [start, end).
// Sự cố được đọc lại từ bảng maintenance, không dựa vào cờ is_on_maintenance.
func (s *AvailabilityService) FindAvailableRooms(ctx context.Context, rng availability.DateRange, filters dto.RoomSearchFilters) ([]models.Room, error) {
	rooms, err := s.candidateRooms(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return rooms, nil
	}

	ids := roomIDs(rooms)
	active, err := s.store.Reservations.ListActiveByRooms(ctx, ids)
	if err != nil {
		return nil, err
	}
	open, err := s.store.Maintenance.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	blocked := make(map[uint]bool, len(open))
	for _, issue := range open {
		blocked[issue.RoomID] = true
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if blocked[room.ID] {
			continue
		}
		if availability.FindConflict(room.ID, rng, active, nil) != nil {
			continue
		}
		available = append(available, room)
	}
	return available, nil
}

// Trạng thái ngày quá khứ phụ thuộc "hôm nay" nên key chứa cả hai ngày
func boardCacheKey(day, today time.Time, filters dto.RoomSearchFilters) string {
	floor := "*"
	if filters.Floor != nil {
		floor = fmt.Sprint(*filters.Floor)
	}
	return fmt.Sprintf("%s:%s:%s:%s", day.Format(constants.DateLayout), today.Format(constants.DateLayout),
		normalizeInput(filters.RoomType), floor)
}

// BoardStatus trạng thái mọi phòng tại một ngày
func (s *AvailabilityService) BoardStatus(ctx context.Context, date *time.Time, filters dto.RoomSearchFilters) (*dto.BoardResponse, error) {
	today := s.clock.Today()
	day := today
	if date != nil {
		day = availability.DateOf(*date)
	}
	key := boardCacheKey(day, today, filters)

	var cached dto.BoardResponse
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.Error("board cache read failed: %v", err)
	} else if found {
		return &cached, nil
	}

	rooms, err := s.candidateRooms(ctx, filters)
	if err != nil {
		return nil, err
	}
	statuses, err := s.resolveOnDay(ctx, rooms, day)
	if err != nil {
		return nil, err
	}

	board := &dto.BoardResponse{Date: day.Format(constants.DateLayout), Rooms: statuses}
	if err := s.cache.Set(ctx, key, board); err != nil {
		s.logger.Error("board cache write failed: %v", err)
	}
	return board, nil
}

func (s *AvailabilityService) resolveOnDay(ctx context.Context, rooms []models.Room, day time.Time) ([]dto.RoomStatusResponse, error) {
	result := make([]dto.RoomStatusResponse, 0, len(rooms))
	if len(rooms) == 0 {
		return result, nil
	}

	ids := roomIDs(rooms)
	reservations, err := s.store.Reservations.ListForPeriod(ctx, ids, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	issues, err := s.store.Maintenance.ListByRooms(ctx, ids, day)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	resolutions := make([]availability.Resolution, 0, len(rooms))
	for _, room := range rooms {
		resolutions = append(resolutions, availability.ResolveStatus(room, reservations, issues, &day, today))
	}
	return s.annotate(ctx, rooms, resolutions)
}

// RoomStatus trạng thái một phòng; asOf nil nghĩa là "ngay lúc này"
func (s *AvailabilityService) RoomStatus(ctx context.Context, roomID uint, asOf *time.Time) (*dto.RoomStatusResponse, error) {
	room, err := s.store.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	var statuses []dto.RoomStatusResponse
	if asOf != nil {
		statuses, err = s.resolveOnDay(ctx, []models.Room{*room}, availability.DateOf(*asOf))
	} else {
		statuses, err = s.resolveNow(ctx, []models.Room{*room})
	}
	if err != nil {
		return nil, err
	}
	return &statuses[0], nil
}

func (s *AvailabilityService) resolveNow(ctx context.Context, rooms []models.Room) ([]dto.RoomStatusResponse, error) {
	if len(rooms) == 0 {
		return []dto.RoomStatusResponse{}, nil
	}
	ids := roomIDs(rooms)
	active, err := s.store.Reservations.ListActiveByRooms(ctx, ids)
	if err != nil {
		return nil, err
	}
	open, err := s.store.Maintenance.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	resolutions := make([]availability.Resolution, 0, len(rooms))
	for _, room := range rooms {
		resolutions = append(resolutions, availability.ResolveStatus(room, active, open, nil, today))
	}
	return s.annotate(ctx, rooms, resolutions)
}

func (s *AvailabilityService) resolveRange(ctx context.Context, rooms []models.Room, rng availability.DateRange) ([]dto.RoomStatusResponse, error) {
	if len(rooms) == 0 {
		return []dto.RoomStatusResponse{}, nil
	}
	ids := roomIDs(rooms)
	active, err := s.store.Reservations.ListActiveByRooms(ctx, ids)
	if err != nil {
		return nil, err
	}
	issues, err := s.store.Maintenance.ListByRooms(ctx, ids, rng.Start)
	if err != nil {
		return nil, err
	}

	resolutions := make([]availability.Resolution, 0, len(rooms))
	for _, room := range rooms {
		resolutions = append(resolutions, availability.ResolveRangeStatus(room, active, issues, rng))
	}
	return s.annotate(ctx, rooms, resolutions)
}

// annotate gắn thông tin khách cho các phòng đang có người
func (s *AvailabilityService) annotate(ctx context.Context, rooms []models.Room, resolutions []availability.Resolution) ([]dto.RoomStatusResponse, error) {
	customerIDs := make([]uint, 0)
	for _, res := range resolutions {
		if res.Occupant != nil {
			customerIDs = append(customerIDs, res.Occupant.CustomerID)
		}
	}
	customers := make(map[uint]models.Customer)
	if len(customerIDs) > 0 {
		list, err := s.store.Customers.GetByIDs(ctx, customerIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			customers[c.ID] = c
		}
	}

	result := make([]dto.RoomStatusResponse, 0, len(rooms))
	for i, room := range rooms {
		res := resolutions[i]
		item := dto.RoomStatusResponse{
			Room:   dto.ToRoomResponse(room),
			Status: res.Status,
		}
		if res.Occupant != nil {
			customer := customers[res.Occupant.CustomerID]
			item.Occupant = &dto.OccupantInfo{
				ReservationID: res.Occupant.ReservationID,
				CustomerID:    res.Occupant.CustomerID,
				CustomerName:  customer.FullName,
				CustomerPhone: customer.Phone,
				Status:        res.Occupant.Status,
				StartDate:     res.Occupant.StartDate.Format(constants.DateLayout),
				EndDate:       res.Occupant.EndDate.Format(constants.DateLayout),
			}
		}
		if res.Maintenance != nil {
			var estimated *string
			if res.Maintenance.EstimatedCompletionDate != nil {
				e := res.Maintenance.EstimatedCompletionDate.Format(constants.DateLayout)
				estimated = &e
			}
			item.Maintenance = &dto.MaintenanceInfo{
				IssueID:                 res.Maintenance.IssueID,
				Description:             res.Maintenance.Description,
				ReportedDate:            res.Maintenance.ReportedDate.Format(constants.DateLayout),
				EstimatedCompletionDate: estimated,
				OpenIssues:              res.Maintenance.OpenIssues,
			}
		}
		result = append(result, item)
	}
	return result, nil
}

// ListRooms danh sách phòng kèm trạng thái, có phân trang. Khi có khoảng ngày,
// "Available" nghĩa là trống trong cả khoảng; không có thì là trạng thái hiện tại.
func (s *AvailabilityService) ListRooms(ctx context.Context, query dto.RoomListQuery) ([]dto.RoomStatusResponse, int64, error) {
	rooms, err := s.candidateRooms(ctx, dto.RoomSearchFilters{RoomType: query.RoomType, Floor: query.Floor})
	if err != nil {
		return nil, 0, err
	}

	var statuses []dto.RoomStatusResponse
	switch {
	case query.StartDate != "" || query.EndDate != "":
		rng, err := availability.ParseDateRange(query.StartDate, query.EndDate)
		if err != nil {
			return nil, 0, err
		}
		statuses, err = s.resolveRange(ctx, rooms, rng)
		if err != nil {
			return nil, 0, err
		}
	default:
		statuses, err = s.resolveNow(ctx, rooms)
		if err != nil {
			return nil, 0, err
		}
	}

	if query.Status != "" {
		filtered := make([]dto.RoomStatusResponse, 0, len(statuses))
		for _, item := range statuses {
			if item.Status == query.Status {
				filtered = append(filtered, item)
			}
		}
		statuses = filtered
	}

	total := int64(len(statuses))
	limit := query.Limit
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if query.Page < 0 || query.Page > len(statuses)/limit {
		return []dto.RoomStatusResponse{}, total, nil
	}
	start := query.Page * limit
	end := start + limit
	if end > len(statuses) {
		end = len(statuses)
	}
	return statuses[start:end], total, nil
}

// RoomCalendar trạng thái từng ngày của một phòng trong tháng (YYYY-MM)
func (s *AvailabilityService) RoomCalendar(ctx context.Context, roomID uint, month string) (*dto.RoomCalendarResponse, error) {
	if month == "" {
		month = s.clock.Today().Format(constants.MonthLayout)
	}
	rng, err := availability.MonthRange(month)
	if err != nil {
		return nil, err
	}
	room, err := s.store.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	ids := []uint{room.ID}
	reservations, err := s.store.Reservations.ListForPeriod(ctx, ids, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	issues, err := s.store.Maintenance.ListByRooms(ctx, ids, rng.Start)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	days := make([]dto.CalendarDay, 0, rng.Nights())
	for d := rng.Start; d.Before(rng.End); d = d.AddDate(0, 0, 1) {
		day := d
		res := availability.ResolveStatus(*room, reservations, issues, &day, today)
		item := dto.CalendarDay{Date: day.Format(constants.DateLayout), Status: res.Status}
		if res.Occupant != nil {
			id := res.Occupant.ReservationID
			item.ReservationID = &id
		}
		if res.Maintenance != nil {
			id := res.Maintenance.IssueID
			item.IssueID = &id
		}
		days = append(days, item)
	}

	return &dto.RoomCalendarResponse{
		Room:  dto.ToRoomResponse(*room),
		Month: month,
		Days:  days,
	}, nil
}

// KnownRoomTypes các loại phòng đang có, sắp xếp theo tên
func (s *AvailabilityService) KnownRoomTypes(ctx context.Context) ([]string, error) {
	rooms, err := s.store.Rooms.List(ctx, repository.RoomFilter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, room := range rooms {
		if room.RoomType != "" && !seen[room.RoomType] {
			seen[room.RoomType] = true
			types = append(types, room.RoomType)
		}
	}
	sort.Strings(types)
	return types, nil
}

// InvalidateBoard xóa cache sơ đồ phòng
func (s *AvailabilityService) InvalidateBoard(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

// ensureRange dùng cho controller: bắt buộc có đủ hai đầu khoảng ngày
func ensureRange(filters dto.RoomSearchFilters) (availability.DateRange, error) {
	if filters.StartDate == nil || filters.EndDate == nil {
		return availability.DateRange{}, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "startDate và endDate là bắt buộc", nil)
	}
	return availability.NewDateRange(*filters.StartDate, *filters.EndDate)
}

// SearchAvailable tìm phòng trống từ bộ lọc đã gộp với bộ lọc lưu theo session
func (s *AvailabilityService) SearchAvailable(ctx context.Context, filters dto.RoomSearchFilters) ([]models.Room, error) {
	rng, err := ensureRange(filters)
	if err != nil {
		return nil, err
	}
	return s.FindAvailableRooms(ctx, rng, filters)
}
