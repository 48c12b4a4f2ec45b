package controllers

import (
	"strings"
	"time"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/response"
	"hotelops/services"
	"hotelops/services/availability"
	"hotelops/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RoomController struct {
	Facade       *services.BookingFacade
	Rooms        *services.RoomService
	Reservations *services.ReservationService
	Availability *services.AvailabilityService
	Redis        *redis.Client
	Logger       logger.Logger
}

type RoomControllerOptions struct {
	Facade       *services.BookingFacade
	Rooms        *services.RoomService
	Reservations *services.ReservationService
	Availability *services.AvailabilityService
	Redis        *redis.Client
	Logger       logger.Logger
}

func NewRoomController(opts RoomControllerOptions) RoomController {
	return RoomController{
		Facade:       opts.Facade,
		Rooms:        opts.Rooms,
		Reservations: opts.Reservations,
		Availability: opts.Availability,
		Redis:        opts.Redis,
		Logger:       opts.Logger,
	}
}

// GetAllRooms danh sách phòng kèm trạng thái và thông tin khách
func (rc RoomController) GetAllRooms(c *gin.Context) {
	var query dto.RoomListQuery
	if err := bindQuery(c, &query); err != nil {
		fail(c, err)
		return
	}
	query.Page, query.Limit = pageLimit(query.Page, query.Limit, constants.DefaultLimit)

	rooms, total, err := rc.Availability.ListRooms(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithPagination(c, rooms, query.Page, query.Limit, int(total))
}

func toSearchFilters(query dto.AvailableRoomsQuery) (*dto.RoomSearchFilters, error) {
	filters := &dto.RoomSearchFilters{
		RoomType: strings.TrimSpace(query.RoomType),
		Floor:    query.Floor,
		Guests:   query.Guests,
		Features: splitList(query.Features),
		MaxPrice: query.MaxPrice,
	}
	if query.StartDate != "" {
		start, err := availability.ParseDate(query.StartDate)
		if err != nil {
			return nil, err
		}
		filters.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := availability.ParseDate(query.EndDate)
		if err != nil {
			return nil, err
		}
		filters.EndDate = &end
	}
	return filters, nil
}

// GetAvailableRooms tìm phòng trống. Khi có Redis, bộ lọc được gộp với lần
// tìm trước của cùng session (X-Session-ID); reset=true xóa bộ lọc đã lưu.
func (rc RoomController) GetAvailableRooms(c *gin.Context) {
	var query dto.AvailableRoomsQuery
	if err := bindQuery(c, &query); err != nil {
		fail(c, err)
		return
	}

	filters, err := toSearchFilters(query)
	if err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if rc.Redis != nil {
		key := constants.LastFiltersPrefix + c.GetString("sessionId")
		if query.Reset {
			if err := services.ClearLastFilters(ctx, rc.Redis, key); err != nil {
				rc.Logger.Error("clear last filters: %v", err)
			}
		} else {
			old, err := services.GetLastFilters(ctx, rc.Redis, key)
			if err != nil {
				rc.Logger.Error("get last filters: %v", err)
			}
			filters = services.MergeFilters(old, filters)
		}
		if err := services.SaveLastFilters(ctx, rc.Redis, key, filters); err != nil {
			rc.Logger.Error("save last filters: %v", err)
		}
	}

	rooms, err := rc.Availability.SearchAvailable(ctx, *filters)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToRoomResponses(rooms))
}

func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := availability.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetRoomBoard sơ đồ trạng thái tất cả phòng tại một ngày (mặc định hôm nay)
func (rc RoomController) GetRoomBoard(c *gin.Context) {
	var query dto.BoardQuery
	if err := bindQuery(c, &query); err != nil {
		fail(c, err)
		return
	}

	date, err := optionalDate(query.Date)
	if err != nil {
		fail(c, err)
		return
	}

	board, err := rc.Availability.BoardStatus(c.Request.Context(), date, dto.RoomSearchFilters{
		RoomType: query.RoomType,
		Floor:    query.Floor,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, board)
}

func (rc RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	room, err := rc.Facade.CreateRoom(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.ToRoomResponse(*room))
}

// GetRoomDetail phòng kèm trạng thái; ?date= để xem tại một ngày
func (rc RoomController) GetRoomDetail(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	asOf, err := optionalDate(c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}

	status, err := rc.Availability.RoomStatus(c.Request.Context(), id, asOf)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, status)
}

func (rc RoomController) UpdateRoom(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.RoomRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	room, err := rc.Facade.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToRoomResponse(*room))
}

func (rc RoomController) DeleteRoom(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := rc.Facade.DeleteRoom(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// GetRoomCalendar ?month=YYYY-MM, mặc định tháng hiện tại
func (rc RoomController) GetRoomCalendar(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	calendar, err := rc.Availability.RoomCalendar(c.Request.Context(), id, c.Query("month"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, calendar)
}

// GetRoomReservations: mặc định chỉ reservation active, history=true lấy tất cả
func (rc RoomController) GetRoomReservations(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	list, err := rc.Reservations.ListByRoom(c.Request.Context(), id, c.Query("history") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToReservationResponses(list))
}
