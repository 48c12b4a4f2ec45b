package services

import (
	"time"

	"hotelops/repository"
	"hotelops/services/logger"
	"hotelops/services/notification"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

// Container giữ các service đã được nối với nhau
type Container struct {
	Reservations *ReservationService
	Maintenance  *MaintenanceService
	Availability *AvailabilityService
	Rooms        *RoomService
	Customers    *CustomerService
	Facade       *BookingFacade
	Cache        BoardCache
	Clock        Clock
	Logger       logger.Logger
}

type ContainerOptions struct {
	Store         *repository.Store
	Redis         *redis.Client // nil thì không cache sơ đồ phòng
	Melody        *melody.Melody
	Clock         Clock
	Logger        logger.Logger
	BoardCacheTTL time.Duration
}

func NewContainer(opts ContainerOptions) *Container {
	var cache BoardCache = NoopBoardCache{}
	if opts.Redis != nil {
		cache = NewRedisBoardCache(opts.Redis, opts.BoardCacheTTL)
	}

	var notifier notification.Service
	if opts.Melody != nil {
		notifier = notification.NewMelodyService(opts.Melody)
	}

	c := &Container{
		Cache:  cache,
		Clock:  opts.Clock,
		Logger: opts.Logger,
	}
	c.Reservations = NewReservationService(ReservationServiceOptions{Store: opts.Store, Clock: opts.Clock, Logger: opts.Logger})
	c.Maintenance = NewMaintenanceService(MaintenanceServiceOptions{Store: opts.Store, Clock: opts.Clock, Logger: opts.Logger})
	c.Availability = NewAvailabilityService(AvailabilityServiceOptions{Store: opts.Store, Clock: opts.Clock, Cache: cache, Logger: opts.Logger})
	c.Rooms = NewRoomService(RoomServiceOptions{Store: opts.Store, Logger: opts.Logger})
	c.Customers = NewCustomerService(opts.Store)
	c.Facade = NewBookingFacade(BookingFacadeOptions{
		Reservations: c.Reservations,
		Maintenance:  c.Maintenance,
		Rooms:        c.Rooms,
		Cache:        cache,
		Notifier:     notifier,
		Logger:       opts.Logger,
	})
	return c
}
