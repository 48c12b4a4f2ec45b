package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotelops/constants"
	"hotelops/dto"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/logger"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) SendMessage(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

// memoryCache là BoardCache trong bộ nhớ cho test
type memoryCache struct {
	mu          sync.Mutex
	values      map[string]interface{}
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]interface{})}
}

func (c *memoryCache) Get(_ context.Context, key string, target interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return false, nil
	}
	*(target.(*dto.BoardResponse)) = *(v.(*dto.BoardResponse))
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]interface{})
	c.invalidated++
	return nil
}

type testEnv struct {
	store        *repository.Store
	clock        *FixedClock
	cache        *memoryCache
	notifier     *recordingNotifier
	reservations *ReservationService
	maintenance  *MaintenanceService
	availability *AvailabilityService
	rooms        *RoomService
	customers    *CustomerService
	facade       *BookingFacade
}

func day(s string) time.Time {
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestEnv(t *testing.T, today string) *testEnv {
	t.Helper()
	store := repository.NewMemoryStore()
	clock := &FixedClock{At: day(today).Add(10 * time.Hour)}
	log := logger.NewNopLogger()
	cache := newMemoryCache()
	notifier := &recordingNotifier{}

	env := &testEnv{
		store:        store,
		clock:        clock,
		cache:        cache,
		notifier:     notifier,
		reservations: NewReservationService(ReservationServiceOptions{Store: store, Clock: clock, Logger: log}),
		maintenance:  NewMaintenanceService(MaintenanceServiceOptions{Store: store, Clock: clock, Logger: log}),
		availability: NewAvailabilityService(AvailabilityServiceOptions{Store: store, Clock: clock, Cache: cache, Logger: log}),
		rooms:        NewRoomService(RoomServiceOptions{Store: store, Logger: log}),
		customers:    NewCustomerService(store),
	}
	env.facade = NewBookingFacade(BookingFacadeOptions{
		Reservations: env.reservations,
		Maintenance:  env.maintenance,
		Rooms:        env.rooms,
		Cache:        cache,
		Notifier:     notifier,
		Logger:       log,
	})
	return env
}

func (e *testEnv) room(t *testing.T, number, roomType string, capacity int, price float64) *models.Room {
	t.Helper()
	room, err := e.rooms.Create(context.Background(), dto.RoomRequest{
		RoomNumber: number,
		RoomType:   roomType,
		Capacity:   capacity,
		Price:      price,
	})
	require.NoError(t, err)
	return room
}

func (e *testEnv) customer(t *testing.T, name string) *models.Customer {
	t.Helper()
	c, err := e.customers.Create(context.Background(), dto.CustomerRequest{FullName: name})
	require.NoError(t, err)
	return c
}

func (e *testEnv) book(roomID, customerID uint, start, end string) (*models.Reservation, error) {
	return e.facade.CreateReservation(context.Background(), dto.CreateReservationRequest{
		CustomerID: customerID,
		RoomID:     roomID,
		StartDate:  start,
		EndDate:    end,
	})
}

func strPtr(s string) *string {
	return &s
}

func (e *testEnv) setToday(s string) {
	e.clock.At = day(s).Add(10 * time.Hour)
}
