package constants

// Reservation status
const (
	ReservationStatusPending    = "Pending"
	ReservationStatusCheckedIn  = "CheckedIn"
	ReservationStatusCheckedOut = "CheckedOut"
	ReservationStatusCancelled  = "Cancelled"
)

// Room status (luôn được tính toán, không lưu trong DB)
const (
	RoomStatusAvailable        = "Available"
	RoomStatusOccupied         = "Occupied"
	RoomStatusUnderMaintenance = "UnderMaintenance"
)

// Định dạng ngày
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Redis keys
const (
	BoardCachePrefix   = "rooms:board:"
	LastFiltersPrefix  = "last_filters:"
	DefaultTimezone    = "Asia/Ho_Chi_Minh"
	DefaultPage        = 0
	DefaultLimit       = 10
	MaxLimit           = 100
	LifecycleEventType = "lifecycle"
)

// Staff roles (claim "role" trong JWT)
const (
	RoleAdmin        = 1
	RoleManager      = 2
	RoleReceptionist = 3
	RoleHousekeeping = 4
)
