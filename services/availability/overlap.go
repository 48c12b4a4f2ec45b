package availability

import (
	"time"

	"hotelops/models"
)

// Overlaps reports whether [start, end) conflicts with an active reservation
// of roomID. Reservations of other rooms, inactive ones and excludeID are
// ignored.
func Overlaps(roomID uint, start, end time.Time, reservations []models.Reservation, excludeID *uint) (bool, error) {
	rng, err := NewDateRange(start, end)
	if err != nil {
		return false, err
	}
	return FindConflict(roomID, rng, reservations, excludeID) != nil, nil
}

// FindConflict trả về reservation đầu tiên gây trùng lịch, nil nếu không có
func FindConflict(roomID uint, rng DateRange, reservations []models.Reservation, excludeID *uint) *models.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if r.RoomID != roomID || !r.IsActive() {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		existing := DateRange{Start: DateOf(r.StartDate), End: DateOf(r.EndDate)}
		if rng.Overlaps(existing) {
			return r
		}
	}
	return nil
}
