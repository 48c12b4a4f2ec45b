package services

import (
	"time"
	_ "time/tzdata"

	"hotelops/services/availability"
)

// Clock cung cấp "hôm nay" theo múi giờ khách sạn
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type HotelClock struct {
	loc *time.Location
}

func NewHotelClock(timezone string) (*HotelClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &HotelClock{loc: loc}, nil
}

func (c *HotelClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today trả về ngày lịch hiện tại ở múi giờ khách sạn, chuẩn hóa về 00:00 UTC
func (c *HotelClock) Today() time.Time {
	return availability.DateOf(c.Now())
}

// FixedClock dùng trong test
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Today() time.Time {
	return availability.DateOf(c.At)
}
