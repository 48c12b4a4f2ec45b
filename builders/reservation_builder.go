package builders

import (
	"hotelops/constants"
	"hotelops/models"
	"hotelops/services/availability"
)

// ReservationBuilder giúp tạo reservation theo từng bước
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder tạo builder với trạng thái mặc định Pending, 1 khách
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{
			Status:         constants.ReservationStatusPending,
			NumberOfGuests: 1,
		},
	}
}

// WithRoom thêm phòng
func (b *ReservationBuilder) WithRoom(roomID uint) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithCustomer thêm khách hàng
func (b *ReservationBuilder) WithCustomer(customerID uint) *ReservationBuilder {
	b.reservation.CustomerID = customerID
	return b
}

// WithDates thêm khoảng ngày [start, end)
func (b *ReservationBuilder) WithDates(rng availability.DateRange) *ReservationBuilder {
	b.reservation.StartDate = rng.Start
	b.reservation.EndDate = rng.End
	return b
}

// WithGuests số khách, bỏ qua giá trị <= 0
func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	if n > 0 {
		b.reservation.NumberOfGuests = n
	}
	return b
}

// WithPrice tổng giá
func (b *ReservationBuilder) WithPrice(price float64) *ReservationBuilder {
	b.reservation.Price = price
	return b
}

// WithNightlyRate tính giá theo số đêm khi chưa có giá
func (b *ReservationBuilder) WithNightlyRate(rate float64) *ReservationBuilder {
	if b.reservation.Price == 0 {
		b.reservation.Price = rate * float64(b.reservation.Nights())
	}
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.reservation.Note = note
	return b
}

// Build tạo reservation hoàn chỉnh
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
