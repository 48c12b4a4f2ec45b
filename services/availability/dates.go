package availability

import (
	"strings"
	"time"

	"hotelops/constants"
	apperrors "hotelops/errors"
)

var dateLayouts = []string{
	constants.DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDate nhận chuỗi ISO-8601 (ngày hoặc ngày-giờ) và trả về ngày lịch,
// bỏ phần giờ theo đúng offset của chuỗi.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Ngày không được để trống", nil)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
		"Định dạng ngày không hợp lệ: "+value, nil)
}

// DateOf chuẩn hóa về 00:00 UTC của ngày lịch mà t biểu diễn
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange là khoảng nửa mở [Start, End)
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange chuẩn hóa hai đầu mút và yêu cầu Start < End
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOf(start), End: DateOf(end)}
	if !r.Start.Before(r.End) {
		return DateRange{}, apperrors.ErrInvalidDateRange
	}
	return r, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// Overlaps: [s1,e1) và [s2,e2) giao nhau khi s1 < e2 và s2 < e1
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

func (r DateRange) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(r.Start) && d.Before(r.End)
}

func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// MonthRange trả về [ngày đầu tháng, ngày đầu tháng sau) cho chuỗi YYYY-MM
func MonthRange(month string) (DateRange, error) {
	t, err := time.Parse(constants.MonthLayout, strings.TrimSpace(month))
	if err != nil {
		return DateRange{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
			"Tháng không hợp lệ, vui lòng sử dụng định dạng YYYY-MM", err)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: first, End: first.AddDate(0, 1, 0)}, nil
}
