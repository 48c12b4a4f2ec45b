package availability

import (
	"testing"
	"time"

	apperrors "hotelops/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate_AcceptsDateAndDateTime(t *testing.T) {
	cases := map[string]string{
		"2026-01-03":                "2026-01-03",
		"2026-01-03T23:59:00Z":      "2026-01-03",
		"2026-01-03T01:30:00+07:00": "2026-01-03",
		"2026-01-03T10:00:00":       "2026-01-03",
		"2026-01-03 08:15:00":       "2026-01-03",
		" 2026-01-03 ":              "2026-01-03",
	}
	for input, want := range cases {
		got, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, day(want), got, input)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("03/01/2026")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat))

	_, err = ParseDate("")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRequiredField))
}

func TestNewDateRange_RequiresStartBeforeEnd(t *testing.T) {
	_, err := NewDateRange(day("2026-01-05"), day("2026-01-05"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	_, err = NewDateRange(day("2026-01-06"), day("2026-01-05"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	// cùng ngày nhưng khác giờ vẫn là khoảng rỗng
	_, err = NewDateRange(day("2026-01-05").Add(2*time.Hour), day("2026-01-05").Add(20*time.Hour))
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	r, err := NewDateRange(day("2026-01-01"), day("2026-01-05"))
	require.NoError(t, err)
	assert.Equal(t, 4, r.Nights())
}

func TestDateRange_HalfOpen(t *testing.T) {
	a := DateRange{Start: day("2026-01-01"), End: day("2026-01-05")}
	b := DateRange{Start: day("2026-01-05"), End: day("2026-01-10")}
	c := DateRange{Start: day("2026-01-03"), End: day("2026-01-10")}

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(b))

	assert.True(t, a.Contains(day("2026-01-01")))
	assert.True(t, a.Contains(day("2026-01-04")))
	assert.False(t, a.Contains(day("2026-01-05")))
}

func TestMonthRange(t *testing.T) {
	r, err := MonthRange("2026-02")
	require.NoError(t, err)
	assert.Equal(t, day("2026-02-01"), r.Start)
	assert.Equal(t, day("2026-03-01"), r.End)
	assert.Equal(t, 28, r.Nights())

	_, err = MonthRange("02/2026")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat))
}
