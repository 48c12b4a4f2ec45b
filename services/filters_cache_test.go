package services

import (
	"testing"
	"time"

	"hotelops/dto"

	"github.com/stretchr/testify/assert"
)

func TestMergeFilters(t *testing.T) {
	floor := 2
	guests := 3
	maxPrice := 150.0
	start := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	old := &dto.RoomSearchFilters{
		StartDate: &start,
		EndDate:   &end,
		RoomType:  "Suite",
		Floor:     &floor,
		Features:  []string{"Balcony"},
		MaxPrice:  &maxPrice,
	}
	next := &dto.RoomSearchFilters{
		Guests:   &guests,
		Features: []string{"balcony", "Sea view"},
	}

	merged := MergeFilters(old, next)
	assert.Equal(t, "Suite", merged.RoomType)
	assert.Equal(t, &floor, merged.Floor)
	assert.Equal(t, &guests, merged.Guests)
	assert.Equal(t, &maxPrice, merged.MaxPrice)
	assert.Equal(t, &start, merged.StartDate)
	assert.Equal(t, &end, merged.EndDate)
	assert.Equal(t, []string{"Balcony", "Sea view"}, merged.Features)
}

func TestMergeFilters_NewRangeReplacesOld(t *testing.T) {
	oldStart := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	oldEnd := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	newStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	merged := MergeFilters(
		&dto.RoomSearchFilters{StartDate: &oldStart, EndDate: &oldEnd},
		&dto.RoomSearchFilters{StartDate: &newStart},
	)
	assert.Equal(t, &newStart, merged.StartDate)
	assert.Nil(t, merged.EndDate)

	fresh := &dto.RoomSearchFilters{RoomType: "Double"}
	assert.Same(t, fresh, MergeFilters(nil, fresh))
}
