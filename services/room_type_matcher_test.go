package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRoomTypes(t *testing.T) {
	known := []string{"Double", "Suite", "Phòng Đơn", "double"}

	assert.ElementsMatch(t, []string{"Double", "double"}, MatchRoomTypes("DOUBLE", known))
	assert.Equal(t, []string{"Suite"}, MatchRoomTypes("suit", known))
	assert.Equal(t, []string{"Phòng Đơn"}, MatchRoomTypes("phong don", known))
	assert.Nil(t, MatchRoomTypes("", known))
	assert.Nil(t, MatchRoomTypes("penthouse", known))
	assert.Nil(t, MatchRoomTypes("suite", nil))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Equal(t, 1.0, calculateSimilarity("suite", "suite"))
	assert.InDelta(t, 0.8, calculateSimilarity("suit", "suite"), 0.001)
}
