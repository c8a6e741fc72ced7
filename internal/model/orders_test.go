package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStarts(t *testing.T) {
	// четверг
	now := time.Date(2024, 5, 16, 15, 30, 0, 0, time.UTC)

	day, week, month := PeriodStarts(now)

	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), week)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), month)
}

func TestPeriodStarts_Sunday(t *testing.T) {
	now := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)

	_, week, month := PeriodStarts(now)

	assert.Equal(t, time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC), week)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), month)
}
