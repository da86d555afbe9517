package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestComputeStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, ComputeStreak(nil, day(0)))
}

func TestComputeStreakStartsToday(t *testing.T) {
	dates := []time.Time{day(0), day(-1), day(-2)}
	assert.Equal(t, 3, ComputeStreak(dates, day(0)))
}

func TestComputeStreakStartsYesterday(t *testing.T) {
	// no activity yet today keeps yesterday's chain alive
	dates := []time.Time{day(-1), day(-2)}
	assert.Equal(t, 2, ComputeStreak(dates, day(0)))
}

func TestComputeStreakBrokenHead(t *testing.T) {
	// most recent activity two days ago: streak is over
	dates := []time.Time{day(-2), day(-3), day(-4)}
	assert.Equal(t, 0, ComputeStreak(dates, day(0)))
}

func TestComputeStreakGapInChain(t *testing.T) {
	dates := []time.Time{day(0), day(-1), day(-3), day(-4)}
	assert.Equal(t, 2, ComputeStreak(dates, day(0)))
}

func TestComputeStreakSingleDay(t *testing.T) {
	assert.Equal(t, 1, ComputeStreak([]time.Time{day(0)}, day(0)))
}

func TestComputeStreakIgnoresTimeOfDay(t *testing.T) {
	dates := []time.Time{
		day(0).Add(23 * time.Hour),
		day(-1).Add(5 * time.Minute),
	}
	now := day(0).Add(8 * time.Hour)
	assert.Equal(t, 2, ComputeStreak(dates, now))
}
