package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2026-01-07 12:00 local
var wednesdayNoon = time.Date(2026, 1, 7, 12, 0, 0, 0, time.Local)

func TestNextOccurrenceSameWeek(t *testing.T) {
	at, err := NextOccurrence("Fri 10:00 AM", wednesdayNoon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 9, 10, 0, 0, 0, time.Local), at)
}

func TestNextOccurrenceWrapsToNextWeek(t *testing.T) {
	// Monday is behind Wednesday, so it lands five days ahead
	at, err := NextOccurrence("Mon 9:30 PM", wednesdayNoon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 12, 21, 30, 0, 0, time.Local), at)
}

func TestNextOccurrenceTodayStillAhead(t *testing.T) {
	at, err := NextOccurrence("Wed 3:00 PM", wednesdayNoon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 7, 15, 0, 0, 0, time.Local), at)
	assert.True(t, IsSlotInFuture("Wed 3:00 PM", wednesdayNoon))
}

func TestNextOccurrenceTodayAlreadyPast(t *testing.T) {
	// today counts as offset zero, so a slot earlier today resolves to the
	// past and is not bookable
	at, err := NextOccurrence("Wed 10:00 AM", wednesdayNoon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 7, 10, 0, 0, 0, time.Local), at)
	assert.False(t, IsSlotInFuture("Wed 10:00 AM", wednesdayNoon))
}

func TestNextOccurrenceMalformedLabels(t *testing.T) {
	for _, label := range []string{
		"",
		"Monday 10:00 AM",
		"Mon 10:00",
		"Mon 25:00 AM",
		"10:00 AM Mon",
	} {
		_, err := NextOccurrence(label, wednesdayNoon)
		assert.Error(t, err, "label %q", label)
		assert.False(t, IsSlotInFuture(label, wednesdayNoon), "label %q", label)
	}
}

func TestNextOccurrenceTwelveHourClock(t *testing.T) {
	at, err := NextOccurrence("Thu 12:00 PM", wednesdayNoon)
	require.NoError(t, err)
	assert.Equal(t, 12, at.Hour())

	at, err = NextOccurrence("Thu 12:15 AM", wednesdayNoon)
	require.NoError(t, err)
	assert.Equal(t, 0, at.Hour())
	assert.Equal(t, 15, at.Minute())
}
