package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

func TestParseClock_TwelveAndTwentyFourHourAgree(t *testing.T) {
	twelve, err := ParseClock("2:30 PM")
	require.NoError(t, err)
	twentyFour, err := ParseClock("14:30")
	require.NoError(t, err)

	assert.Equal(t, 14*60+30, twelve)
	assert.Equal(t, twelve, twentyFour)
}

func TestParseClock_Formats(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0:00", 0},
		{"9:05", 9*60 + 5},
		{"09:05", 9*60 + 5},
		{"23:59", 23*60 + 59},
		{"12:00 AM", 0},
		{"12:00 PM", 12 * 60},
		{"12:30 am", 30},
		{"1:00 pm", 13 * 60},
		{"1:00PM", 13 * 60},
		{"11:59 PM", 23*60 + 59},
		{"10:20:00", 10*60 + 20}, // registrar export with seconds
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

// A bare H:MM with a valid 24-hour value must be taken at face value.
// "2:30" is half past two in the morning, never guessed as afternoon.
func TestParseClock_BareClockIsNeverGuessedPM(t *testing.T) {
	got, err := ParseClock("2:30")
	require.NoError(t, err)
	assert.Equal(t, 2*60+30, got)
}

func TestParseClock_Unparseable(t *testing.T) {
	for _, in := range []string{"", "25:00", "24:00", "13:00 PM", "0:30 AM", "noon", "9:5", "10:60", "10"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, apperrors.ErrUnparseableTime, "input %q", in)
	}
}

func TestParseDay_ThursdayAliases(t *testing.T) {
	th, err := ParseDay("TH")
	require.NoError(t, err)
	r, err := ParseDay("R")
	require.NoError(t, err)
	full, err := ParseDay("Thursday")
	require.NoError(t, err)

	assert.Equal(t, Thursday, th)
	assert.Equal(t, Thursday, r)
	assert.Equal(t, Thursday, full)
}

func TestParseDay_CaseInsensitive(t *testing.T) {
	d, err := ParseDay("monday")
	require.NoError(t, err)
	assert.Equal(t, Monday, d)

	d, err = ParseDay(" w ")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)
}

func TestParseDay_ContainmentFallback(t *testing.T) {
	// "TUES" is not an exact token but is a prefix-extension of "T".
	d, err := ParseDay("TUES")
	require.NoError(t, err)
	assert.Equal(t, Tuesday, d)

	// "MON" extends "M".
	d, err = ParseDay("MON")
	require.NoError(t, err)
	assert.Equal(t, Monday, d)
}

// A token matching more than one code must resolve the same way on every
// call. "THU" extends both "T" and "TH"; the "T" probe comes first, so it
// is always Tuesday, never Thursday.
func TestParseDay_AmbiguousFallbackIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		d, err := ParseDay("THU")
		require.NoError(t, err)
		assert.Equal(t, Tuesday, d)
	}
}

func TestParseDay_Unparseable(t *testing.T) {
	for _, in := range []string{"", "X", "SUNDAY", "99"} {
		_, err := ParseDay(in)
		assert.ErrorIs(t, err, apperrors.ErrUnparseableDay, "input %q", in)
	}
}

func TestDaySet_Operations(t *testing.T) {
	s := NewDaySet(Monday, Wednesday)

	assert.True(t, s.Contains(Monday))
	assert.False(t, s.Contains(Tuesday))
	assert.True(t, s.Intersects(NewDaySet(Wednesday, Friday)))
	assert.False(t, s.Intersects(NewDaySet(Tuesday, Thursday)))
	assert.True(t, DaySet(0).IsEmpty())
	assert.Equal(t, []string{"Monday", "Wednesday"}, s.Names())
}

func TestFormatRoundTrip(t *testing.T) {
	for _, min := range []int{0, 30, 9*60 + 5, 12 * 60, 14*60 + 30, 23*60 + 59} {
		from24, err := ParseClock(Format24(min))
		require.NoError(t, err)
		assert.Equal(t, min, from24)

		from12, err := ParseClock(Format12(min))
		require.NoError(t, err)
		assert.Equal(t, min, from12)
	}
}
