package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ogulcan/coursepilot/internal/app/models"
	"github.com/ogulcan/coursepilot/internal/pkg/timegrid"
)

func meeting(days timegrid.DaySet, start, end int) models.Meeting {
	return models.Meeting{Days: days, StartMinutes: start, EndMinutes: end}
}

func TestConflicts_OverlapSameDay(t *testing.T) {
	a := meeting(timegrid.NewDaySet(timegrid.Tuesday), 10*60, 11*60+20)
	b := meeting(timegrid.NewDaySet(timegrid.Tuesday), 11*60, 12*60+20)

	assert.True(t, Conflicts(a, b))
	assert.True(t, Conflicts(b, a))
}

func TestConflicts_DisjointDays(t *testing.T) {
	a := meeting(timegrid.NewDaySet(timegrid.Monday, timegrid.Wednesday), 10*60, 11*60+20)
	b := meeting(timegrid.NewDaySet(timegrid.Tuesday, timegrid.Thursday), 10*60, 11*60+20)

	assert.False(t, Conflicts(a, b))
}

// Intervals are half-open: a meeting ending at 11:20 does not conflict
// with one starting at 11:20.
func TestConflicts_BackToBackIsNotAConflict(t *testing.T) {
	a := meeting(timegrid.NewDaySet(timegrid.Friday), 10*60, 11*60+20)
	b := meeting(timegrid.NewDaySet(timegrid.Friday), 11*60+20, 12*60+40)

	assert.False(t, Conflicts(a, b))
	assert.False(t, Conflicts(b, a))
}

func TestConflicts_Containment(t *testing.T) {
	outer := meeting(timegrid.NewDaySet(timegrid.Wednesday), 9*60, 12*60)
	inner := meeting(timegrid.NewDaySet(timegrid.Wednesday), 10*60, 11*60)

	assert.True(t, Conflicts(outer, inner))
	assert.True(t, Conflicts(inner, outer))
}

func TestConflicts_OnlineNeverConflicts(t *testing.T) {
	online := models.Meeting{Online: true}
	timed := meeting(timegrid.NewDaySet(timegrid.Monday), 10*60, 11*60)

	assert.False(t, Conflicts(online, timed))
	assert.False(t, Conflicts(timed, online))
	assert.False(t, Conflicts(online, online))
}

func TestConflicts_UnparseableMeetingNeverConflicts(t *testing.T) {
	broken := models.Meeting{ParseIssue: "unparseable time: \"noon\""}
	timed := meeting(timegrid.NewDaySet(timegrid.Monday), 10*60, 11*60)

	assert.False(t, Conflicts(broken, timed))
	assert.False(t, Conflicts(timed, broken))
}
