// Package scheduling implements the schedule assembly engine: the conflict
// predicate, the eligibility filter, and the greedy section placer with
// core-requirement backfill.
package scheduling

import "github.com/ogulcan/coursepilot/internal/app/models"

// Conflicts reports whether two meetings collide: their weekday sets
// intersect and their minute intervals overlap under the half-open rule
// [start, end). Online meetings and meetings that failed normalization
// occupy no weekday time and never conflict with anything, including each
// other. This predicate is the single source of truth for overlap, used by
// both placement and post-hoc validation.
func Conflicts(a, b models.Meeting) bool {
	if !a.Timed() || !b.Timed() {
		return false
	}
	if !a.Days.Intersects(b.Days) {
		return false
	}
	return a.StartMinutes < b.EndMinutes && b.StartMinutes < a.EndMinutes
}

// fits reports whether a section's meetings conflict with none of the
// already committed meetings.
func fits(section *models.Section, committed []models.Meeting, comparisons *int) bool {
	for i := range section.Meetings {
		for j := range committed {
			*comparisons++
			if Conflicts(section.Meetings[i], committed[j]) {
				return false
			}
		}
	}
	return true
}
