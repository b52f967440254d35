package models

import "github.com/ogulcan/coursepilot/internal/pkg/timegrid"

// Standing is the student's class-year category, collapsed to first-year
// versus sophomore-or-above.
type Standing string

const (
	StandingFirstYear        Standing = "FIRST_YEAR"
	StandingSophomoreOrAbove Standing = "SOPHOMORE_OR_ABOVE"
)

// PreferenceSet holds the recognized scheduling preferences. Zero values
// mean "no constraint".
type PreferenceSet struct {
	// ExcludedDays are hard violations: a section meeting on any of these
	// days is disqualified outright.
	ExcludedDays timegrid.DaySet
	// EarliestStart/LatestEnd bound meeting times in minutes since
	// midnight; nil means unbounded. Out-of-bounds times are hard
	// violations.
	EarliestStart *int
	LatestEnd     *int
	// PreferredCampuses is advisory: mismatches count as soft violations
	// in section ranking unless StrictCampus is set, in which case they
	// disqualify.
	PreferredCampuses []string
	StrictCampus      bool
}

// PrefersCampus reports whether campus matches the preference set. An
// empty preference list matches everything.
func (p *PreferenceSet) PrefersCampus(campus string) bool {
	if len(p.PreferredCampuses) == 0 {
		return true
	}
	for _, c := range p.PreferredCampuses {
		if c == campus {
			return true
		}
	}
	return false
}

// StudentContext carries everything about the requesting student that the
// eligibility filter and assembler need. Constructed per request.
type StudentContext struct {
	Standing        Standing
	Completed       map[string]bool // course ids already taken
	DesiredCoreTags []CoreTag
	Preferences     PreferenceSet
}

// HasCompleted reports whether the student already took the course.
func (sc *StudentContext) HasCompleted(courseID string) bool {
	return sc.Completed[courseID]
}
