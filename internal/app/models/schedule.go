package models

// SkipReason tags why a candidate course could not be placed.
type SkipReason string

const (
	SkipConflict      SkipReason = "conflict"
	SkipIneligible    SkipReason = "ineligible"
	SkipNoOpenSection SkipReason = "no_open_section"
)

// SkippedCourse records one course the assembler could not place.
type SkippedCourse struct {
	CourseID string     `json:"courseId"`
	Reason   SkipReason `json:"reason"`
	Detail   string     `json:"detail,omitempty"`
}

// ScheduleCandidate maps each placed course to its chosen section and keeps
// the flattened list of committed meetings. Invariant: no two timed
// meetings share a weekday with overlapping [start,end) intervals. Built
// fresh per request and discarded after being returned.
type ScheduleCandidate struct {
	Sections map[string]*Section
	// Order preserves placement order for deterministic output.
	Order    []string
	Meetings []Meeting
}

// NewScheduleCandidate returns an empty candidate ready for placement.
func NewScheduleCandidate() *ScheduleCandidate {
	return &ScheduleCandidate{Sections: make(map[string]*Section)}
}

// Place commits a section for its course and flattens its meetings.
func (sc *ScheduleCandidate) Place(courseID string, section *Section) {
	sc.Sections[courseID] = section
	sc.Order = append(sc.Order, courseID)
	sc.Meetings = append(sc.Meetings, section.Meetings...)
}

// Contains reports whether the course already has a placed section.
func (sc *ScheduleCandidate) Contains(courseID string) bool {
	_, ok := sc.Sections[courseID]
	return ok
}

// Len returns the number of placed courses.
func (sc *ScheduleCandidate) Len() int {
	return len(sc.Order)
}
