package models

// Section is one offered instance of a course and the atomic unit the
// assembler selects: choosing a course means choosing exactly one of its
// sections.
type Section struct {
	CourseID   string    `json:"courseId"`
	Number     string    `json:"number"`
	Index      string    `json:"index"` // registration index
	Open       bool      `json:"open"`
	Instructor string    `json:"instructor,omitempty"`
	Campus     string    `json:"campus,omitempty"`
	Meetings   []Meeting `json:"meetings"`
}

// Schedulable reports whether every meeting of the section either
// normalized cleanly or is online. Sections with unparseable meetings are
// kept in listings but can never be placed on a schedule.
func (s *Section) Schedulable() bool {
	for i := range s.Meetings {
		if !s.Meetings[i].Schedulable() {
			return false
		}
	}
	return true
}
