package dto

// MeetingResponse represents one weekly meeting of a section. Times are
// rendered in both 12-hour and 24-hour form.
type MeetingResponse struct {
	Days        []string `json:"days" example:"Monday,Thursday"`
	StartTime   string   `json:"startTime,omitempty" example:"2:00 PM"`
	EndTime     string   `json:"endTime,omitempty" example:"3:20 PM"`
	StartTime24 string   `json:"startTime24h,omitempty" example:"14:00"`
	EndTime24   string   `json:"endTime24h,omitempty" example:"15:20"`
	Online      bool     `json:"online" example:"false"`
	Campus      string   `json:"campus,omitempty" example:"Busch"`
	Building    string   `json:"building,omitempty" example:"ARC"`
	Room        string   `json:"room,omitempty" example:"103"`
	Schedulable bool     `json:"schedulable" example:"true"`
	ParseIssue  string   `json:"parseIssue,omitempty"`
}

// SectionResponse represents one section of a course
type SectionResponse struct {
	Number     string            `json:"number" example:"01"`
	Index      string            `json:"index" example:"10101"`
	Open       bool              `json:"open" example:"true"`
	Instructor string            `json:"instructor,omitempty" example:"KNUTH"`
	Campus     string            `json:"campus,omitempty" example:"Busch"`
	Meetings   []MeetingResponse `json:"meetings"`
}

// CourseResponse represents a course with its sections
type CourseResponse struct {
	ID               string            `json:"id" example:"198:111"`
	Subject          string            `json:"subject" example:"198"`
	Number           string            `json:"number" example:"111"`
	Title            string            `json:"title" example:"Introduction to Computer Science"`
	Credits          float64           `json:"credits" example:"4"`
	CoreTags         []string          `json:"coreTags,omitempty" example:"QR"`
	Prerequisites    string            `json:"prerequisites,omitempty"`
	SafeForFirstYear bool              `json:"safeForFirstYear" example:"true"`
	OpenSections     int               `json:"openSections" example:"3"`
	Sections         []SectionResponse `json:"sections,omitempty"`
}

// CourseListResponse represents a catalog listing
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total" example:"120"`
}

// CoreTagResponse describes one core requirement tag
type CoreTagResponse struct {
	Code    string `json:"code" example:"QR"`
	Name    string `json:"name" example:"Quantitative Reasoning"`
	Courses int    `json:"courses" example:"214"`
}

// EligibleCoursesRequest filters the eligibility-checked course listing
type EligibleCoursesRequest struct {
	Subject   string   `json:"subject,omitempty" example:"198"`
	CoreTag   string   `json:"coreTag,omitempty" example:"QR"`
	Standing  string   `json:"standing,omitempty" example:"FIRST_YEAR" enums:"FIRST_YEAR,SOPHOMORE_OR_ABOVE"`
	Completed []string `json:"completed,omitempty" example:"198:111"`
	SessionID string   `json:"sessionId,omitempty"`
	Limit     int      `json:"limit,omitempty" example:"50"`
}
