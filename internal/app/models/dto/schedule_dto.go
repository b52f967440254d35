package dto

// PreferencesRequest carries the recognized scheduling preferences.
// Unset fields mean "no constraint".
type PreferencesRequest struct {
	ExcludedDays      []string `json:"excludedDays,omitempty" example:"Friday"`
	EarliestStart     string   `json:"earliestStart,omitempty" example:"10:00"`
	LatestEnd         string   `json:"latestEnd,omitempty" example:"5:00 PM"`
	PreferredCampuses []string `json:"preferredCampuses,omitempty" example:"BUS,LIV"`
	StrictCampus      bool     `json:"strictCampus,omitempty" example:"false"`
}

// AssembleScheduleRequest is the schedule assembly request body. Courses
// may be ids or exact titles; Subject pulls in a whole subject's catalog.
type AssembleScheduleRequest struct {
	Courses     []string            `json:"courses,omitempty" example:"198:111,640:151"`
	Subject     string              `json:"subject,omitempty" example:"198"`
	CoreTags    []string            `json:"coreTags,omitempty" example:"WCR,QR"`
	Standing    string              `json:"standing,omitempty" example:"FIRST_YEAR" enums:"FIRST_YEAR,SOPHOMORE_OR_ABOVE"`
	Completed   []string            `json:"completed,omitempty" example:"198:111"`
	SessionID   string              `json:"sessionId,omitempty"`
	Preferences *PreferencesRequest `json:"preferences,omitempty"`
	AutoFill    bool                `json:"autoFill,omitempty" example:"true"`
	MaxCredits  float64             `json:"maxCredits,omitempty" example:"18"`
}

// PlacedCourseResponse is one course placed on the assembled schedule
type PlacedCourseResponse struct {
	CourseID string          `json:"courseId" example:"198:111"`
	Title    string          `json:"title" example:"Introduction to Computer Science"`
	Credits  float64         `json:"credits" example:"4"`
	CoreTags []string        `json:"coreTags,omitempty" example:"QR"`
	Source   string          `json:"source" example:"requested" enums:"requested,core_fill"`
	Section  SectionResponse `json:"section"`
}

// SkippedCourseResponse is one candidate the assembler could not place
type SkippedCourseResponse struct {
	CourseID string `json:"courseId" example:"640:152"`
	Reason   string `json:"reason" example:"conflict" enums:"conflict,ineligible,no_open_section"`
	Detail   string `json:"detail,omitempty" example:"every section overlaps a committed meeting"`
}

// ScheduleResponse is the assembled schedule
type ScheduleResponse struct {
	Status            string                  `json:"status" example:"partial" enums:"full,partial,empty"`
	TotalCredits      float64                 `json:"totalCredits" example:"15"`
	Placed            []PlacedCourseResponse  `json:"placed"`
	Skipped           []SkippedCourseResponse `json:"skipped"`
	SatisfiedCoreTags []string                `json:"satisfiedCoreTags,omitempty" example:"QR"`
	MissingCoreTags   []string                `json:"missingCoreTags,omitempty" example:"WCR"`
}
