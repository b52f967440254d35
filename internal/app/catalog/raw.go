// Package catalog owns the immutable in-memory course catalog: the raw
// registrar record format, the single translation step into typed
// entities, the lookup indexes, and the atomically swapped store shared by
// every request.
package catalog

// RawMeeting is one meeting record as produced by the catalog conversion
// collaborator. Times may arrive in 12-hour or 24-hour form; the 24-hour
// fields are preferred when present.
type RawMeeting struct {
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	StartTime24 string `json:"start_time_24h,omitempty"`
	EndTime24   string `json:"end_time_24h,omitempty"`
	Campus      string `json:"campus,omitempty"`
	Building    string `json:"building,omitempty"`
	Room        string `json:"room,omitempty"`
	Mode        string `json:"mode,omitempty"`
}

// RawSection is one section record in the normalized feed format.
type RawSection struct {
	SectionNumber string       `json:"section_number"`
	Index         string       `json:"index"`
	IsOpen        bool         `json:"is_open"`
	Instructor    string       `json:"instructor,omitempty"`
	Campus        string       `json:"campus,omitempty"`
	Meetings      []RawMeeting `json:"meetings"`
}

// RawCourse is one course record keyed by "subject:number" in RawCatalog.
type RawCourse struct {
	Title         string       `json:"title"`
	Credits       float64      `json:"credits"`
	Prerequisites string       `json:"prerequisites,omitempty"`
	CoreCodes     []string     `json:"core_codes,omitempty"`
	Sections      []RawSection `json:"sections"`
}

// RawCatalog is the on-disk catalog format consumed at load time.
type RawCatalog struct {
	Courses map[string]RawCourse `json:"courses"`
}
