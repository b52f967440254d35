package models

// CoreTag is an institution-defined general-education category a course
// may satisfy, e.g. writing or quantitative reasoning.
type CoreTag string

// Known core requirement tags and their display names.
var CoreTagNames = map[CoreTag]string{
	"AHO": "Arts & Humanities - Arts",
	"AHP": "Arts & Humanities - Literature",
	"AHQ": "Arts & Humanities - Philosophy",
	"AHR": "Arts & Humanities - Religion",
	"CCD": "Contemporary Challenges - Diversity",
	"CCO": "Contemporary Challenges - Our Common Future",
	"HST": "Historical Analysis",
	"ITR": "Information Technology",
	"NS":  "Natural Sciences",
	"QQ":  "Quantitative & Formal Reasoning - Math",
	"QR":  "Quantitative & Formal Reasoning - Reasoning",
	"SCL": "Social Analysis",
	"WCD": "Writing & Communication - Writing",
	"WCR": "Writing & Communication - Revision",
}

// PrerequisiteRule is one alternative way to clear a course's prerequisites:
// either every identifier in Required is in the student's completed set, or
// StandingOverride is set and the student is above first-year standing.
// Multiple rules on one course are OR'd. This is a deliberate simplification
// of the registrar's boolean prerequisite trees: any single full rule match
// clears the course.
type PrerequisiteRule struct {
	Required         []string `json:"required,omitempty"`
	StandingOverride bool     `json:"standingOverride,omitempty"`
}

// Course is one catalog entry. Immutable after catalog load.
type Course struct {
	ID               string             `json:"id"`      // "subject:number", e.g. "220:102"
	Subject          string             `json:"subject"` // zero-padded subject code
	Number           string             `json:"number"`
	Title            string             `json:"title"`
	Credits          float64            `json:"credits"`
	PrereqText       string             `json:"prereqText,omitempty"`
	Prereqs          []PrerequisiteRule `json:"prereqs,omitempty"`
	CoreTags         []CoreTag          `json:"coreTags,omitempty"`
	SafeForFirstYear bool               `json:"safeForFirstYear"`
	Sections         []Section          `json:"sections"`
}

// HasCoreTag reports whether the course carries the given tag.
func (c *Course) HasCoreTag(tag CoreTag) bool {
	for _, t := range c.CoreTags {
		if t == tag {
			return true
		}
	}
	return false
}

// OpenSectionCount counts sections with open seats.
func (c *Course) OpenSectionCount() int {
	n := 0
	for i := range c.Sections {
		if c.Sections[i].Open {
			n++
		}
	}
	return n
}
