package catalog

import (
	"encoding/json"
	"strings"

	"github.com/ogulcan/coursepilot/internal/pkg/timegrid"
)

// The feed types mirror the registrar API export consumed by the convert
// command. Field coverage is limited to what the catalog actually uses.

type FeedMeetingTime struct {
	MeetingDay      string `json:"meetingDay"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	CampusName      string `json:"campusName"`
	CampusCode      string `json:"campusCode"`
	BuildingCode    string `json:"buildingCode"`
	RoomNumber      string `json:"roomNumber"`
	MeetingModeDesc string `json:"meetingModeDesc"`
}

type FeedSection struct {
	Number string      `json:"number"`
	Index  json.Number `json:"index"`
	// OpenStatus arrives as "O"/"C" in some exports and as a boolean in
	// others.
	OpenStatus   interface{}       `json:"openStatus"`
	Instructors  []FeedInstructor  `json:"instructors"`
	MeetingTimes []FeedMeetingTime `json:"meetingTimes"`
}

type FeedInstructor struct {
	Name string `json:"name"`
}

type FeedCoreCode struct {
	Code string `json:"code"`
}

type FeedCourse struct {
	Subject       string         `json:"subject"`
	CourseNumber  string         `json:"courseNumber"`
	Title         string         `json:"title"`
	ExpandedTitle string         `json:"expandedTitle"`
	Credits       float64        `json:"credits"`
	PreReqNotes   string         `json:"preReqNotes"`
	CoreCodes     []FeedCoreCode `json:"coreCodes"`
	Sections      []FeedSection  `json:"sections"`
}

// ConvertFeed translates a registrar feed export into the raw catalog
// format. Courses without a subject and number are dropped; meetings with
// an unrecognizable day or missing times are dropped, but a section whose
// meetings all drop is still kept when the course has no timed sections
// at all, since those are usually asynchronous offerings.
func ConvertFeed(courses []FeedCourse) RawCatalog {
	raw := RawCatalog{Courses: make(map[string]RawCourse, len(courses))}

	for _, fc := range courses {
		subject := strings.TrimSpace(fc.Subject)
		number := strings.TrimSpace(fc.CourseNumber)
		if subject == "" || number == "" {
			continue
		}
		key := NormalizeCourseID(subject + ":" + zfill(number))

		title := strings.TrimSpace(fc.Title)
		if title == "" {
			title = strings.TrimSpace(fc.ExpandedTitle)
		}

		course := RawCourse{
			Title:         title,
			Credits:       fc.Credits,
			Prerequisites: strings.TrimSpace(fc.PreReqNotes),
		}
		for _, cc := range fc.CoreCodes {
			if code := strings.ToUpper(strings.TrimSpace(cc.Code)); code != "" {
				course.CoreCodes = append(course.CoreCodes, code)
			}
		}

		var timed, untimed []RawSection
		for _, fs := range fc.Sections {
			section := convertFeedSection(fs)
			if len(section.Meetings) > 0 {
				timed = append(timed, section)
			} else {
				untimed = append(untimed, section)
			}
		}
		course.Sections = timed
		if len(timed) == 0 {
			course.Sections = untimed
		}

		raw.Courses[key] = course
	}
	return raw
}

func convertFeedSection(fs FeedSection) RawSection {
	section := RawSection{
		SectionNumber: strings.TrimSpace(fs.Number),
		Index:         fs.Index.String(),
		IsOpen:        feedOpen(fs.OpenStatus),
	}
	if len(fs.Instructors) > 0 {
		section.Instructor = strings.TrimSpace(fs.Instructors[0].Name)
	}

	for _, mt := range fs.MeetingTimes {
		if _, err := timegrid.ParseDay(mt.MeetingDay); err != nil {
			continue
		}
		start, errStart := timegrid.ParseClock(mt.StartTime)
		end, errEnd := timegrid.ParseClock(mt.EndTime)
		if errStart != nil || errEnd != nil {
			continue
		}

		campus := mt.CampusName
		if campus == "" {
			campus = mt.CampusCode
		}
		section.Meetings = append(section.Meetings, RawMeeting{
			Day:         mt.MeetingDay,
			StartTime:   timegrid.Format12(start),
			EndTime:     timegrid.Format12(end),
			StartTime24: timegrid.Format24(start),
			EndTime24:   timegrid.Format24(end),
			Campus:      feedCampusCode(campus),
			Building:    strings.TrimSpace(mt.BuildingCode),
			Room:        strings.TrimSpace(mt.RoomNumber),
			Mode:        strings.TrimSpace(mt.MeetingModeDesc),
		})
	}
	return section
}

func feedOpen(status interface{}) bool {
	switch v := status.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "O")
	default:
		return status != nil
	}
}

// feedCampusCode collapses campus names to the registrar's short codes.
func feedCampusCode(campus string) string {
	c := strings.ToUpper(strings.TrimSpace(campus))
	switch {
	case c == "":
		return ""
	case strings.Contains(c, "BUSCH") || c == "BUS":
		return "BUS"
	case strings.Contains(c, "LIVINGSTON") || c == "LIV":
		return "LIV"
	case strings.Contains(c, "COLLEGE") || c == "CAC":
		return "CAC"
	case strings.Contains(c, "DOUGLASS") || strings.Contains(c, "COOK") || c == "D/C":
		return "D/C"
	case strings.Contains(c, "ONLINE"):
		return "ONLINE"
	case len(c) > 3:
		return c[:3]
	default:
		return c
	}
}

func zfill(s string) string {
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
