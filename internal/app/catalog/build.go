package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ogulcan/coursepilot/internal/app/models"
	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
	"github.com/ogulcan/coursepilot/internal/pkg/timegrid"
)

// courseIDPattern matches registrar course identifiers embedded in free
// prerequisite text, e.g. "01:198:111" or "198:112". The school prefix is
// discarded; catalog keys are subject:number pairs.
var courseIDPattern = regexp.MustCompile(`\b(?:\d{1,2}:)?(\d{1,3}):(\d{3})\b`)

// NormalizeCourseID zero-pads the subject part so "1:198" and "001:198"
// style variants collapse to one canonical key. Inputs that are not
// "subject:number" pairs are returned trimmed as-is.
func NormalizeCourseID(id string) string {
	trimmed := strings.TrimSpace(id)
	subject, number, ok := strings.Cut(trimmed, ":")
	if !ok {
		return trimmed
	}
	for len(subject) < 3 {
		subject = "0" + subject
	}
	return subject + ":" + number
}

// ParsePrereqText translates free-form prerequisite text into alternative
// rules. The text is split on "or" boundaries; each fragment contributes
// one rule requiring every course id it mentions. Text that names no course
// ids at all yields a single standing-override rule: the requirement cannot
// be checked mechanically, so it only blocks first-year students.
func ParsePrereqText(text string) []models.PrerequisiteRule {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var rules []models.PrerequisiteRule
	for _, fragment := range splitAlternatives(trimmed) {
		matches := courseIDPattern.FindAllStringSubmatch(fragment, -1)
		if len(matches) == 0 {
			continue
		}
		required := make([]string, 0, len(matches))
		seen := make(map[string]bool, len(matches))
		for _, m := range matches {
			normalized := NormalizeCourseID(m[1] + ":" + m[2])
			if !seen[normalized] {
				seen[normalized] = true
				required = append(required, normalized)
			}
		}
		rules = append(rules, models.PrerequisiteRule{Required: required})
	}

	if len(rules) == 0 {
		return []models.PrerequisiteRule{{StandingOverride: true}}
	}
	return rules
}

var orBoundary = regexp.MustCompile(`(?i)\bor\b`)

func splitAlternatives(text string) []string {
	return orBoundary.Split(text, -1)
}

// Build translates a raw catalog into the immutable typed form. Meetings
// that fail day or time normalization are retained with their parse issue
// recorded rather than dropped, so the affected sections surface as
// unschedulable instead of vanishing.
func Build(raw RawCatalog) (*Catalog, error) {
	if len(raw.Courses) == 0 {
		return nil, apperrors.ErrInvalidCatalog
	}

	courses := make(map[string]*models.Course, len(raw.Courses))
	for key, rc := range raw.Courses {
		id := NormalizeCourseID(key)
		subject, _, _ := strings.Cut(id, ":")

		course := &models.Course{
			ID:               id,
			Subject:          subject,
			Number:           strings.TrimPrefix(id, subject+":"),
			Title:            strings.TrimSpace(rc.Title),
			Credits:          rc.Credits,
			PrereqText:       strings.TrimSpace(rc.Prerequisites),
			Prereqs:          ParsePrereqText(rc.Prerequisites),
			SafeForFirstYear: strings.TrimSpace(rc.Prerequisites) == "",
		}
		for _, code := range rc.CoreCodes {
			tag := models.CoreTag(strings.ToUpper(strings.TrimSpace(code)))
			if tag != "" {
				course.CoreTags = append(course.CoreTags, tag)
			}
		}
		for _, rs := range rc.Sections {
			course.Sections = append(course.Sections, buildSection(id, rs))
		}
		courses[id] = course
	}

	order := make([]string, 0, len(courses))
	for id := range courses {
		order = append(order, id)
	}
	sort.Strings(order)

	return newCatalog(courses, order), nil
}

func buildSection(courseID string, rs RawSection) models.Section {
	section := models.Section{
		CourseID:   courseID,
		Number:     strings.TrimSpace(rs.SectionNumber),
		Index:      strings.TrimSpace(rs.Index),
		Open:       rs.IsOpen,
		Instructor: strings.TrimSpace(rs.Instructor),
		Campus:     NormalizeCampus(rs.Campus),
	}
	for _, rm := range rs.Meetings {
		section.Meetings = append(section.Meetings, buildMeeting(rs, rm))
	}
	return section
}

func buildMeeting(rs RawSection, rm RawMeeting) models.Meeting {
	meeting := models.Meeting{
		Building: strings.TrimSpace(rm.Building),
		Room:     strings.TrimSpace(rm.Room),
		Campus:   NormalizeCampus(rm.Campus),
	}
	if meeting.Campus == "" {
		meeting.Campus = NormalizeCampus(rs.Campus)
	}

	if isOnlineMeeting(rs, rm) {
		meeting.Online = true
		return meeting
	}

	day, err := timegrid.ParseDay(rm.Day)
	if err != nil {
		meeting.ParseIssue = err.Error()
		return meeting
	}
	meeting.Days = meeting.Days.Add(day)

	start, err := timegrid.ParseClock(firstNonEmpty(rm.StartTime24, rm.StartTime))
	if err != nil {
		meeting.ParseIssue = err.Error()
		return meeting
	}
	end, err := timegrid.ParseClock(firstNonEmpty(rm.EndTime24, rm.EndTime))
	if err != nil {
		meeting.ParseIssue = err.Error()
		return meeting
	}
	if start >= end {
		meeting.ParseIssue = fmt.Sprintf("meeting ends before it starts: %s-%s",
			timegrid.Format24(start), timegrid.Format24(end))
		return meeting
	}

	meeting.StartMinutes = start
	meeting.EndMinutes = end
	return meeting
}

func isOnlineMeeting(rs RawSection, rm RawMeeting) bool {
	mode := strings.ToUpper(rm.Mode)
	if strings.Contains(mode, "ONLINE") || strings.Contains(mode, "REMOTE") || strings.Contains(mode, "ASYNC") {
		return true
	}
	if isOnlineCampus(rm.Campus) {
		return true
	}
	// Sections on the online campus sometimes report meetings with no day
	// or times at all.
	return isOnlineCampus(rs.Campus) && strings.TrimSpace(rm.Day) == ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
