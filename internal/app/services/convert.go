package services

import (
	"strings"

	"github.com/ogulcan/coursepilot/internal/app/models"
	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/pkg/timegrid"
)

func normalizeTag(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func meetingToDTO(m models.Meeting) dto.MeetingResponse {
	resp := dto.MeetingResponse{
		Days:        m.Days.Names(),
		Online:      m.Online,
		Campus:      m.Campus,
		Building:    m.Building,
		Room:        m.Room,
		Schedulable: m.Schedulable(),
		ParseIssue:  m.ParseIssue,
	}
	if m.Timed() {
		resp.StartTime = timegrid.Format12(m.StartMinutes)
		resp.EndTime = timegrid.Format12(m.EndMinutes)
		resp.StartTime24 = timegrid.Format24(m.StartMinutes)
		resp.EndTime24 = timegrid.Format24(m.EndMinutes)
	}
	return resp
}

func sectionToDTO(s *models.Section) dto.SectionResponse {
	resp := dto.SectionResponse{
		Number:     s.Number,
		Index:      s.Index,
		Open:       s.Open,
		Instructor: s.Instructor,
		Campus:     s.Campus,
		Meetings:   make([]dto.MeetingResponse, 0, len(s.Meetings)),
	}
	for _, m := range s.Meetings {
		resp.Meetings = append(resp.Meetings, meetingToDTO(m))
	}
	return resp
}

func coreTagNames(tags []models.CoreTag) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, string(t))
	}
	return out
}

// courseToDTO renders a course. Sections are included only when
// withSections is set; listings stay light, detail views carry the full
// meeting breakdown.
func courseToDTO(c *models.Course, withSections bool) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:               c.ID,
		Subject:          c.Subject,
		Number:           c.Number,
		Title:            c.Title,
		Credits:          c.Credits,
		CoreTags:         coreTagNames(c.CoreTags),
		Prerequisites:    c.PrereqText,
		SafeForFirstYear: c.SafeForFirstYear,
		OpenSections:     c.OpenSectionCount(),
	}
	if withSections {
		resp.Sections = make([]dto.SectionResponse, 0, len(c.Sections))
		for i := range c.Sections {
			resp.Sections = append(resp.Sections, sectionToDTO(&c.Sections[i]))
		}
	}
	return resp
}
