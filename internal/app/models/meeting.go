package models

import "github.com/ogulcan/coursepilot/internal/pkg/timegrid"

// Meeting is a single recurring weekly time block of a section.
//
// Online or asynchronous meetings carry no weekdays and no times; they are
// schedulable and never conflict with anything. Meetings whose raw day or
// time tokens failed normalization are retained with ParseIssue set and are
// treated as non-schedulable rather than silently dropped.
type Meeting struct {
	Days         timegrid.DaySet `json:"-"`
	StartMinutes int             `json:"startMinutes"`
	EndMinutes   int             `json:"endMinutes"`
	Online       bool            `json:"online,omitempty"`
	Building     string          `json:"building,omitempty"`
	Room         string          `json:"room,omitempty"`
	Campus       string          `json:"campus,omitempty"`
	ParseIssue   string          `json:"parseIssue,omitempty"`
}

// Schedulable reports whether the meeting can participate in conflict
// checks and placement. Online meetings are schedulable by definition.
func (m *Meeting) Schedulable() bool {
	return m.ParseIssue == ""
}

// Timed reports whether the meeting occupies actual weekday time, i.e. it
// normalized cleanly and is not online.
func (m *Meeting) Timed() bool {
	return m.Schedulable() && !m.Online && !m.Days.IsEmpty()
}
