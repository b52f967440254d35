package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedCourse() FeedCourse {
	return FeedCourse{
		Subject:      "198",
		CourseNumber: "111",
		Title:        "Introduction to Computer Science",
		Credits:      4,
		PreReqNotes:  "",
		CoreCodes:    []FeedCoreCode{{Code: "qr"}},
		Sections: []FeedSection{{
			Number:     "01",
			Index:      "10101",
			OpenStatus: "O",
			MeetingTimes: []FeedMeetingTime{{
				MeetingDay:   "M",
				StartTime:    "2:00 PM",
				EndTime:      "3:20 PM",
				CampusName:   "BUSCH",
				BuildingCode: "ARC",
				RoomNumber:   "103",
			}},
		}},
	}
}

func TestConvertFeed(t *testing.T) {
	raw := ConvertFeed([]FeedCourse{feedCourse()})

	course, ok := raw.Courses["198:111"]
	require.True(t, ok)
	assert.Equal(t, []string{"QR"}, course.CoreCodes)
	require.Len(t, course.Sections, 1)

	section := course.Sections[0]
	assert.True(t, section.IsOpen)
	assert.Equal(t, "10101", section.Index)
	require.Len(t, section.Meetings, 1)

	meeting := section.Meetings[0]
	assert.Equal(t, "M", meeting.Day)
	assert.Equal(t, "2:00 PM", meeting.StartTime)
	assert.Equal(t, "14:00", meeting.StartTime24)
	assert.Equal(t, "BUS", meeting.Campus)
}

func TestConvertFeed_OpenStatusVariants(t *testing.T) {
	assert.True(t, feedOpen("O"))
	assert.True(t, feedOpen("o"))
	assert.False(t, feedOpen("C"))
	assert.True(t, feedOpen(true))
	assert.False(t, feedOpen(false))
	assert.False(t, feedOpen(nil))
}

func TestConvertFeed_DropsInvalidMeetings(t *testing.T) {
	fc := feedCourse()
	fc.Sections[0].MeetingTimes = append(fc.Sections[0].MeetingTimes,
		FeedMeetingTime{MeetingDay: "X9", StartTime: "2:00 PM", EndTime: "3:00 PM"},
		FeedMeetingTime{MeetingDay: "T", StartTime: "", EndTime: "3:00 PM"},
	)

	raw := ConvertFeed([]FeedCourse{fc})
	require.Len(t, raw.Courses["198:111"].Sections, 1)
	assert.Len(t, raw.Courses["198:111"].Sections[0].Meetings, 1)
}

func TestConvertFeed_KeepsUntimedSectionsWhenNothingElse(t *testing.T) {
	fc := feedCourse()
	fc.Sections[0].MeetingTimes = nil

	raw := ConvertFeed([]FeedCourse{fc})
	require.Len(t, raw.Courses["198:111"].Sections, 1)
	assert.Empty(t, raw.Courses["198:111"].Sections[0].Meetings)
}

func TestConvertFeed_SkipsCoursesWithoutKey(t *testing.T) {
	raw := ConvertFeed([]FeedCourse{{Title: "Orphan"}})
	assert.Empty(t, raw.Courses)
}

func TestConvertFeed_ZeroPadsKeys(t *testing.T) {
	fc := feedCourse()
	fc.Subject = "90"
	fc.CourseNumber = "11"

	raw := ConvertFeed([]FeedCourse{fc})
	_, ok := raw.Courses["090:011"]
	assert.True(t, ok)
}

func TestFeedCampusCode(t *testing.T) {
	assert.Equal(t, "BUS", feedCampusCode("Busch Campus"))
	assert.Equal(t, "LIV", feedCampusCode("LIVINGSTON"))
	assert.Equal(t, "CAC", feedCampusCode("College Avenue"))
	assert.Equal(t, "D/C", feedCampusCode("Cook/Douglass"))
	assert.Equal(t, "ONLINE", feedCampusCode("Online Campus"))
	assert.Equal(t, "", feedCampusCode(""))
	assert.Equal(t, "DOW", feedCampusCode("Downtown"))
}