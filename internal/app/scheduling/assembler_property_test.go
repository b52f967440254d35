package scheduling

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ogulcan/coursepilot/internal/app/models"
	"github.com/ogulcan/coursepilot/internal/pkg/timegrid"
)

// TestAssemble_Invariant_NoConflictsEver property-tests the core invariant:
// for all pairs of meetings in any returned schedule, Conflicts(a,b) is
// false, no matter how adversarial the random section layout is.
func TestAssemble_Invariant_NoConflictsEver(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	allDays := []timegrid.Weekday{
		timegrid.Monday, timegrid.Tuesday, timegrid.Wednesday,
		timegrid.Thursday, timegrid.Friday,
	}

	for trial := 0; trial < 300; trial++ {
		numCourses := rng.Intn(10) + 1
		candidates := make([]*models.Course, numCourses)

		for i := 0; i < numCourses; i++ {
			numSections := rng.Intn(3) + 1
			sections := make([]models.Section, numSections)
			for j := range sections {
				numMeetings := rng.Intn(2) + 1
				meetings := make([]models.Meeting, numMeetings)
				for k := range meetings {
					if rng.Intn(10) == 0 {
						meetings[k] = models.Meeting{Online: true}
						continue
					}
					days := timegrid.NewDaySet(allDays[rng.Intn(len(allDays))])
					if rng.Intn(3) == 0 {
						days = days.Add(allDays[rng.Intn(len(allDays))])
					}
					start := (8 + rng.Intn(10)) * 60 // 08:00-17:00
					end := start + 55 + rng.Intn(90)
					meetings[k] = models.Meeting{Days: days, StartMinutes: start, EndMinutes: end}
				}
				sections[j] = models.Section{
					Number:   fmt.Sprintf("%02d", j+1),
					Open:     rng.Intn(4) != 0,
					Meetings: meetings,
				}
			}
			candidates[i] = &models.Course{
				ID:               fmt.Sprintf("%03d:%03d", 100+i, 100+rng.Intn(300)),
				Credits:          float64(rng.Intn(4) + 1),
				SafeForFirstYear: true,
				Sections:         sections,
			}
		}

		schedule, skipped := Assemble(candidates, sophomore(), Options{})

		for a := 0; a < len(schedule.Meetings); a++ {
			for b := a + 1; b < len(schedule.Meetings); b++ {
				assert.False(t, Conflicts(schedule.Meetings[a], schedule.Meetings[b]),
					"trial %d: meetings %d and %d conflict", trial, a, b)
			}
		}

		// Every candidate is accounted for: placed or skipped.
		seen := make(map[string]bool)
		for _, c := range candidates {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			if !schedule.Contains(c.ID) {
				found := false
				for _, s := range skipped {
					if s.CourseID == c.ID {
						found = true
						break
					}
				}
				assert.True(t, found, "trial %d: course %s neither placed nor skipped", trial, c.ID)
			}
		}
	}
}
