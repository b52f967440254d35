package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ogulcan/coursepilot/internal/app/models"
)

func firstYear(completed ...string) models.StudentContext {
	sc := models.StudentContext{Standing: models.StandingFirstYear, Completed: map[string]bool{}}
	for _, id := range completed {
		sc.Completed[id] = true
	}
	return sc
}

func sophomore(completed ...string) models.StudentContext {
	sc := firstYear(completed...)
	sc.Standing = models.StandingSophomoreOrAbove
	return sc
}

func TestEligible_CompletedCourseExcluded(t *testing.T) {
	course := &models.Course{ID: "220:102", SafeForFirstYear: true}

	ok, detail := Eligible(course, firstYear("220:102"))

	assert.False(t, ok)
	assert.Equal(t, "already completed", detail)
}

func TestEligible_FirstYearNeedsSafeFlag(t *testing.T) {
	course := &models.Course{ID: "198:211", SafeForFirstYear: false}

	ok, _ := Eligible(course, firstYear())
	assert.False(t, ok)

	// Sophomore standing lifts the restriction entirely.
	ok, _ = Eligible(course, sophomore())
	assert.True(t, ok)
}

func TestEligible_PrereqRuleFullySatisfied(t *testing.T) {
	course := &models.Course{
		ID:               "198:211",
		SafeForFirstYear: true,
		Prereqs: []models.PrerequisiteRule{
			{Required: []string{"198:111", "198:112"}},
		},
	}

	ok, _ := Eligible(course, firstYear("198:111"))
	assert.False(t, ok, "partial rule match must not clear the course")

	ok, _ = Eligible(course, firstYear("198:111", "198:112"))
	assert.True(t, ok)
}

func TestEligible_RulesAreORed(t *testing.T) {
	course := &models.Course{
		ID:               "640:152",
		SafeForFirstYear: true,
		Prereqs: []models.PrerequisiteRule{
			{Required: []string{"640:151"}},
			{Required: []string{"640:153"}},
		},
	}

	ok, _ := Eligible(course, firstYear("640:153"))
	assert.True(t, ok, "any single satisfied rule clears the course")
}

func TestEligible_StandingOverrideRule(t *testing.T) {
	course := &models.Course{
		ID:               "830:331",
		SafeForFirstYear: true,
		Prereqs: []models.PrerequisiteRule{
			{StandingOverride: true},
		},
	}

	ok, _ := Eligible(course, firstYear())
	assert.False(t, ok, "override does not apply to first-year standing")

	ok, _ = Eligible(course, sophomore())
	assert.True(t, ok)
}

func TestFilterEligible_ReportsSkipsWithReason(t *testing.T) {
	courses := []*models.Course{
		{ID: "220:102", SafeForFirstYear: true},
		{ID: "220:103", SafeForFirstYear: false},
	}

	pool, skipped := FilterEligible(courses, firstYear())

	assert.Len(t, pool, 1)
	assert.Equal(t, "220:102", pool[0].ID)
	assert.Len(t, skipped, 1)
	assert.Equal(t, "220:103", skipped[0].CourseID)
	assert.Equal(t, models.SkipIneligible, skipped[0].Reason)
}
