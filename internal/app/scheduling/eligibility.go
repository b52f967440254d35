package scheduling

import "github.com/ogulcan/coursepilot/internal/app/models"

// Eligible reports whether the student may legally take the course, and if
// not, why. The filter runs once per request to narrow the catalog before
// assembly; it never re-runs mid-search.
func Eligible(course *models.Course, sc models.StudentContext) (bool, string) {
	if sc.HasCompleted(course.ID) {
		return false, "already completed"
	}

	// First-year students are held to the safe-for-first-year flag.
	// Sophomore-or-above standing lifts this restriction entirely;
	// prerequisites still apply below.
	if sc.Standing == models.StandingFirstYear && !course.SafeForFirstYear {
		return false, "not offered to first-year students"
	}

	if !prereqSatisfied(course, sc) {
		return false, "prerequisites not met"
	}

	return true, ""
}

// prereqSatisfied applies the OR'd prerequisite policy: a course is clear
// when any single rule is fully satisfied. A rule is satisfied when every
// required course id is in the completed set, or when the rule carries the
// standing override and the student is above first-year standing. This is
// an explicit, named simplification of real prerequisite trees.
func prereqSatisfied(course *models.Course, sc models.StudentContext) bool {
	if len(course.Prereqs) == 0 {
		return true
	}
	for _, rule := range course.Prereqs {
		if rule.StandingOverride {
			if sc.Standing == models.StandingSophomoreOrAbove {
				return true
			}
			continue
		}
		if allCompleted(rule.Required, sc) {
			return true
		}
	}
	return false
}

func allCompleted(required []string, sc models.StudentContext) bool {
	if len(required) == 0 {
		return false
	}
	for _, id := range required {
		if !sc.HasCompleted(id) {
			return false
		}
	}
	return true
}

// FilterEligible narrows courses to those the student may take, keeping
// caller order. Excluded courses are reported with reason tags so the
// skipped list stays exhaustive.
func FilterEligible(courses []*models.Course, sc models.StudentContext) ([]*models.Course, []models.SkippedCourse) {
	var pool []*models.Course
	var skipped []models.SkippedCourse
	for _, c := range courses {
		if ok, detail := Eligible(c, sc); !ok {
			skipped = append(skipped, models.SkippedCourse{
				CourseID: c.ID,
				Reason:   models.SkipIneligible,
				Detail:   detail,
			})
			continue
		}
		pool = append(pool, c)
	}
	return pool, skipped
}
