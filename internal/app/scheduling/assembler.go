package scheduling

import (
	"sort"

	"github.com/ogulcan/coursepilot/internal/app/models"
)

// DefaultMaxComparisons bounds the total number of meeting comparisons one
// assembly may perform. The pool is small and finite, so the cap is a
// fail-closed guard: when it trips, the best partial schedule built so far
// is returned.
const DefaultMaxComparisons = 250000

// Options tune a single assembly run.
type Options struct {
	// AutoFill enables core-requirement backfill. When false, an empty
	// candidate list yields an empty schedule, never a padded one.
	AutoFill bool
	// CorePool is the eligibility-filtered catalog slice the backfill may
	// draw from, in stable catalog order.
	CorePool []*models.Course
	// MaxCredits bounds the running credit total during backfill. Zero
	// means no bound. Explicitly requested courses are never rejected on
	// credits.
	MaxCredits float64
	// MaxComparisons overrides DefaultMaxComparisons when positive.
	MaxComparisons int
}

// Assemble selects at most one section per candidate course, in caller
// order, such that no two committed meetings conflict. Courses that cannot
// be placed are recorded as skipped with a reason tag and never abort the
// run. When opts.AutoFill is set and the student's desired core tags are
// not all covered by placed courses, eligible courses carrying the missing
// tags are attempted in the same way until every tag is covered or the
// pool is exhausted.
//
// The returned candidate unconditionally satisfies the no-conflict
// invariant. The skipped list is exhaustive: every candidate course absent
// from the final mapping appears in it.
func Assemble(candidates []*models.Course, sc models.StudentContext, opts Options) (*models.ScheduleCandidate, []models.SkippedCourse) {
	schedule := models.NewScheduleCandidate()
	var skipped []models.SkippedCourse

	budget := opts.MaxComparisons
	if budget <= 0 {
		budget = DefaultMaxComparisons
	}
	comparisons := 0
	credits := 0.0
	placed := make(map[string]*models.Course)

	for i, course := range candidates {
		if schedule.Contains(course.ID) {
			continue
		}
		if comparisons >= budget {
			// Fail closed: return the best partial schedule, but keep the
			// skipped list exhaustive.
			skipped = append(skipped, exhaustedSkips(candidates[i:], schedule)...)
			return schedule, skipped
		}
		if skip := placeCourse(course, sc, schedule, budget, &comparisons); skip != nil {
			skipped = append(skipped, *skip)
		} else {
			placed[course.ID] = course
			credits += course.Credits
		}
	}

	if opts.AutoFill {
		skipped = append(skipped, backfill(sc, schedule, placed, opts, credits, budget, &comparisons)...)
	}

	return schedule, skipped
}

// placeCourse tries the course's sections in ranked order and commits the
// first one that fits. A nil return means the course was placed.
func placeCourse(course *models.Course, sc models.StudentContext, schedule *models.ScheduleCandidate, budget int, comparisons *int) *models.SkippedCourse {
	ranked := rankSections(course, &sc.Preferences)
	if len(ranked) == 0 {
		return &models.SkippedCourse{
			CourseID: course.ID,
			Reason:   models.SkipNoOpenSection,
			Detail:   "no section passes the preference constraints",
		}
	}

	for _, section := range ranked {
		if *comparisons >= budget {
			return &models.SkippedCourse{
				CourseID: course.ID,
				Reason:   models.SkipConflict,
				Detail:   "comparison budget exhausted",
			}
		}
		if fits(section, schedule.Meetings, comparisons) {
			schedule.Place(course.ID, section)
			return nil
		}
	}

	return &models.SkippedCourse{
		CourseID: course.ID,
		Reason:   models.SkipConflict,
		Detail:   "every section overlaps a committed meeting",
	}
}

// rankSections orders a course's placeable sections: open seats before
// closed (closed is still offered if nothing else fits), then fewer soft
// preference violations, then stable catalog order. Sections with a hard
// preference violation or an unparseable meeting are not placeable and are
// dropped here.
func rankSections(course *models.Course, prefs *models.PreferenceSet) []*models.Section {
	type scored struct {
		section *models.Section
		closed  int
		soft    int
	}

	var pool []scored
	for i := range course.Sections {
		section := &course.Sections[i]
		if !section.Schedulable() {
			continue
		}
		soft, hard := preferenceViolations(section, prefs)
		if hard {
			continue
		}
		closed := 0
		if !section.Open {
			closed = 1
		}
		pool = append(pool, scored{section: section, closed: closed, soft: soft})
	}

	sort.SliceStable(pool, func(a, b int) bool {
		if pool[a].closed != pool[b].closed {
			return pool[a].closed < pool[b].closed
		}
		return pool[a].soft < pool[b].soft
	})

	out := make([]*models.Section, len(pool))
	for i, s := range pool {
		out[i] = s.section
	}
	return out
}

// preferenceViolations inspects a section against the preference set.
// Excluded weekdays and out-of-bounds times are hard violations that
// disqualify the section outright. Campus preference is advisory and only
// counts toward the soft score, unless StrictCampus makes it hard.
func preferenceViolations(section *models.Section, prefs *models.PreferenceSet) (soft int, hard bool) {
	for i := range section.Meetings {
		m := &section.Meetings[i]
		if !m.Timed() {
			continue
		}
		if m.Days.Intersects(prefs.ExcludedDays) {
			return 0, true
		}
		if prefs.EarliestStart != nil && m.StartMinutes < *prefs.EarliestStart {
			return 0, true
		}
		if prefs.LatestEnd != nil && m.EndMinutes > *prefs.LatestEnd {
			return 0, true
		}
		if !prefs.PrefersCampus(m.Campus) {
			if prefs.StrictCampus {
				return 0, true
			}
			soft++
		}
	}
	return soft, false
}

// backfill fills outstanding core requirements from the eligible pool,
// trying courses with the smallest tag-count-to-unfulfilled-tags ratio
// first, and stops once every desired tag is covered or the pool runs out.
func backfill(sc models.StudentContext, schedule *models.ScheduleCandidate, placed map[string]*models.Course, opts Options, credits float64, budget int, comparisons *int) []models.SkippedCourse {
	var skipped []models.SkippedCourse

	missing := missingTags(sc.DesiredCoreTags, placed)
	if len(missing) == 0 {
		return nil
	}

	for len(missing) > 0 {
		pool := rankFillers(opts.CorePool, missing, schedule)
		if len(pool) == 0 {
			return skipped
		}

		advanced := false
		for _, course := range pool {
			if opts.MaxCredits > 0 && credits+course.Credits > opts.MaxCredits {
				continue
			}
			if *comparisons >= budget {
				return skipped
			}
			if skip := placeCourse(course, sc, schedule, budget, comparisons); skip != nil {
				skipped = append(skipped, *skip)
				continue
			}
			placed[course.ID] = course
			credits += course.Credits
			missing = missingTags(sc.DesiredCoreTags, placed)
			advanced = true
			break
		}
		if !advanced {
			return skipped
		}
	}

	return skipped
}

// missingTags returns the desired tags not yet covered by a placed course.
func missingTags(desired []models.CoreTag, placed map[string]*models.Course) []models.CoreTag {
	covered := make(map[models.CoreTag]bool)
	for _, c := range placed {
		for _, t := range c.CoreTags {
			covered[t] = true
		}
	}
	var missing []models.CoreTag
	for _, t := range desired {
		if !covered[t] {
			missing = append(missing, t)
		}
	}
	return missing
}

// rankFillers orders candidate fillers by the ratio of their total tag
// count to the number of unfulfilled tags they would cover, smallest
// first, with stable catalog order as the tie-break. Courses covering no
// missing tag and courses already placed are excluded.
func rankFillers(pool []*models.Course, missing []models.CoreTag, schedule *models.ScheduleCandidate) []*models.Course {
	missingSet := make(map[models.CoreTag]bool, len(missing))
	for _, t := range missing {
		missingSet[t] = true
	}

	type scored struct {
		course *models.Course
		ratio  float64
	}
	var ranked []scored
	for _, c := range pool {
		if schedule.Contains(c.ID) {
			continue
		}
		covers := 0
		for _, t := range c.CoreTags {
			if missingSet[t] {
				covers++
			}
		}
		if covers == 0 {
			continue
		}
		ranked = append(ranked, scored{
			course: c,
			ratio:  float64(len(c.CoreTags)) / float64(covers),
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].ratio < ranked[b].ratio
	})

	out := make([]*models.Course, len(ranked))
	for i, s := range ranked {
		out[i] = s.course
	}
	return out
}

// exhaustedSkips tags every not-yet-processed candidate when the
// comparison budget trips mid-run.
func exhaustedSkips(remaining []*models.Course, schedule *models.ScheduleCandidate) []models.SkippedCourse {
	var skipped []models.SkippedCourse
	for _, c := range remaining {
		if schedule.Contains(c.ID) {
			continue
		}
		skipped = append(skipped, models.SkippedCourse{
			CourseID: c.ID,
			Reason:   models.SkipConflict,
			Detail:   "comparison budget exhausted",
		})
	}
	return skipped
}
