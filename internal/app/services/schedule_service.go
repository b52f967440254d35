package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ogulcan/coursepilot/internal/app/catalog"
	"github.com/ogulcan/coursepilot/internal/app/models"
	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/repositories"
	"github.com/ogulcan/coursepilot/internal/app/scheduling"
	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

// ScheduleService defines the interface for schedule assembly operations
type ScheduleService interface {
	AssembleSchedule(ctx context.Context, req *dto.AssembleScheduleRequest) (*dto.ScheduleResponse, error)
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	catalog        *catalog.Store
	sessions       repositories.SessionStore
	maxComparisons int
	maxCredits     float64
}

// NewScheduleService creates a new schedule service instance. maxCredits
// is the cap applied when the request does not set one; maxComparisons
// bounds assembly work per request, zero meaning the built-in default.
func NewScheduleService(store *catalog.Store, sessions repositories.SessionStore, maxComparisons int, maxCredits float64) ScheduleService {
	return &scheduleServiceImpl{
		catalog:        store,
		sessions:       sessions,
		maxComparisons: maxComparisons,
		maxCredits:     maxCredits,
	}
}

// AssembleSchedule builds a conflict-free schedule from the requested
// courses against the current catalog generation.
func (s *scheduleServiceImpl) AssembleSchedule(ctx context.Context, req *dto.AssembleScheduleRequest) (*dto.ScheduleResponse, error) {
	if len(req.Courses) == 0 && req.Subject == "" && (!req.AutoFill || len(req.CoreTags) == 0) {
		return nil, fmt.Errorf("%w: request names no courses, subject, or core tags to fill", apperrors.ErrValidationFailed)
	}

	snapshot, err := s.catalog.Snapshot()
	if err != nil {
		return nil, err
	}

	sc, err := s.buildStudentContext(ctx, req)
	if err != nil {
		return nil, err
	}

	pool, requested, notFound := s.resolveCandidates(snapshot, req)
	eligible, skipped := scheduling.FilterEligible(pool, sc)
	skipped = append(notFound, skipped...)

	opts := scheduling.Options{
		AutoFill:       req.AutoFill,
		MaxCredits:     req.MaxCredits,
		MaxComparisons: s.maxComparisons,
	}
	if opts.MaxCredits <= 0 {
		opts.MaxCredits = s.maxCredits
	}
	if req.AutoFill && len(sc.DesiredCoreTags) > 0 {
		opts.CorePool = s.buildCorePool(snapshot, sc)
	}

	schedule, assemblySkips := scheduling.Assemble(eligible, sc, opts)
	skipped = append(skipped, assemblySkips...)

	resp := s.buildResponse(snapshot, sc, schedule, skipped, requested)
	log.Debug().
		Int("placed", len(resp.Placed)).
		Int("skipped", len(resp.Skipped)).
		Str("status", resp.Status).
		Msg("schedule assembled")
	return resp, nil
}

func (s *scheduleServiceImpl) buildStudentContext(ctx context.Context, req *dto.AssembleScheduleRequest) (models.StudentContext, error) {
	var sc models.StudentContext

	standing, err := parseStanding(req.Standing)
	if err != nil {
		return sc, err
	}
	sc.Standing = standing

	sc.Completed, err = mergeCompleted(ctx, s.sessions, req.Completed, req.SessionID)
	if err != nil {
		return sc, err
	}

	sc.Preferences, err = buildPreferences(req.Preferences)
	if err != nil {
		return sc, err
	}

	sc.DesiredCoreTags = normalizeCoreTags(req.CoreTags)
	return sc, nil
}

// resolveCandidates maps the requested course list plus the optional
// subject filter onto catalog courses. Entries that match nothing are
// reported as skips rather than failing the request.
func (s *scheduleServiceImpl) resolveCandidates(snapshot *catalog.Catalog, req *dto.AssembleScheduleRequest) (pool []*models.Course, requested map[string]bool, notFound []models.SkippedCourse) {
	requested = make(map[string]bool, len(req.Courses))
	seen := make(map[string]bool)

	add := func(course *models.Course) {
		if !seen[course.ID] {
			seen[course.ID] = true
			pool = append(pool, course)
		}
	}

	for _, raw := range req.Courses {
		course, ok := snapshot.Course(raw)
		if !ok {
			if id, found := snapshot.ResolveTitle(raw); found {
				course, ok = snapshot.Course(id)
			}
		}
		if !ok {
			notFound = append(notFound, models.SkippedCourse{
				CourseID: raw,
				Reason:   models.SkipIneligible,
				Detail:   "course not found in catalog",
			})
			continue
		}
		requested[course.ID] = true
		add(course)
	}

	if req.Subject != "" {
		for _, course := range snapshot.BySubject(req.Subject) {
			requested[course.ID] = true
			add(course)
		}
	}
	return pool, requested, notFound
}

// buildCorePool collects eligible filler candidates for the desired core
// tags. Fillers that fail eligibility are silently dropped; they were
// never asked for by name.
func (s *scheduleServiceImpl) buildCorePool(snapshot *catalog.Catalog, sc models.StudentContext) []*models.Course {
	var pool []*models.Course
	seen := make(map[string]bool)
	for _, tag := range sc.DesiredCoreTags {
		for _, course := range snapshot.ByCoreTag(tag) {
			if seen[course.ID] {
				continue
			}
			seen[course.ID] = true
			if ok, _ := scheduling.Eligible(course, sc); ok {
				pool = append(pool, course)
			}
		}
	}
	return pool
}

func (s *scheduleServiceImpl) buildResponse(snapshot *catalog.Catalog, sc models.StudentContext, schedule *models.ScheduleCandidate, skipped []models.SkippedCourse, requested map[string]bool) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		Placed:  make([]dto.PlacedCourseResponse, 0, schedule.Len()),
		Skipped: make([]dto.SkippedCourseResponse, 0, len(skipped)),
	}

	covered := make(map[models.CoreTag]bool)
	for _, id := range schedule.Order {
		course, ok := snapshot.Course(id)
		if !ok {
			continue
		}
		source := "core_fill"
		if requested[id] {
			source = "requested"
		}
		resp.Placed = append(resp.Placed, dto.PlacedCourseResponse{
			CourseID: course.ID,
			Title:    course.Title,
			Credits:  course.Credits,
			CoreTags: coreTagNames(course.CoreTags),
			Source:   source,
			Section:  sectionToDTO(schedule.Sections[id]),
		})
		resp.TotalCredits += course.Credits
		for _, tag := range course.CoreTags {
			covered[tag] = true
		}
	}

	for _, skip := range skipped {
		resp.Skipped = append(resp.Skipped, dto.SkippedCourseResponse{
			CourseID: skip.CourseID,
			Reason:   string(skip.Reason),
			Detail:   skip.Detail,
		})
	}

	for _, tag := range sc.DesiredCoreTags {
		if covered[tag] {
			resp.SatisfiedCoreTags = append(resp.SatisfiedCoreTags, string(tag))
		} else {
			resp.MissingCoreTags = append(resp.MissingCoreTags, string(tag))
		}
	}

	switch {
	case len(resp.Placed) == 0:
		resp.Status = "empty"
	case len(resp.Skipped) == 0 && len(resp.MissingCoreTags) == 0:
		resp.Status = "full"
	default:
		resp.Status = "partial"
	}
	return resp
}

func normalizeCoreTags(raw []string) []models.CoreTag {
	var tags []models.CoreTag
	seen := make(map[models.CoreTag]bool, len(raw))
	for _, r := range raw {
		tag := models.CoreTag(normalizeTag(r))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
