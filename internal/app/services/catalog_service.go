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

// CatalogService defines the interface for catalog read operations and
// refresh
type CatalogService interface {
	GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, subject, coreTag string) (*dto.CourseListResponse, error)
	EligibleCourses(ctx context.Context, req *dto.EligibleCoursesRequest) (*dto.CourseListResponse, error)
	ListCoreTags(ctx context.Context) ([]dto.CoreTagResponse, error)
	Refresh(ctx context.Context) (int, error)
	Health() dto.HealthResponse
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	store    *catalog.Store
	sessions repositories.SessionStore
	path     string
}

// NewCatalogService creates a new catalog service instance. path is the
// raw catalog file Refresh reloads from.
func NewCatalogService(store *catalog.Store, sessions repositories.SessionStore, path string) CatalogService {
	return &catalogServiceImpl{
		store:    store,
		sessions: sessions,
		path:     path,
	}
}

// GetCourse returns one course with its full section breakdown.
func (s *catalogServiceImpl) GetCourse(_ context.Context, id string) (*dto.CourseResponse, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	course, ok := snapshot.Course(id)
	if !ok {
		return nil, apperrors.NewCourseNotFoundError(fmt.Sprintf("course %s not found", id))
	}
	resp := courseToDTO(course, true)
	return &resp, nil
}

// ListCourses returns the catalog filtered by subject and/or core tag,
// without section detail.
func (s *catalogServiceImpl) ListCourses(_ context.Context, subject, coreTag string) (*dto.CourseListResponse, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	courses := filterCourses(snapshot, subject, coreTag)
	resp := &dto.CourseListResponse{
		Courses: make([]dto.CourseResponse, 0, len(courses)),
		Total:   len(courses),
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, courseToDTO(course, false))
	}
	return resp, nil
}

// EligibleCourses returns the filtered catalog restricted to courses the
// described student could actually register for.
func (s *catalogServiceImpl) EligibleCourses(ctx context.Context, req *dto.EligibleCoursesRequest) (*dto.CourseListResponse, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	standing, err := parseStanding(req.Standing)
	if err != nil {
		return nil, err
	}
	completed, err := mergeCompleted(ctx, s.sessions, req.Completed, req.SessionID)
	if err != nil {
		return nil, err
	}
	sc := models.StudentContext{Standing: standing, Completed: completed}

	resp := &dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0)}
	for _, course := range filterCourses(snapshot, req.Subject, req.CoreTag) {
		if ok, _ := scheduling.Eligible(course, sc); !ok {
			continue
		}
		resp.Courses = append(resp.Courses, courseToDTO(course, false))
		if req.Limit > 0 && len(resp.Courses) >= req.Limit {
			break
		}
	}
	resp.Total = len(resp.Courses)
	return resp, nil
}

// ListCoreTags lists the core requirement tags present in the current
// catalog generation with their display names and course counts.
func (s *catalogServiceImpl) ListCoreTags(_ context.Context) ([]dto.CoreTagResponse, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}

	tags := snapshot.CoreTags()
	resp := make([]dto.CoreTagResponse, 0, len(tags))
	for _, tag := range tags {
		name := models.CoreTagNames[tag]
		if name == "" {
			name = string(tag)
		}
		resp = append(resp, dto.CoreTagResponse{
			Code:    string(tag),
			Name:    name,
			Courses: len(snapshot.ByCoreTag(tag)),
		})
	}
	return resp, nil
}

// Refresh rebuilds the catalog from the configured file and swaps it in.
// In-flight requests keep the generation they started with.
func (s *catalogServiceImpl) Refresh(_ context.Context) (int, error) {
	built, err := catalog.LoadFile(s.path)
	if err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("catalog refresh failed")
		return 0, err
	}

	s.store.Swap(built)
	log.Info().Int("courses", built.Size()).Str("path", s.path).Msg("catalog refreshed")
	return built.Size(), nil
}

// Health reports catalog readiness.
func (s *catalogServiceImpl) Health() dto.HealthResponse {
	resp := dto.HealthResponse{Status: "ok"}
	if snapshot, err := s.store.Snapshot(); err == nil {
		resp.CatalogLoaded = true
		resp.CatalogSize = snapshot.Size()
	}
	return resp
}

func filterCourses(snapshot *catalog.Catalog, subject, coreTag string) []*models.Course {
	switch {
	case subject != "" && coreTag != "":
		var out []*models.Course
		for _, course := range snapshot.BySubject(subject) {
			if course.HasCoreTag(models.CoreTag(normalizeTag(coreTag))) {
				out = append(out, course)
			}
		}
		return out
	case subject != "":
		return snapshot.BySubject(subject)
	case coreTag != "":
		return snapshot.ByCoreTag(models.CoreTag(coreTag))
	default:
		return snapshot.Courses()
	}
}
