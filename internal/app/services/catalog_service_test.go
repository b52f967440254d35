package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogulcan/coursepilot/internal/app/catalog"
	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/repositories"
	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()
	return NewCatalogService(fixtureStore(t), repositories.NewMemorySessionStore(), "")
}

func TestGetCourse(t *testing.T) {
	svc := newCatalogService(t)

	resp, err := svc.GetCourse(context.Background(), "198:111")
	require.NoError(t, err)

	assert.Equal(t, "Introduction to Computer Science", resp.Title)
	assert.Equal(t, []string{"QR"}, resp.CoreTags)
	assert.True(t, resp.SafeForFirstYear)
	require.Len(t, resp.Sections, 1)
	require.Len(t, resp.Sections[0].Meetings, 2)

	meeting := resp.Sections[0].Meetings[0]
	assert.Equal(t, []string{"Monday"}, meeting.Days)
	assert.Equal(t, "2:00 PM", meeting.StartTime)
	assert.Equal(t, "14:00", meeting.StartTime24)
}

func TestGetCourse_NotFound(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetCourse(context.Background(), "999:999")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetCourse_CatalogNotLoaded(t *testing.T) {
	svc := NewCatalogService(catalog.NewStore(), repositories.NewMemorySessionStore(), "")

	_, err := svc.GetCourse(context.Background(), "198:111")
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)
}

func TestListCourses_Filters(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	all, err := svc.ListCourses(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	// Listings omit section detail.
	assert.Empty(t, all.Courses[0].Sections)

	bySubject, err := svc.ListCourses(ctx, "198", "")
	require.NoError(t, err)
	assert.Equal(t, 2, bySubject.Total)

	byTag, err := svc.ListCourses(ctx, "", "WCR")
	require.NoError(t, err)
	require.Equal(t, 1, byTag.Total)
	assert.Equal(t, "355:101", byTag.Courses[0].ID)

	both, err := svc.ListCourses(ctx, "198", "QR")
	require.NoError(t, err)
	require.Equal(t, 1, both.Total)
	assert.Equal(t, "198:111", both.Courses[0].ID)
}

func TestEligibleCourses_FirstYearGating(t *testing.T) {
	svc := newCatalogService(t)

	resp, err := svc.EligibleCourses(context.Background(), &dto.EligibleCoursesRequest{Subject: "198"})
	require.NoError(t, err)

	// Data Structures requires a prerequisite, so a first-year student
	// with no history only sees the intro course.
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "198:111", resp.Courses[0].ID)
}

func TestEligibleCourses_CompletedUnlocks(t *testing.T) {
	svc := newCatalogService(t)

	resp, err := svc.EligibleCourses(context.Background(), &dto.EligibleCoursesRequest{
		Subject:   "198",
		Standing:  "SOPHOMORE_OR_ABOVE",
		Completed: []string{"198:111"},
	})
	require.NoError(t, err)

	// The intro course drops out as already taken and its successor
	// becomes available.
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "198:112", resp.Courses[0].ID)
}

// Completing the prerequisite never overrides the standing gate. A course
// with prerequisite text is closed to first-year students outright.
func TestEligibleCourses_FirstYearGateSurvivesCompletedPrereq(t *testing.T) {
	svc := newCatalogService(t)

	resp, err := svc.EligibleCourses(context.Background(), &dto.EligibleCoursesRequest{
		Subject:   "198",
		Standing:  "FIRST_YEAR",
		Completed: []string{"198:111"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Total)
}

func TestEligibleCourses_Limit(t *testing.T) {
	svc := newCatalogService(t)

	resp, err := svc.EligibleCourses(context.Background(), &dto.EligibleCoursesRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestListCoreTags(t *testing.T) {
	svc := newCatalogService(t)

	tags, err := svc.ListCoreTags(context.Background())
	require.NoError(t, err)

	require.Len(t, tags, 2)
	assert.Equal(t, "QR", tags[0].Code)
	assert.Equal(t, "Quantitative & Formal Reasoning - Reasoning", tags[0].Name)
	assert.Equal(t, 1, tags[0].Courses)
	assert.Equal(t, "WCR", tags[1].Code)
}

func TestRefresh_SwapsCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	raw := catalog.RawCatalog{Courses: map[string]catalog.RawCourse{
		"198:111": {Title: "Introduction to Computer Science", Credits: 4},
	}}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	store := catalog.NewStore()
	svc := NewCatalogService(store, repositories.NewMemorySessionStore(), path)

	size, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, size)
	assert.True(t, store.Loaded())
}

func TestRefresh_MissingFile(t *testing.T) {
	store := catalog.NewStore()
	svc := NewCatalogService(store, repositories.NewMemorySessionStore(), "/nonexistent/catalog.json")

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrInvalidCatalog)
	assert.False(t, store.Loaded())
}

func TestHealth(t *testing.T) {
	svc := newCatalogService(t)
	health := svc.Health()

	assert.Equal(t, "ok", health.Status)
	assert.True(t, health.CatalogLoaded)
	assert.Equal(t, 4, health.CatalogSize)

	empty := NewCatalogService(catalog.NewStore(), repositories.NewMemorySessionStore(), "")
	health = empty.Health()
	assert.Equal(t, "ok", health.Status)
	assert.False(t, health.CatalogLoaded)
}
