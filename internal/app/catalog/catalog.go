package catalog

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/ogulcan/coursepilot/internal/app/models"
	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

// Catalog is one immutable generation of the course catalog. All lookup
// indexes are built once at construction; readers share the value freely
// without locking.
type Catalog struct {
	courses   map[string]*models.Course
	order     []string
	bySubject map[string][]*models.Course
	byCore    map[models.CoreTag][]*models.Course
	byTitle   map[string]string
}

func newCatalog(courses map[string]*models.Course, order []string) *Catalog {
	c := &Catalog{
		courses:   courses,
		order:     order,
		bySubject: make(map[string][]*models.Course),
		byCore:    make(map[models.CoreTag][]*models.Course),
		byTitle:   make(map[string]string, len(courses)),
	}
	for _, id := range order {
		course := courses[id]
		c.bySubject[course.Subject] = append(c.bySubject[course.Subject], course)
		for _, tag := range course.CoreTags {
			c.byCore[tag] = append(c.byCore[tag], course)
		}
		if course.Title != "" {
			c.byTitle[strings.ToLower(course.Title)] = id
		}
	}
	return c
}

// Course looks up a course by id, tolerating a missing zero-pad on the
// subject part.
func (c *Catalog) Course(id string) (*models.Course, bool) {
	if course, ok := c.courses[id]; ok {
		return course, true
	}
	course, ok := c.courses[NormalizeCourseID(id)]
	return course, ok
}

// Courses returns every course in stable id order.
func (c *Catalog) Courses() []*models.Course {
	out := make([]*models.Course, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.courses[id])
	}
	return out
}

// BySubject returns all courses under a subject code, in stable id order.
func (c *Catalog) BySubject(subject string) []*models.Course {
	padded := subject
	for len(padded) < 3 {
		padded = "0" + padded
	}
	return c.bySubject[padded]
}

// ByCoreTag returns all courses carrying a core requirement tag.
func (c *Catalog) ByCoreTag(tag models.CoreTag) []*models.Course {
	return c.byCore[models.CoreTag(strings.ToUpper(string(tag)))]
}

// CoreTags lists every core requirement tag present in this generation,
// sorted.
func (c *Catalog) CoreTags() []models.CoreTag {
	tags := make([]models.CoreTag, 0, len(c.byCore))
	for tag := range c.byCore {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// ResolveTitle maps an exact course title, case-insensitively, to its id.
func (c *Catalog) ResolveTitle(title string) (string, bool) {
	id, ok := c.byTitle[strings.ToLower(strings.TrimSpace(title))]
	return id, ok
}

// Size returns the number of courses in this generation.
func (c *Catalog) Size() int {
	return len(c.order)
}

// Store hands out the current catalog generation and accepts replacement
// generations. Requests that already hold a snapshot keep it for their
// whole lifetime; a swap only affects requests that start afterwards.
type Store struct {
	current atomic.Pointer[Catalog]
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current generation, or ErrCatalogNotLoaded when no
// catalog has been installed yet.
func (s *Store) Snapshot() (*Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, apperrors.ErrCatalogNotLoaded
	}
	return c, nil
}

// Swap installs a new generation for subsequent requests.
func (s *Store) Swap(c *Catalog) {
	s.current.Store(c)
}

// Loaded reports whether a catalog generation has been installed.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// LoadFile reads a raw catalog file from disk and builds a generation
// from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCatalog, "failed to read catalog file: "+err.Error())
	}

	var raw RawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCatalog, "failed to decode catalog file: "+err.Error())
	}
	return Build(raw)
}
