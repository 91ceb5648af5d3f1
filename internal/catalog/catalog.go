// Package catalog holds MakerHub's read-only reference data: courses,
// products, rank tiers, badges, blog posts and the seed content of a new
// session.
package catalog

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MrSnakeDoc/makerhub/internal/domain"
)

// Catalog is an immutable set of reference lists. Callers must not mutate
// the slices they read from it.
type Catalog struct {
	Courses     []domain.Course   `json:"courses"`
	Products    []domain.Product  `json:"products"`
	Ranks       []domain.RankTier `json:"ranks"`
	Badges      []domain.BadgeDef `json:"badges"`
	Blogs       []domain.BlogPost `json:"blogs"`
	SamplePosts []domain.Thread   `json:"-"`
	SampleIdeas []domain.Idea     `json:"-"`
	Quiz        domain.Quiz       `json:"quiz"`
}

// Course looks up a course by id.
func (c *Catalog) Course(id string) (domain.Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return domain.Course{}, false
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (domain.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Badge looks up a badge definition by key.
func (c *Catalog) Badge(key string) (domain.BadgeDef, bool) {
	for _, b := range c.Badges {
		if b.Key == key {
			return b, true
		}
	}
	return domain.BadgeDef{}, false
}

// NewSession returns the default snapshot seeded from this catalog.
func (c *Catalog) NewSession() domain.Snapshot {
	return domain.NewSnapshot(c.SamplePosts, c.SampleIdeas)
}

// Validate checks the invariants the session engine relies on.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Ranks) == 0 {
		errs = append(errs, errors.New("at least one rank tier is required"))
	}

	seen := map[string]bool{}
	for _, r := range c.Ranks {
		if r.Threshold < 0 {
			errs = append(errs, fmt.Errorf("rank %q: negative threshold %d", r.Key, r.Threshold))
		}
		errs = appendDup(errs, seen, "rank", r.Key)
	}

	seen = map[string]bool{}
	for _, course := range c.Courses {
		if course.Points < 0 {
			errs = append(errs, fmt.Errorf("course %q: negative points %d", course.ID, course.Points))
		}
		errs = appendDup(errs, seen, "course", course.ID)
	}

	seen = map[string]bool{}
	for _, p := range c.Products {
		if p.Price < 0 {
			errs = append(errs, fmt.Errorf("product %q: negative price %d", p.ID, p.Price))
		}
		errs = appendDup(errs, seen, "product", p.ID)
	}

	seen = map[string]bool{}
	for _, b := range c.Badges {
		errs = appendDup(errs, seen, "badge", b.Key)
	}

	seen = map[string]bool{}
	for _, t := range c.SamplePosts {
		errs = appendDup(errs, seen, "sample post", t.ID)
	}

	seen = map[string]bool{}
	for _, i := range c.SampleIdeas {
		errs = appendDup(errs, seen, "sample idea", i.ID)
	}

	return errors.Join(errs...)
}

func appendDup(errs []error, seen map[string]bool, kind, id string) []error {
	if id == "" {
		return append(errs, fmt.Errorf("%s with empty id", kind))
	}
	if seen[id] {
		return append(errs, fmt.Errorf("duplicate %s id %q", kind, id))
	}
	seen[id] = true
	return errs
}

// Provider hands out the catalog currently in effect.
type Provider interface {
	Current() *Catalog
}

// Holder is a Provider whose catalog can be swapped at runtime.
type Holder struct {
	current    atomic.Pointer[Catalog]
	lastReload atomic.Int64
}

// NewHolder returns a Holder serving c.
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.Update(c)
	return h
}

// Current returns the catalog in effect.
func (h *Holder) Current() *Catalog {
	return h.current.Load()
}

// Update replaces the catalog in effect.
func (h *Holder) Update(c *Catalog) {
	h.current.Store(c)
	h.lastReload.Store(time.Now().UnixNano())
}

// LastReload returns when the catalog was last replaced.
func (h *Holder) LastReload() time.Time {
	return time.Unix(0, h.lastReload.Load())
}
