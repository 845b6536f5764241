package content

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/web3hub/hub-engine/internal/models"
)

// LoadState is the catalog super-state that preempts all views until the
// initial content batch has resolved.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateError   LoadState = "error"
)

// Catalog holds the content collections loaded once at startup. The load
// is all-or-nothing: a single failed fetch fails the whole batch and the
// error state is sticky until the process is restarted.
type Catalog struct {
	mu      sync.RWMutex
	state   LoadState
	loadErr error

	learn     []models.Content
	resources []models.Resource
	courses   []models.Course
	tiers     []models.ServiceTier
	posts     []models.LinkedInPost
	homepage  *models.HomepageData
	terms     *models.TermsOfService
}

// NewCatalog returns an empty catalog in the loading state.
func NewCatalog() *Catalog {
	return &Catalog{state: StateLoading}
}

// Load fetches every collection concurrently from the provider. All
// fetches must succeed; on any failure the catalog enters the sticky
// error state and keeps no partial content.
func (c *Catalog) Load(ctx context.Context, p Provider) error {
	var (
		learn     []models.Content
		resources []models.Resource
		courses   []models.Course
		tiers     []models.ServiceTier
		posts     []models.LinkedInPost
		homepage  *models.HomepageData
		terms     *models.TermsOfService
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { learn, err = p.FetchLearnContent(ctx); return })
	g.Go(func() (err error) { resources, err = p.FetchResourcesContent(ctx); return })
	g.Go(func() (err error) { courses, err = p.FetchCourses(ctx); return })
	g.Go(func() (err error) { tiers, err = p.FetchServiceTiers(ctx); return })
	g.Go(func() (err error) { posts, err = p.FetchLinkedInPosts(ctx); return })
	g.Go(func() (err error) { homepage, err = p.FetchHomepageData(ctx); return })
	g.Go(func() (err error) { terms, err = p.FetchTermsOfService(ctx); return })

	if err := g.Wait(); err != nil {
		c.mu.Lock()
		c.state = StateError
		c.loadErr = err
		c.mu.Unlock()
		return fmt.Errorf("catalog load failed: %w", err)
	}

	c.mu.Lock()
	c.learn = learn
	c.resources = resources
	c.courses = courses
	c.tiers = tiers
	c.posts = posts
	c.homepage = homepage
	c.terms = terms
	c.state = StateReady
	c.mu.Unlock()

	slog.Info("content catalog loaded",
		"articles", len(learn),
		"resources", len(resources),
		"courses", len(courses),
		"tiers", len(tiers),
		"posts", len(posts),
	)
	return nil
}

// State returns the current load super-state.
func (c *Catalog) State() LoadState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Err returns the sticky load error, if any.
func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Ready reports whether content may be served.
func (c *Catalog) Ready() bool {
	return c.State() == StateReady
}

// LearnContent returns the loaded articles and demo descriptors.
func (c *Catalog) LearnContent() []models.Content {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.learn
}

// ResourcesContent returns the loaded gated resources.
func (c *Catalog) ResourcesContent() []models.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resources
}

// Courses returns the loaded learning tracks.
func (c *Catalog) Courses() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.courses
}

// Course looks up a single course by id.
func (c *Catalog) Course(id string) (*models.Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.courses {
		if c.courses[i].ID == id {
			course := c.courses[i]
			return &course, true
		}
	}
	return nil, false
}

// ServiceTiers returns the loaded membership tiers.
func (c *Catalog) ServiceTiers() []models.ServiceTier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tiers
}

// LinkedInPosts returns the loaded feed posts.
func (c *Catalog) LinkedInPosts() []models.LinkedInPost {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.posts
}

// HomepageData returns the homepage single-type record.
func (c *Catalog) HomepageData() *models.HomepageData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.homepage
}

// TermsOfService returns the terms single-type record.
func (c *Catalog) TermsOfService() *models.TermsOfService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.terms
}
