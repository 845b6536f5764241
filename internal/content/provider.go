// Package content supplies the typed content collections behind the site:
// articles, resources, courses, service tiers, posts, homepage copy and
// terms. Two interchangeable providers exist (static seed data and a
// remote headless CMS); the rest of the system only sees the Provider
// contract and the loaded Catalog.
package content

import (
	"context"

	"github.com/web3hub/hub-engine/internal/models"
)

// Provider is the abstract fetch interface honored by both the static and
// the CMS-backed implementations. Implementations are swappable adapters,
// never mixed at runtime.
type Provider interface {
	FetchLearnContent(ctx context.Context) ([]models.Content, error)
	FetchResourcesContent(ctx context.Context) ([]models.Resource, error)
	FetchCourses(ctx context.Context) ([]models.Course, error)
	FetchServiceTiers(ctx context.Context) ([]models.ServiceTier, error)
	FetchLinkedInPosts(ctx context.Context) ([]models.LinkedInPost, error)
	FetchHomepageData(ctx context.Context) (*models.HomepageData, error)
	FetchTermsOfService(ctx context.Context) (*models.TermsOfService, error)
}
