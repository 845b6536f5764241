package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/web3hub/hub-engine/internal/models"
)

// StaticProvider serves the built-in seed collections, optionally
// overridden per collection by YAML files in a content directory. A
// missing file falls back to the seed; a malformed file fails the fetch
// so the catalog load surfaces it instead of serving partial content.
type StaticProvider struct {
	dir string
}

// NewStaticProvider creates a static provider. dir may be empty to serve
// seeds only.
func NewStaticProvider(dir string) *StaticProvider {
	if dir != "" {
		slog.Info("static content overrides enabled", "dir", dir)
	}
	return &StaticProvider{dir: dir}
}

// loadOverride decodes dir/<name>.yaml into out if the file exists.
// Returns false when there is no override.
func (p *StaticProvider) loadOverride(name string, out any) (bool, error) {
	if p.dir == "" {
		return false, nil
	}
	path := filepath.Join(p.dir, name+".yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	slog.Info("content override loaded", "collection", name, "file", path)
	return true, nil
}

func (p *StaticProvider) FetchLearnContent(ctx context.Context) ([]models.Content, error) {
	var override []models.Content
	if ok, err := p.loadOverride("learn", &override); err != nil {
		return nil, err
	} else if ok {
		return override, nil
	}
	return seedLearnContent(), nil
}

func (p *StaticProvider) FetchResourcesContent(ctx context.Context) ([]models.Resource, error) {
	var override []models.Resource
	if ok, err := p.loadOverride("resources", &override); err != nil {
		return nil, err
	} else if ok {
		return override, nil
	}
	return seedResources(), nil
}

func (p *StaticProvider) FetchCourses(ctx context.Context) ([]models.Course, error) {
	var override []models.Course
	if ok, err := p.loadOverride("courses", &override); err != nil {
		return nil, err
	} else if ok {
		return override, nil
	}
	return seedCourses(), nil
}

func (p *StaticProvider) FetchServiceTiers(ctx context.Context) ([]models.ServiceTier, error) {
	var override []models.ServiceTier
	if ok, err := p.loadOverride("tiers", &override); err != nil {
		return nil, err
	} else if ok {
		return override, nil
	}
	return seedServiceTiers(), nil
}

func (p *StaticProvider) FetchLinkedInPosts(ctx context.Context) ([]models.LinkedInPost, error) {
	var override []models.LinkedInPost
	if ok, err := p.loadOverride("posts", &override); err != nil {
		return nil, err
	} else if ok {
		return override, nil
	}
	return seedLinkedInPosts(), nil
}

func (p *StaticProvider) FetchHomepageData(ctx context.Context) (*models.HomepageData, error) {
	var override models.HomepageData
	if ok, err := p.loadOverride("homepage", &override); err != nil {
		return nil, err
	} else if ok {
		return &override, nil
	}
	return seedHomepage(), nil
}

func (p *StaticProvider) FetchTermsOfService(ctx context.Context) (*models.TermsOfService, error) {
	var override models.TermsOfService
	if ok, err := p.loadOverride("terms", &override); err != nil {
		return nil, err
	} else if ok {
		return &override, nil
	}
	return seedTerms(), nil
}
