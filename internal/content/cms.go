package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/web3hub/hub-engine/internal/models"
)

// CMSProvider fetches the content collections from a headless CMS HTTP
// API. It honors the same shapes and success/failure contract as the
// static provider.
type CMSProvider struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// CMSOption configures the CMS provider.
type CMSOption func(*CMSProvider)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) CMSOption {
	return func(p *CMSProvider) {
		p.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) CMSOption {
	return func(p *CMSProvider) {
		p.httpClient.Timeout = timeout
	}
}

// NewCMSProvider creates a provider against the CMS base URL. The token
// is sent as a bearer credential when set.
func NewCMSProvider(baseURL, apiToken string, opts ...CMSOption) *CMSProvider {
	p := &CMSProvider{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// getJSON fetches baseURL+path and decodes the CMS envelope {"data": ...}
// into out.
func (p *CMSProvider) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiToken)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read cms response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cms returned status %d for %s", resp.StatusCode, path)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode cms envelope: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode cms collection %s: %w", path, err)
	}
	return nil
}

func (p *CMSProvider) FetchLearnContent(ctx context.Context) ([]models.Content, error) {
	var items []models.Content
	if err := p.getJSON(ctx, "/api/articles", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *CMSProvider) FetchResourcesContent(ctx context.Context) ([]models.Resource, error) {
	var items []models.Resource
	if err := p.getJSON(ctx, "/api/resources", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *CMSProvider) FetchCourses(ctx context.Context) ([]models.Course, error) {
	var items []models.Course
	if err := p.getJSON(ctx, "/api/courses", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *CMSProvider) FetchServiceTiers(ctx context.Context) ([]models.ServiceTier, error) {
	var items []models.ServiceTier
	if err := p.getJSON(ctx, "/api/tiers", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *CMSProvider) FetchLinkedInPosts(ctx context.Context) ([]models.LinkedInPost, error) {
	var items []models.LinkedInPost
	if err := p.getJSON(ctx, "/api/posts", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *CMSProvider) FetchHomepageData(ctx context.Context) (*models.HomepageData, error) {
	var data models.HomepageData
	if err := p.getJSON(ctx, "/api/homepage", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (p *CMSProvider) FetchTermsOfService(ctx context.Context) (*models.TermsOfService, error) {
	var data models.TermsOfService
	if err := p.getJSON(ctx, "/api/terms-of-service", &data); err != nil {
		return nil, err
	}
	return &data, nil
}
