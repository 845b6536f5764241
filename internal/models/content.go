package models

// ContentType distinguishes renderable articles from interactive demos.
type ContentType string

const (
	ContentArticle ContentType = "article"
	ContentDemo    ContentType = "demo"
)

// DemoKind is the closed set of interactive demo identifiers.
type DemoKind string

const (
	DemoMintNFT   DemoKind = "mint_nft"
	DemoDAOVoting DemoKind = "dao_voting"
	DemoTokenSwap DemoKind = "token_swap"
)

// IsValid reports whether k names a known demo.
func (k DemoKind) IsValid() bool {
	switch k {
	case DemoMintNFT, DemoDAOVoting, DemoTokenSwap:
		return true
	}
	return false
}

// Content is an article or interactive-demo descriptor in the learning hub.
// type=article implies FullContent is renderable; type=demo implies Demo
// names a known demo kind.
type Content struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"image_url"`
	Type        ContentType `json:"type"`
	Demo        DemoKind    `json:"demo,omitempty"`
	FullContent string      `json:"full_content,omitempty"`
}

// ResourceType categorizes downloadable resources.
type ResourceType string

const (
	ResourceTemplate  ResourceType = "Template"
	ResourceEBook     ResourceType = "E-Book"
	ResourceChecklist ResourceType = "Checklist"
	ResourceGuide     ResourceType = "Guide"
)

// Resource is a downloadable item gated behind the unlock gate.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ResourceType `json:"type"`
	ImageURL    string       `json:"image_url"`
}

// CourseType splits courses into in-app free tracks and externally
// purchased paid tracks.
type CourseType string

const (
	CourseFree CourseType = "free"
	CoursePaid CourseType = "paid"
)

// CourseModule is one ordered unit of a course curriculum.
type CourseModule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Course is a learning track. type=free implies the in-app learning
// experience is available; type=paid implies PurchaseLink is set.
type Course struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Subtitle     string         `json:"subtitle"`
	Description  string         `json:"description"`
	Type         CourseType     `json:"type"`
	Price        string         `json:"price,omitempty"`
	PurchaseLink string         `json:"purchase_link,omitempty"`
	Difficulty   string         `json:"difficulty"`
	Audience     string         `json:"audience"`
	ImageURL     string         `json:"image_url"`
	Modules      []CourseModule `json:"modules"`
	NextCourseID string         `json:"next_course_id,omitempty"`
}

// ServiceTier is one membership offering.
type ServiceTier struct {
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	IsFeatured   bool     `json:"is_featured"`
	PurchaseLink string   `json:"purchase_link"`
}

// LinkedInPost is one entry in the promotional social feed.
type LinkedInPost struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	Shares    int    `json:"shares"`
}

// AboutMeData holds the homepage biography block.
type AboutMeData struct {
	Headline string `json:"headline" yaml:"headline"`
	Bio1     string `json:"bio1" yaml:"bio1"`
	Bio2     string `json:"bio2" yaml:"bio2"`
	ImageURL string `json:"image_url" yaml:"image_url"`
}

// PromoData holds a homepage promotional block.
type PromoData struct {
	Headline    string `json:"headline" yaml:"headline"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url"`
	CTA         string `json:"cta" yaml:"cta"`
}

// HomepageData is the homepage single-type record, CMS-shaped.
type HomepageData struct {
	AboutMe         AboutMeData `json:"about_me" yaml:"about_me"`
	EbookPromo      PromoData   `json:"ebook_promo" yaml:"ebook_promo"`
	CoursesPromo    PromoData   `json:"courses_promo" yaml:"courses_promo"`
	MembershipPromo PromoData   `json:"membership_promo" yaml:"membership_promo"`
	LinkedInFeed    PromoData   `json:"linkedin_feed" yaml:"linkedin_feed"`
}

// TermsSection is one section of the terms-of-service document.
type TermsSection struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// TermsOfService is the terms-of-service single-type record.
type TermsOfService struct {
	Title        string         `json:"title" yaml:"title"`
	LastUpdated  string         `json:"last_updated" yaml:"last_updated"`
	Introduction string         `json:"introduction" yaml:"introduction"`
	Sections     []TermsSection `json:"sections" yaml:"sections"`
}
