package portfolios

import (
	"time"

	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
	"github.com/showcase-web/portfolio-server/bundles/category"
)

// TODO: move DB related functions to a DB Accessor. Inject the db accessor to the portfolios service.

// Portfolio status values.
const (
	// StatusDraft marks a portfolio that is only visible to its owner.
	StatusDraft = "draft"
	// StatusPublished marks a portfolio that shows up in public listings.
	StatusPublished = "published"
)

// Portfolio represents a single showcased project.
//
// A portfolio contains information about one piece of work, such as a
// web app, a research project, or a design case study.
//
// swagger:model dbPortfolio
type Portfolio struct {
	// Override default GORM Model fields
	ID        uint      `gorm:"primary_key" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL"`
	UpdatedAt time.Time
	// Added 2 milliseconds to DeletedAt field, and added it to the unique index to help disambiguate
	// when soft deleted rows are involved.
	DeletedAt *time.Time `gorm:"type:timestamp(2) NULL; unique_index:idx_portfolioname_owner" sql:"index"`

	// The name of the portfolio
	Name *string `gorm:"unique_index:idx_portfolioname_owner" json:"name,omitempty"`

	// Optional user friendly name to use in URLs
	URLName *string `json:"url_name,omitempty"`

	// Unique identifier for the portfolio
	UUID *string `json:"-"`

	// A description of the portfolio (max 65,535 chars)
	Description *string `gorm:"type:text" json:"description,omitempty"`

	// Number of likes
	Likes int `json:"likes,omitempty"`

	// Number of views
	Views int `json:"views,omitempty"`

	// Publication status. Either "draft" or "published".
	Status *string `json:"status,omitempty"`

	// Date and time the portfolio was first published
	PublicationDate *time.Time `json:"publication_date,omitempty"`

	// Date and time the portfolio was modified
	ModifyDate *time.Time `json:"modify_date,omitempty"`

	// Tags associated to this portfolio
	Tags Tags `gorm:"many2many:portfolio_tags;" json:"tags,omitempty"`

	// Categories associated to this portfolio
	Categories category.Categories `gorm:"many2many:portfolio_categories;" json:"categories,omitempty"`

	// URL of the thumbnail image shown in listings
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`

	// URL of a live demo (optional)
	DemoURL *string `json:"demo_url,omitempty"`

	// URL of the source repository (optional)
	RepoURL *string `json:"repo_url,omitempty"`

	// The owner of this portfolio (must exist in users)
	Owner *string `gorm:"unique_index:idx_portfolioname_owner" json:"owner,omitempty"`

	// The username of the User that created this portfolio (usually got from the JWT)
	Creator *string `json:"creator,omitempty"`

	// Private - True to make this a private resource
	Private *bool `json:"private,omitempty"`
}

// GetID returns the ID
func (p *Portfolio) GetID() uint {
	return p.ID
}

// GetName returns the portfolio's name
func (p *Portfolio) GetName() *string {
	return p.Name
}

// GetOwner returns the portfolio's owner
func (p *Portfolio) GetOwner() *string {
	return p.Owner
}

// GetUUID returns the portfolio's UUID
func (p *Portfolio) GetUUID() *string {
	return p.UUID
}

// IsDraft returns true if the portfolio has not been published yet.
func (p *Portfolio) IsDraft() bool {
	return p.Status == nil || *p.Status == StatusDraft
}

// Portfolios is an array of Portfolio
//
type Portfolios []Portfolio

// QueryForPortfolios returns a gorm query configured to query Portfolios with
// preloaded Tags and Categories.
func QueryForPortfolios(q *gorm.DB) *gorm.DB {
	return q.Model(&Portfolio{}).Order("id").Preload("Tags").Preload("Categories")
}

// GetPortfolioByName queries a Portfolio by portfolio name and owner.
func GetPortfolioByName(tx *gorm.DB, portfolioName string, owner string) (*Portfolio, error) {
	var portfolio Portfolio
	if err := QueryForPortfolios(tx).Where("owner = ? AND name = ?", owner, portfolioName).First(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// NewPortfolioAndUUID creates a Portfolio struct with a new UUID.
func NewPortfolioAndUUID(name, urlName, desc, owner, creator *string, status string,
	tags Tags, private bool, categories *category.Categories) (Portfolio, error) {
	uuidStr := uuid.NewV4().String()
	return NewPortfolio(&uuidStr, name, urlName, desc, owner, creator, status, tags,
		private, categories)
}

// NewPortfolio creates a new Portfolio struct
func NewPortfolio(uuidStr, name, urlName, desc, owner, creator *string, status string,
	tags Tags, private bool, categories *category.Categories) (Portfolio, error) {

	modifyDate := time.Now()
	portfolio := Portfolio{Name: name, URLName: urlName, Owner: owner, Creator: creator,
		UUID: uuidStr, Description: desc, Likes: 0, Views: 0, Status: &status,
		ModifyDate: &modifyDate, Tags: tags, Private: &private,
	}
	if status == StatusPublished {
		pubDate := time.Now()
		portfolio.PublicationDate = &pubDate
	}
	if categories != nil {
		portfolio.Categories = *categories
	}
	return portfolio, nil
}

// CreatePortfolio encapsulates data required to create a portfolio
type CreatePortfolio struct {
	// The name of the Portfolio
	// required: true
	Name string `json:"name" validate:"required,min=3,noforwardslash,nopercent" form:"name"`
	// Optional Owner of the portfolio. Must be a user.
	// If not set, the current user will be used as owner
	Owner string `json:"owner" form:"owner"`
	// Url name
	URLName string `json:"urlName" validate:"omitempty,base64" form:"urlName"`
	// Optional description
	Description string `json:"description" form:"description"`
	// A comma separated list of tags
	Tags string `json:"tags" validate:"printascii" form:"tags"`
	// A comma separated list of category names
	Categories string `json:"categories" validate:"omitempty" form:"categories"`
	// Publication status. Defaults to draft.
	// enum: draft, published
	Status string `json:"status" validate:"omitempty,oneof=draft published" form:"status"`
	// URL of the thumbnail image
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url" form:"thumbnailUrl"`
	// URL of a live demo
	DemoURL string `json:"demoUrl" validate:"omitempty,url" form:"demoUrl"`
	// URL of the source repository
	RepoURL string `json:"repoUrl" validate:"omitempty,url" form:"repoUrl"`
	// Optional privacy/visibility setting.
	Private *bool `json:"private" validate:"omitempty" form:"private"`
}

// UpdatePortfolio encapsulates data that can be updated in a portfolio
type UpdatePortfolio struct {
	// Optional description
	Description *string `json:"description" form:"description"`
	// Optional list of tags (comma separated)
	Tags *string `json:"tags" form:"tags"`
	// Optional list of category names (comma separated)
	Categories *string `json:"categories" form:"categories"`
	// Publication status
	// enum: draft, published
	Status *string `json:"status" validate:"omitempty,oneof=draft published" form:"status"`
	// URL of the thumbnail image
	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,url" form:"thumbnailUrl"`
	// URL of a live demo
	DemoURL *string `json:"demoUrl" validate:"omitempty,url" form:"demoUrl"`
	// URL of the source repository
	RepoURL *string `json:"repoUrl" validate:"omitempty,url" form:"repoUrl"`
	// Private privacy/visibility setting
	Private *bool `json:"private" validate:"omitempty" form:"private"`
}

// IsEmpty returns true is the struct is empty.
func (up UpdatePortfolio) IsEmpty() bool {
	return up.Description == nil && up.Tags == nil && up.Categories == nil &&
		up.Status == nil && up.ThumbnailURL == nil && up.DemoURL == nil &&
		up.RepoURL == nil && up.Private == nil
}
