package link

import (
	"net/url"
	"strings"
	"time"

	"collabhive-go/internal/apperr"
	"github.com/google/uuid"
)

const (
	maxTypeLength  = 32
	maxTitleLength = 120
	maxURLLength   = 2048
)

var (
	ErrLinkNotFound = apperr.NotFound("link_not_found", "Link not found")
	ErrInvalidType  = apperr.BadRequest("invalid_link_type", "link type is required")
	ErrInvalidTitle = apperr.BadRequest("invalid_link_title", "link title is required")
	ErrInvalidURL   = apperr.BadRequest("invalid_link_url", "link url must be an absolute http(s) url")
)

// AttachmentLink belongs to exactly one of a profile or a project.
type AttachmentLink struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	LinkType  string    `gorm:"column:link_type;not null"`
	Title     string    `gorm:"not null"`
	URL       string    `gorm:"column:url;not null"`
	ProfileID *string   `gorm:"column:profile_id;index"`
	ProjectID *string   `gorm:"column:project_id;type:uuid;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AttachmentLink) TableName() string {
	return "attachment_links"
}

type Input struct {
	LinkType string
	Title    string
	URL      string
}

// New validates input and builds a link without an owner.
func New(input Input) (*AttachmentLink, error) {
	linkType := strings.TrimSpace(input.LinkType)
	if linkType == "" || len(linkType) > maxTypeLength {
		return nil, ErrInvalidType
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || len(title) > maxTitleLength {
		return nil, ErrInvalidTitle
	}

	rawURL := strings.TrimSpace(input.URL)
	if len(rawURL) > maxURLLength {
		return nil, ErrInvalidURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, ErrInvalidURL
	}

	return &AttachmentLink{
		ID:       uuid.NewString(),
		LinkType: strings.ToLower(linkType),
		Title:    title,
		URL:      parsed.String(),
	}, nil
}
