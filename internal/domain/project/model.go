package project

import (
	"time"

	"collabhive-go/internal/domain/link"
	"gorm.io/datatypes"
)

type Project struct {
	ID           string                      `gorm:"type:uuid;primaryKey"`
	Name         string                      `gorm:"not null"`
	Description  string                      `gorm:"type:text;not null;default:''"`
	IsOpen       bool                        `gorm:"not null;default:false;index"`
	Complexity   string                      `gorm:"not null"`
	RolesOpen    datatypes.JSONSlice[string] `gorm:"column:roles_open;type:jsonb;not null"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

type Favorite struct {
	ProfileID string    `gorm:"primaryKey"`
	ProjectID string    `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Person is the public face of a profile inside project views.
type Person struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// Summary is one search result. It is what the search cache stores.
type Summary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Complexity    string    `json:"complexity"`
	Technologies  []string  `json:"technologies"`
	Roles         []string  `json:"roles"`
	Creator       Person    `json:"creator"`
	Collaborators []Person  `json:"collaborators"`
	FavoriteCount int64     `json:"favoriteCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CollaborationRequest struct {
	Sender     Person
	Message    *string
	IsDeclined bool
}

type Detail struct {
	ID                    string
	Name                  string
	Description           string
	IsOpen                bool
	Complexity            string
	Roles                 []string
	Technologies          []string
	Creator               *Person
	Collaborators         []Person
	CollaborationRequests []CollaborationRequest
	FavoriteCount         int64
	UserHasFavorited      bool
	Links                 []link.AttachmentLink
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type SearchParams struct {
	Roles        []string
	Complexities []string
	Technologies []string
	SortBy       string
	Page         int
	Limit        int
}

// SearchQuery is the normalized form of SearchParams handed to the store.
type SearchQuery struct {
	Roles        []string
	Complexities []string
	Technologies []string
	Order        SortOrder
	Limit        int
	Offset       int
}

// ProjectPatch carries the fields to write; nil means "leave as is".
type ProjectPatch struct {
	Name         *string
	Description  *string
	IsOpen       *bool
	Complexity   *string
	Roles        *[]string
	Technologies *[]string
}

func (p ProjectPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.IsOpen == nil &&
		p.Complexity == nil && p.Roles == nil && p.Technologies == nil
}
