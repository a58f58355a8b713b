package profile

import (
	"time"

	"collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
)

// Profile ids come from the auth provider; they are not generated here.
type Profile struct {
	ID                 string    `gorm:"primaryKey"`
	Name               string    `gorm:"not null;default:''"`
	Email              *string   `gorm:"type:text"`
	AvatarURL          *string   `gorm:"type:text"`
	Bio                string    `gorm:"type:text;not null;default:''"`
	ActiveProjectSlots int       `gorm:"not null;default:1"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

type ProjectCard struct {
	ID               string
	Name             string
	CreatorName      string
	CreatorAvatarURL *string
	UpdatedAt        time.Time
	IsOpen           bool
}

// MembershipCard is a project card tagged with the profile's relation to it.
type MembershipCard struct {
	ProjectCard
	Relation collaboration.Relation
}

type Details struct {
	Profile
	Favorites             []ProjectCard
	CreatorProjects       []ProjectCard
	CollaborationProjects []ProjectCard
	Links                 []link.AttachmentLink
}

type OptionalNullableString struct {
	Set   bool
	Value *string
}

type ProfilePatch struct {
	Name      *string
	Bio       *string
	AvatarURL OptionalNullableString
}

func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Bio == nil && !p.AvatarURL.Set
}

// Identity is what the auth layer knows about a caller.
type Identity struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
}
