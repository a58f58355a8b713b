package profile

import (
	"context"

	"collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
)

type Repository interface {
	// GetProfile returns ErrProfileNotFound when the profile does not exist.
	GetProfile(ctx context.Context, profileID string) (*Profile, error)
	// InsertProfileIfAbsent never overwrites an existing row.
	InsertProfileIfAbsent(ctx context.Context, profile *Profile) error
	// UpdateProfile returns false when no profile matched.
	UpdateProfile(ctx context.Context, profileID string, patch ProfilePatch) (bool, error)

	ListMembershipCards(ctx context.Context, profileID string, relations []collaboration.Relation) ([]MembershipCard, error)
	ListFavoriteCards(ctx context.Context, profileID string) ([]ProjectCard, error)

	ListLinks(ctx context.Context, profileID string) ([]link.AttachmentLink, error)
	CreateLink(ctx context.Context, link *link.AttachmentLink) error
	// DeleteLink returns false when the profile owns no such link.
	DeleteLink(ctx context.Context, profileID, linkID string) (bool, error)
}
