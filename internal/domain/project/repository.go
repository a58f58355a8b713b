package project

import (
	"context"

	"collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	// Search returns open projects matching the query, already ordered and paged.
	Search(ctx context.Context, query SearchQuery) ([]Project, error)
	// GetProject returns ErrProjectNotFound when the project does not exist.
	GetProject(ctx context.Context, projectID string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	// UpdateProject returns false when no project matched.
	UpdateProject(ctx context.Context, projectID string, patch ProjectPatch) (bool, error)
	// DeleteProject removes the project row only and returns false when none matched.
	DeleteProject(ctx context.Context, projectID string) (bool, error)
	DeleteProjectCollaborations(ctx context.Context, projectID string) error
	DeleteProjectFavorites(ctx context.Context, projectID string) error
	DeleteProjectLinks(ctx context.Context, projectID string) error

	CreateCollaboration(ctx context.Context, collaboration *collaboration.Collaboration) error
	// ListMembers returns collaboration rows joined with profiles. A nil
	// relations slice means every relation.
	ListMembers(ctx context.Context, projectIDs []string, relations []collaboration.Relation) ([]collaboration.Member, error)
	GetCreatorID(ctx context.Context, projectID string) (string, error)

	CountFavorites(ctx context.Context, projectIDs []string) (map[string]int64, error)
	ListFavoriteProfileIDs(ctx context.Context, projectID string) ([]string, error)
	HasFavorite(ctx context.Context, profileID, projectID string) (bool, error)
	AddFavorite(ctx context.Context, favorite *Favorite) error
	RemoveFavorite(ctx context.Context, profileID, projectID string) error

	ListLinks(ctx context.Context, projectID string) ([]link.AttachmentLink, error)
	CreateLink(ctx context.Context, link *link.AttachmentLink) error
	// DeleteLink returns false when the project has no such link.
	DeleteLink(ctx context.Context, projectID, linkID string) (bool, error)
}
