package collaboration

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ProjectExists(ctx context.Context, projectID string) (bool, error)
	// GetCollaboration returns ErrCollaborationNotFound when the pair has no row.
	GetCollaboration(ctx context.Context, projectID, profileID string) (*Collaboration, error)
	// CreateCollaboration returns ErrAlreadyRequested when the pair already has a row.
	CreateCollaboration(ctx context.Context, collaboration *Collaboration) error
	// UpdateRelations and DeleteCollaborations never touch Creator rows.
	UpdateRelations(ctx context.Context, projectID string, profileIDs []string, relation Relation) error
	DeleteCollaborations(ctx context.Context, projectID string, profileIDs []string) error
	HasRelation(ctx context.Context, projectID, profileID string, relation Relation) (bool, error)
	ListCreatorRequests(ctx context.Context, profileID string) ([]CreatorRequests, error)
	ListProjectCards(ctx context.Context, profileID string, relation Relation, memberRelations []Relation) ([]ProjectCardRow, error)
}
