package collaboration

import (
	"context"

	collaborationdomain "collabhive-go/internal/domain/collaboration"
	"collabhive-go/pkg/logger"
)

type Service interface {
	RequestToJoin(ctx context.Context, projectID, userID, message string) error
	Manage(ctx context.Context, projectID string, input collaborationdomain.ManageInput) error
	Leave(ctx context.Context, projectID, userID string) error
	CanEditProject(ctx context.Context, projectID, userID string) (bool, error)
	CreatorRequests(ctx context.Context, userID string) ([]collaborationdomain.CreatorRequests, error)
	CreatorProjectCards(ctx context.Context, userID string) ([]collaborationdomain.CreatorProjectCard, error)
	CollaboratorProjectCards(ctx context.Context, userID string) ([]collaborationdomain.CollaboratorProjectCard, error)
}

type Handlers struct {
	Collaboration Service
	log           logger.Logger
}

func New(collaboration Service, log logger.Logger) *Handlers {
	return &Handlers{
		Collaboration: collaboration,
		log:           log,
	}
}
