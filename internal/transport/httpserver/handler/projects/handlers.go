package projects

import (
	"context"

	"collabhive-go/internal/domain/link"
	projectdomain "collabhive-go/internal/domain/project"
	commonhandler "collabhive-go/internal/transport/httpserver/handler/common"
	"collabhive-go/pkg/logger"
)

type Service interface {
	Find(ctx context.Context, params projectdomain.SearchParams) ([]projectdomain.Summary, error)
	GetDetails(ctx context.Context, projectID, requestingUserID string) (*projectdomain.Detail, error)
	CreateNew(ctx context.Context, userID, name string) (string, error)
	ToggleFavorite(ctx context.Context, userID, projectID string) (string, error)
	UpdateDetails(ctx context.Context, projectID string, patch projectdomain.ProjectPatch) error
	Delete(ctx context.Context, projectID string) error
	AddLink(ctx context.Context, projectID string, input link.Input) (*link.AttachmentLink, error)
	RemoveLink(ctx context.Context, projectID, linkID string) error
}

type Handlers struct {
	Projects    Service
	Permissions commonhandler.ProjectPermissions
	log         logger.Logger
}

func New(projects Service, permissions commonhandler.ProjectPermissions, log logger.Logger) *Handlers {
	return &Handlers{
		Projects:    projects,
		Permissions: permissions,
		log:         log,
	}
}
