package profiles

import (
	"context"

	"collabhive-go/internal/domain/link"
	profiledomain "collabhive-go/internal/domain/profile"
	"collabhive-go/pkg/logger"
)

type Service interface {
	GetDetails(ctx context.Context, profileID string) (*profiledomain.Details, error)
	UpdateDetails(ctx context.Context, profileID string, patch profiledomain.ProfilePatch) error
	AddLink(ctx context.Context, profileID string, input link.Input) (*link.AttachmentLink, error)
	RemoveLink(ctx context.Context, profileID, linkID string) error
}

type Handlers struct {
	Profiles Service
	log      logger.Logger
}

func New(profiles Service, log logger.Logger) *Handlers {
	return &Handlers{
		Profiles: profiles,
		log:      log,
	}
}
