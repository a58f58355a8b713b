package collaboration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"collabhive-go/internal/domain/catalog"
	"collabhive-go/pkg/logger"
	"github.com/google/uuid"
)

const maxRequestMessageLength = 2000

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, log: log}
}

// RequestToJoin files a pending request for userID on projectID. A profile
// that already has any relation with the project is refused; declines are
// permanent.
func (s *Service) RequestToJoin(ctx context.Context, projectID, userID, message string) error {
	if len(message) > maxRequestMessageLength {
		return ErrMessageTooLong
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.ProjectExists(ctx, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrProjectNotFound
		}

		existing, err := tx.GetCollaboration(ctx, projectID, userID)
		switch {
		case errors.Is(err, ErrCollaborationNotFound):
		case err != nil:
			return err
		default:
			return joinRefusal(existing.Relation)
		}

		return tx.CreateCollaboration(ctx, &Collaboration{
			ID:             uuid.NewString(),
			ProjectID:      projectID,
			ProfileID:      userID,
			Relation:       RelationPending,
			RequestMessage: &message,
		})
	})
	if err != nil {
		return err
	}
	s.log.Info("collaboration.join: request filed", "project_id", projectID, "user_id", userID)
	return nil
}

func joinRefusal(relation Relation) error {
	switch relation {
	case RelationPending:
		return ErrAlreadyRequested
	case RelationDeclined:
		return ErrPreviouslyDeclined
	case RelationAccepted:
		return ErrAlreadyCollaborator
	case RelationCreator:
		return ErrCreatorCannotJoin
	}
	return fmt.Errorf("collaboration: unexpected relation %q", relation)
}

// Manage applies the accept, decline and remove batches in that order. Each
// batch is one bulk statement; updates do not look at the current relation.
// The batches share a transaction, so either all of them land or none do.
func (s *Service) Manage(ctx context.Context, projectID string, input ManageInput) error {
	accepted := normalizeIDs(input.Accepted)
	declined := normalizeIDs(input.Declined)
	removed := normalizeIDs(input.Removed)
	if len(accepted) == 0 && len(declined) == 0 && len(removed) == 0 {
		return nil
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if len(accepted) > 0 {
			if err := tx.UpdateRelations(ctx, projectID, accepted, RelationAccepted); err != nil {
				return fmt.Errorf("accept requests: %w", err)
			}
		}
		if len(declined) > 0 {
			if err := tx.UpdateRelations(ctx, projectID, declined, RelationDeclined); err != nil {
				return fmt.Errorf("decline requests: %w", err)
			}
		}
		if len(removed) > 0 {
			if err := tx.DeleteCollaborations(ctx, projectID, removed); err != nil {
				return fmt.Errorf("remove collaborators: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("collaboration.manage: applied", "project_id", projectID,
		"accepted", len(accepted), "declined", len(declined), "removed", len(removed))
	return nil
}

// Leave drops the user's row on the project whether or not one exists.
func (s *Service) Leave(ctx context.Context, projectID, userID string) error {
	return s.repo.DeleteCollaborations(ctx, projectID, []string{userID})
}

// CanEditProject reports whether userID created projectID. A non-nil error
// means the answer is unknown and must not be read as a denial.
func (s *Service) CanEditProject(ctx context.Context, projectID, userID string) (bool, error) {
	if projectID == "" || userID == "" {
		return false, nil
	}
	return s.repo.HasRelation(ctx, projectID, userID, RelationCreator)
}

func (s *Service) CreatorRequests(ctx context.Context, userID string) ([]CreatorRequests, error) {
	requests, err := s.repo.ListCreatorRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		return []CreatorRequests{}, nil
	}
	return requests, nil
}

func (s *Service) CreatorProjectCards(ctx context.Context, userID string) ([]CreatorProjectCard, error) {
	rows, err := s.repo.ListProjectCards(ctx, userID, RelationCreator, []Relation{RelationAccepted})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoProjects
	}

	cards := make([]CreatorProjectCard, 0, len(rows))
	for _, row := range rows {
		names := make([]string, 0, len(row.Members))
		for _, member := range row.Members {
			if member.Relation == RelationAccepted {
				names = append(names, member.Name)
			}
		}

		collaboratorsText := ""
		if len(names) > 0 {
			collaboratorsText = "With " + catalog.ListText(names)
		}

		cards = append(cards, CreatorProjectCard{
			ID:                  row.ProjectID,
			Name:                row.Name,
			TechnologyStackText: catalog.TechnologyStackText(row.Technologies),
			CollaboratorsText:   collaboratorsText,
			IsOpen:              row.IsOpen,
		})
	}
	return cards, nil
}

func (s *Service) CollaboratorProjectCards(ctx context.Context, userID string) ([]CollaboratorProjectCard, error) {
	rows, err := s.repo.ListProjectCards(ctx, userID, RelationAccepted, []Relation{RelationCreator, RelationAccepted})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoProjects
	}

	cards := make([]CollaboratorProjectCard, 0, len(rows))
	for _, row := range rows {
		creatorName := ""
		names := make([]string, 0, len(row.Members))
		for _, member := range row.Members {
			if member.Relation == RelationCreator {
				creatorName = member.Name
			}
			names = append(names, member.Name)
		}

		cards = append(cards, CollaboratorProjectCard{
			ID:                  row.ProjectID,
			Name:                row.Name,
			TechnologyStackText: catalog.TechnologyStackText(row.Technologies),
			CreatorName:         creatorName,
			CollaboratorsText:   catalog.ListText(names),
			IsOpen:              row.IsOpen,
		})
	}
	return cards, nil
}

func normalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
