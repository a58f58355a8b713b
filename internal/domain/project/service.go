package project

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"collabhive-go/internal/domain/catalog"
	"collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
	"collabhive-go/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultSearchTTL = 5 * time.Minute

	maxNameLength       = 120
	scanBatchSize       = 100
	invalidationWorkers = 8

	favoriteAddedMessage   = "Added project to favorites"
	favoriteRemovedMessage = "Removed project from favorites"
)

type Service struct {
	repo      Repository
	cache     Cache
	log       logger.Logger
	searchTTL time.Duration
}

// NewService builds the project catalog. A nil cache disables search caching.
func NewService(repo Repository, cache Cache, log logger.Logger, searchTTL time.Duration) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if searchTTL <= 0 {
		searchTTL = DefaultSearchTTL
	}
	return &Service{repo: repo, cache: cache, log: log, searchTTL: searchTTL}
}

// Find returns open projects matching params. Results are served from the
// search cache when present; cache failures fall back to the store.
func (s *Service) Find(ctx context.Context, params SearchParams) ([]Summary, error) {
	key := normalizeSearch(params)
	if err := key.validate(); err != nil {
		return nil, err
	}
	cacheKey, err := key.cacheKey()
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cachedSearch(ctx, cacheKey); ok {
		return cached, nil
	}

	projects, err := s.repo.Search(ctx, key.query())
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNoProjectsFound
	}

	summaries, err := s.buildSummaries(ctx, projects)
	if err != nil {
		return nil, err
	}

	s.storeSearch(ctx, cacheKey, summaries)
	s.log.Info("project.find: projects found", "count", len(summaries))
	return summaries, nil
}

func (s *Service) cachedSearch(ctx context.Context, cacheKey string) ([]Summary, bool) {
	raw, ok, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		s.log.InternalError("project.find: cache read failed", err, "key", cacheKey)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var summaries []Summary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		s.log.InternalError("project.find: cache entry corrupt", err, "key", cacheKey)
		return nil, false
	}
	return summaries, true
}

func (s *Service) storeSearch(ctx context.Context, cacheKey string, summaries []Summary) {
	raw, err := json.Marshal(summaries)
	if err != nil {
		s.log.InternalError("project.find: encode cache entry", err, "key", cacheKey)
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, s.searchTTL); err != nil {
		s.log.InternalError("project.find: cache write failed", err, "key", cacheKey)
	}
}

func (s *Service) buildSummaries(ctx context.Context, projects []Project) ([]Summary, error) {
	ids := make([]string, 0, len(projects))
	for _, project := range projects {
		ids = append(ids, project.ID)
	}

	members, err := s.repo.ListMembers(ctx, ids, []collaboration.Relation{
		collaboration.RelationCreator,
		collaboration.RelationAccepted,
	})
	if err != nil {
		return nil, err
	}
	favorites, err := s.repo.CountFavorites(ctx, ids)
	if err != nil {
		return nil, err
	}

	creators := make(map[string]Person, len(projects))
	collaborators := make(map[string][]Person, len(projects))
	for _, member := range members {
		person := personOf(member)
		switch member.Relation {
		case collaboration.RelationCreator:
			creators[member.ProjectID] = person
		case collaboration.RelationAccepted:
			collaborators[member.ProjectID] = append(collaborators[member.ProjectID], person)
		}
	}

	summaries := make([]Summary, 0, len(projects))
	for _, project := range projects {
		projectCollaborators := collaborators[project.ID]
		if projectCollaborators == nil {
			projectCollaborators = []Person{}
		}
		summaries = append(summaries, Summary{
			ID:            project.ID,
			Name:          project.Name,
			Complexity:    project.Complexity,
			Technologies:  stringsOrEmpty(project.Technologies),
			Roles:         stringsOrEmpty(project.RolesOpen),
			Creator:       creators[project.ID],
			Collaborators: projectCollaborators,
			FavoriteCount: favorites[project.ID],
			CreatedAt:     project.CreatedAt,
		})
	}
	return summaries, nil
}

// GetDetails returns the full project view. Collaboration requests are only
// filled in when requestingUserID is the creator.
func (s *Service) GetDetails(ctx context.Context, projectID, requestingUserID string) (*Detail, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, []string{projectID}, nil)
	if err != nil {
		return nil, err
	}
	favoritedBy, err := s.repo.ListFavoriteProfileIDs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	links, err := s.repo.ListLinks(ctx, projectID)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		ID:                    project.ID,
		Name:                  project.Name,
		Description:           project.Description,
		IsOpen:                project.IsOpen,
		Complexity:            project.Complexity,
		Roles:                 stringsOrEmpty(project.RolesOpen),
		Technologies:          stringsOrEmpty(project.Technologies),
		Collaborators:         []Person{},
		CollaborationRequests: []CollaborationRequest{},
		FavoriteCount:         int64(len(favoritedBy)),
		Links:                 links,
		CreatedAt:             project.CreatedAt,
		UpdatedAt:             project.UpdatedAt,
	}
	if detail.Links == nil {
		detail.Links = []link.AttachmentLink{}
	}

	for _, member := range members {
		switch member.Relation {
		case collaboration.RelationCreator:
			creator := personOf(member)
			detail.Creator = &creator
		case collaboration.RelationAccepted:
			detail.Collaborators = append(detail.Collaborators, personOf(member))
		case collaboration.RelationPending, collaboration.RelationDeclined:
			detail.CollaborationRequests = append(detail.CollaborationRequests, CollaborationRequest{
				Sender:     personOf(member),
				Message:    member.RequestMessage,
				IsDeclined: member.Relation == collaboration.RelationDeclined,
			})
		}
	}

	if requestingUserID == "" || detail.Creator == nil || detail.Creator.ID != requestingUserID {
		detail.CollaborationRequests = []CollaborationRequest{}
	}

	if requestingUserID != "" {
		for _, profileID := range favoritedBy {
			if profileID == requestingUserID {
				detail.UserHasFavorited = true
				break
			}
		}
	}

	return detail, nil
}

// CreateNew creates a closed, empty project owned by userID and returns its id.
func (s *Service) CreateNew(ctx context.Context, userID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if len(name) > maxNameLength {
		return "", ErrNameTooLong
	}

	project := Project{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  "",
		IsOpen:       false,
		Complexity:   catalog.Complexities.First(),
		RolesOpen:    []string{},
		Technologies: []string{},
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateProject(ctx, &project); err != nil {
			return err
		}
		return tx.CreateCollaboration(ctx, &collaboration.Collaboration{
			ID:        uuid.NewString(),
			ProjectID: project.ID,
			ProfileID: userID,
			Relation:  collaboration.RelationCreator,
		})
	})
	if err != nil {
		return "", err
	}

	s.log.Info("project.create: project created", "project_id", project.ID, "user_id", userID)
	s.invalidateSearchCache(ctx)
	return project.ID, nil
}

// ToggleFavorite flips userID's favorite on projectID and returns a message
// describing the new state. Creators may not favorite their own project.
func (s *Service) ToggleFavorite(ctx context.Context, userID, projectID string) (string, error) {
	var message string
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetProject(ctx, projectID); err != nil {
			return err
		}

		creatorID, err := tx.GetCreatorID(ctx, projectID)
		if err != nil {
			return err
		}
		if creatorID == userID {
			return ErrCannotFavoriteOwn
		}

		favorited, err := tx.HasFavorite(ctx, userID, projectID)
		if err != nil {
			return err
		}
		if favorited {
			message = favoriteRemovedMessage
			return tx.RemoveFavorite(ctx, userID, projectID)
		}
		message = favoriteAddedMessage
		return tx.AddFavorite(ctx, &Favorite{ProfileID: userID, ProjectID: projectID})
	})
	if err != nil {
		return "", err
	}
	return message, nil
}

// UpdateDetails writes the fields present in patch.
func (s *Service) UpdateDetails(ctx context.Context, projectID string, patch ProjectPatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return ErrNameRequired
		}
		if len(name) > maxNameLength {
			return ErrNameTooLong
		}
		patch.Name = &name
	}
	if patch.Complexity != nil && !catalog.Complexities.Has(*patch.Complexity) {
		return ErrInvalidComplexity
	}
	if patch.Roles != nil {
		roles := normalizeList(*patch.Roles)
		patch.Roles = &roles
	}
	if patch.Technologies != nil {
		technologies := normalizeList(*patch.Technologies)
		patch.Technologies = &technologies
	}

	if patch.Empty() {
		if _, err := s.repo.GetProject(ctx, projectID); err != nil {
			return err
		}
		return nil
	}

	updated, err := s.repo.UpdateProject(ctx, projectID, patch)
	if err != nil {
		return err
	}
	if !updated {
		return ErrProjectNotFound
	}

	s.invalidateSearchCache(ctx)
	return nil
}

// Delete removes the project together with its collaborations, favorites
// and links.
func (s *Service) Delete(ctx context.Context, projectID string) error {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetProject(ctx, projectID); err != nil {
			return err
		}
		if err := tx.DeleteProjectCollaborations(ctx, projectID); err != nil {
			return err
		}
		if err := tx.DeleteProjectFavorites(ctx, projectID); err != nil {
			return err
		}
		if err := tx.DeleteProjectLinks(ctx, projectID); err != nil {
			return err
		}
		deleted, err := tx.DeleteProject(ctx, projectID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("project.delete: project deleted", "project_id", projectID)
	s.invalidateSearchCache(ctx)
	return nil
}

func (s *Service) AddLink(ctx context.Context, projectID string, input link.Input) (*link.AttachmentLink, error) {
	attachment, err := link.New(input)
	if err != nil {
		return nil, err
	}
	attachment.ProjectID = &projectID

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetProject(ctx, projectID); err != nil {
			return err
		}
		return tx.CreateLink(ctx, attachment)
	})
	if err != nil {
		return nil, err
	}
	return attachment, nil
}

func (s *Service) RemoveLink(ctx context.Context, projectID, linkID string) error {
	deleted, err := s.repo.DeleteLink(ctx, projectID, linkID)
	if err != nil {
		return err
	}
	if !deleted {
		return link.ErrLinkNotFound
	}
	return nil
}

// invalidateSearchCache drops every cached search result. It walks the key
// space with Scan until the cursor wraps to 0, then deletes the keys
// concurrently. A failed delete does not stop the others. Failures are
// logged; the mutation that triggered the invalidation has already been
// committed.
func (s *Service) invalidateSearchCache(ctx context.Context) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := s.cache.Scan(ctx, cursor, searchCachePattern, scanBatchSize)
		if err != nil {
			s.log.InternalError("project.invalidate: cache scan failed", err, "cursor", cursor)
			return
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if len(keys) == 0 {
		return
	}

	var (
		group  errgroup.Group
		failed atomic.Int64
	)
	group.SetLimit(invalidationWorkers)
	for _, key := range keys {
		group.Go(func() error {
			if err := s.cache.Delete(ctx, key); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		s.log.InternalError("project.invalidate: cache delete failed", err, "keys", len(keys), "failed", failed.Load())
		return
	}
	s.log.Debug("project.invalidate: search cache cleared", "keys", len(keys))
}

func personOf(member collaboration.Member) Person {
	return Person{ID: member.ProfileID, Name: member.Name, AvatarURL: member.AvatarURL}
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func normalizeList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
