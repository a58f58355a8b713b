package profile

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
	"collabhive-go/pkg/logger"
)

const (
	maxNameLength = 120
	maxBioLength  = 2000
)

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

// GetDetails assembles the profile page: the profile itself, its links,
// favorited projects and the projects it created or collaborates on.
func (s *Service) GetDetails(ctx context.Context, profileID string) (*Details, error) {
	profile, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	links, err := s.repo.ListLinks(ctx, profileID)
	if err != nil {
		return nil, err
	}
	favorites, err := s.repo.ListFavoriteCards(ctx, profileID)
	if err != nil {
		return nil, err
	}
	memberships, err := s.repo.ListMembershipCards(ctx, profileID, []collaboration.Relation{
		collaboration.RelationCreator,
		collaboration.RelationAccepted,
	})
	if err != nil {
		return nil, err
	}

	details := &Details{
		Profile:               *profile,
		Favorites:             favorites,
		CreatorProjects:       []ProjectCard{},
		CollaborationProjects: []ProjectCard{},
		Links:                 links,
	}
	if details.Favorites == nil {
		details.Favorites = []ProjectCard{}
	}
	if details.Links == nil {
		details.Links = []link.AttachmentLink{}
	}

	for _, membership := range memberships {
		switch membership.Relation {
		case collaboration.RelationCreator:
			card := membership.ProjectCard
			card.CreatorName = profile.Name
			card.CreatorAvatarURL = profile.AvatarURL
			details.CreatorProjects = append(details.CreatorProjects, card)
		case collaboration.RelationAccepted:
			details.CollaborationProjects = append(details.CollaborationProjects, membership.ProjectCard)
		}
	}

	return details, nil
}

func (s *Service) UpdateDetails(ctx context.Context, profileID string, patch ProfilePatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" || len(name) > maxNameLength {
			return ErrNameRequired
		}
		patch.Name = &name
	}
	if patch.Bio != nil {
		bio := strings.TrimSpace(*patch.Bio)
		if len(bio) > maxBioLength {
			return ErrBioTooLong
		}
		patch.Bio = &bio
	}
	if patch.AvatarURL.Set && patch.AvatarURL.Value != nil {
		avatar := strings.TrimSpace(*patch.AvatarURL.Value)
		if !isAbsoluteHTTPURL(avatar) {
			return ErrInvalidAvatarURL
		}
		patch.AvatarURL.Value = &avatar
	}

	if patch.Empty() {
		_, err := s.repo.GetProfile(ctx, profileID)
		return err
	}

	updated, err := s.repo.UpdateProfile(ctx, profileID, patch)
	if err != nil {
		return err
	}
	if !updated {
		return ErrProfileNotFound
	}
	s.log.Info("profile.update: saved", "profile_id", profileID)
	return nil
}

func (s *Service) AddLink(ctx context.Context, profileID string, input link.Input) (*link.AttachmentLink, error) {
	attachment, err := link.New(input)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}

	attachment.ProfileID = &profileID
	if err := s.repo.CreateLink(ctx, attachment); err != nil {
		return nil, err
	}
	s.log.Info("profile.link: added", "profile_id", profileID, "link_id", attachment.ID)
	return attachment, nil
}

func (s *Service) RemoveLink(ctx context.Context, profileID, linkID string) error {
	deleted, err := s.repo.DeleteLink(ctx, profileID, linkID)
	if err != nil {
		return err
	}
	if !deleted {
		return link.ErrLinkNotFound
	}
	return nil
}

// EnsureProfile creates a profile for an authenticated caller on first
// sight. Existing profiles are left untouched.
func (s *Service) EnsureProfile(ctx context.Context, identity Identity) error {
	if identity.ID == "" {
		return fmt.Errorf("profile id is required")
	}

	profile := Profile{
		ID:                 identity.ID,
		Name:               strings.TrimSpace(identity.Name),
		ActiveProjectSlots: 1,
	}
	if profile.Name == "" {
		profile.Name = nameFromEmail(identity.Email)
	}
	if identity.Email != "" {
		email := identity.Email
		profile.Email = &email
	}
	if identity.AvatarURL != "" {
		avatar := identity.AvatarURL
		profile.AvatarURL = &avatar
	}

	return s.repo.InsertProfileIfAbsent(ctx, &profile)
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func isAbsoluteHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Host != "" && (parsed.Scheme == "http" || parsed.Scheme == "https")
}
