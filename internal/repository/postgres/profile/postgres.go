package profile

import (
	"context"
	"errors"
	"time"

	collaborationdomain "collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
	domain "collabhive-go/internal/domain/profile"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cards pick the creator through a lateral join so projects whose creator
// row is missing still show up with an empty creator.
const creatorJoin = `LEFT JOIN LATERAL (
	SELECT profiles.name, profiles.avatar_url
	FROM collaborations AS owner
	JOIN profiles ON profiles.id = owner.profile_id
	WHERE owner.project_id = projects.id AND owner.relation = ?
	LIMIT 1
) AS creator ON TRUE`

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Where("id = ?", profileID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) InsertProfileIfAbsent(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(profile).Error
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, profileID string, patch domain.ProfilePatch) (bool, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.AvatarURL.Set {
		updates["avatar_url"] = patch.AvatarURL.Value
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Profile{}).
		Where("id = ?", profileID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type cardRow struct {
	ID               string                        `gorm:"column:id"`
	Name             string                        `gorm:"column:name"`
	CreatorName      *string                       `gorm:"column:creator_name"`
	CreatorAvatarURL *string                       `gorm:"column:creator_avatar_url"`
	UpdatedAt        time.Time                     `gorm:"column:updated_at"`
	IsOpen           bool                          `gorm:"column:is_open"`
	Relation         *collaborationdomain.Relation `gorm:"column:relation"`
}

func (row cardRow) card() domain.ProjectCard {
	card := domain.ProjectCard{
		ID:               row.ID,
		Name:             row.Name,
		CreatorAvatarURL: row.CreatorAvatarURL,
		UpdatedAt:        row.UpdatedAt,
		IsOpen:           row.IsOpen,
	}
	if row.CreatorName != nil {
		card.CreatorName = *row.CreatorName
	}
	return card
}

func (r *PostgresRepository) ListMembershipCards(ctx context.Context, profileID string, relations []collaborationdomain.Relation) ([]domain.MembershipCard, error) {
	if len(relations) == 0 {
		return nil, nil
	}

	var rows []cardRow
	if err := r.db.WithContext(ctx).
		Table("collaborations").
		Select(`projects.id, projects.name, creator.name AS creator_name,
			creator.avatar_url AS creator_avatar_url, projects.updated_at,
			projects.is_open, collaborations.relation`).
		Joins("JOIN projects ON projects.id = collaborations.project_id").
		Joins(creatorJoin, collaborationdomain.RelationCreator).
		Where("collaborations.profile_id = ? AND collaborations.relation IN ?", profileID, relations).
		Order("projects.updated_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	cards := make([]domain.MembershipCard, 0, len(rows))
	for _, row := range rows {
		if row.Relation == nil {
			continue
		}
		cards = append(cards, domain.MembershipCard{ProjectCard: row.card(), Relation: *row.Relation})
	}
	return cards, nil
}

func (r *PostgresRepository) ListFavoriteCards(ctx context.Context, profileID string) ([]domain.ProjectCard, error) {
	var rows []cardRow
	if err := r.db.WithContext(ctx).
		Table("favorites").
		Select(`projects.id, projects.name, creator.name AS creator_name,
			creator.avatar_url AS creator_avatar_url, projects.updated_at, projects.is_open`).
		Joins("JOIN projects ON projects.id = favorites.project_id").
		Joins(creatorJoin, collaborationdomain.RelationCreator).
		Where("favorites.profile_id = ?", profileID).
		Order("favorites.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	cards := make([]domain.ProjectCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, row.card())
	}
	return cards, nil
}

func (r *PostgresRepository) ListLinks(ctx context.Context, profileID string) ([]link.AttachmentLink, error) {
	var links []link.AttachmentLink
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PostgresRepository) CreateLink(ctx context.Context, attachment *link.AttachmentLink) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *PostgresRepository) DeleteLink(ctx context.Context, profileID, linkID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", linkID, profileID).
		Delete(&link.AttachmentLink{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
