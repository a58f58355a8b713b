package collaboration

import (
	"context"
	"errors"
	"time"

	domain "collabhive-go/internal/domain/collaboration"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("projects").
		Where("id = ?", projectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) GetCollaboration(ctx context.Context, projectID, profileID string) (*domain.Collaboration, error) {
	var collaboration domain.Collaboration
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND profile_id = ?", projectID, profileID).
		First(&collaboration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCollaborationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &collaboration, nil
}

func (r *PostgresRepository) CreateCollaboration(ctx context.Context, collaboration *domain.Collaboration) error {
	err := r.db.WithContext(ctx).Create(collaboration).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyRequested
	}
	return err
}

func (r *PostgresRepository) UpdateRelations(ctx context.Context, projectID string, profileIDs []string, relation domain.Relation) error {
	return r.db.WithContext(ctx).
		Model(&domain.Collaboration{}).
		Where("project_id = ? AND profile_id IN ? AND relation <> ?", projectID, profileIDs, domain.RelationCreator).
		Update("relation", relation).Error
}

func (r *PostgresRepository) DeleteCollaborations(ctx context.Context, projectID string, profileIDs []string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND profile_id IN ? AND relation <> ?", projectID, profileIDs, domain.RelationCreator).
		Delete(&domain.Collaboration{}).Error
}

func (r *PostgresRepository) HasRelation(ctx context.Context, projectID, profileID string, relation domain.Relation) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Collaboration{}).
		Where("project_id = ? AND profile_id = ? AND relation = ?", projectID, profileID, relation).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ListCreatorRequests(ctx context.Context, profileID string) ([]domain.CreatorRequests, error) {
	type requestRow struct {
		ProjectID        string `gorm:"column:project_id"`
		ProjectName      string `gorm:"column:project_name"`
		NumberOfRequests int64  `gorm:"column:number_of_requests"`
	}

	var rows []requestRow
	if err := r.db.WithContext(ctx).
		Table("collaborations AS owner").
		Select(`projects.id AS project_id, projects.name AS project_name,
			COUNT(pending.id) AS number_of_requests`).
		Joins("JOIN projects ON projects.id = owner.project_id").
		Joins("LEFT JOIN collaborations AS pending ON pending.project_id = owner.project_id AND pending.relation = ?", domain.RelationPending).
		Where("owner.profile_id = ? AND owner.relation = ?", profileID, domain.RelationCreator).
		Group("projects.id, projects.name, projects.updated_at").
		Order("projects.updated_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	requests := make([]domain.CreatorRequests, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, domain.CreatorRequests{
			ProjectID:        row.ProjectID,
			ProjectName:      row.ProjectName,
			NumberOfRequests: row.NumberOfRequests,
		})
	}
	return requests, nil
}

func (r *PostgresRepository) ListProjectCards(ctx context.Context, profileID string, relation domain.Relation, memberRelations []domain.Relation) ([]domain.ProjectCardRow, error) {
	type cardRow struct {
		ID           string                      `gorm:"column:id"`
		Name         string                      `gorm:"column:name"`
		IsOpen       bool                        `gorm:"column:is_open"`
		Technologies datatypes.JSONSlice[string] `gorm:"column:technologies"`
		UpdatedAt    time.Time                   `gorm:"column:updated_at"`
	}

	var rows []cardRow
	if err := r.db.WithContext(ctx).
		Table("projects").
		Select("projects.id, projects.name, projects.is_open, projects.technologies, projects.updated_at").
		Joins("JOIN collaborations ON collaborations.project_id = projects.id").
		Where("collaborations.profile_id = ? AND collaborations.relation = ?", profileID, relation).
		Order("projects.updated_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	members, err := ListMembers(ctx, r.db, ids, memberRelations)
	if err != nil {
		return nil, err
	}
	byProject := make(map[string][]domain.Member, len(rows))
	for _, member := range members {
		byProject[member.ProjectID] = append(byProject[member.ProjectID], member)
	}

	cards := make([]domain.ProjectCardRow, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, domain.ProjectCardRow{
			ProjectID:    row.ID,
			Name:         row.Name,
			IsOpen:       row.IsOpen,
			Technologies: row.Technologies,
			UpdatedAt:    row.UpdatedAt,
			Members:      byProject[row.ID],
		})
	}
	return cards, nil
}

// ListMembers loads collaboration rows for projectIDs joined with their
// profiles, oldest first. A nil relations slice loads every relation.
func ListMembers(ctx context.Context, db *gorm.DB, projectIDs []string, relations []domain.Relation) ([]domain.Member, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	type memberRow struct {
		ProjectID      string          `gorm:"column:project_id"`
		ProfileID      string          `gorm:"column:profile_id"`
		Name           string          `gorm:"column:name"`
		AvatarURL      *string         `gorm:"column:avatar_url"`
		Relation       domain.Relation `gorm:"column:relation"`
		RequestMessage *string         `gorm:"column:request_message"`
	}

	query := db.WithContext(ctx).
		Table("collaborations").
		Select(`collaborations.project_id, collaborations.profile_id, profiles.name,
			profiles.avatar_url, collaborations.relation, collaborations.request_message`).
		Joins("JOIN profiles ON profiles.id = collaborations.profile_id").
		Where("collaborations.project_id IN ?", projectIDs)
	if relations != nil {
		query = query.Where("collaborations.relation IN ?", relations)
	}

	var rows []memberRow
	if err := query.Order("collaborations.created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, domain.Member{
			ProjectID:      row.ProjectID,
			ProfileID:      row.ProfileID,
			Name:           row.Name,
			AvatarURL:      row.AvatarURL,
			Relation:       row.Relation,
			RequestMessage: row.RequestMessage,
		})
	}
	return members, nil
}
