package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	collaborationdomain "collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
	domain "collabhive-go/internal/domain/project"
	collaborationrepo "collabhive-go/internal/repository/postgres/collaboration"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const favoriteCountExpr = "(SELECT COUNT(*) FROM favorites WHERE favorites.project_id = projects.id)"

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

func (r *PostgresRepository) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Project, error) {
	db := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("projects.is_open = ?", true)

	if len(query.Roles) > 0 {
		condition, args, err := containsAny("projects.roles_open", query.Roles)
		if err != nil {
			return nil, err
		}
		db = db.Where(condition, args...)
	}
	if len(query.Technologies) > 0 {
		condition, args, err := containsAny("projects.technologies", query.Technologies)
		if err != nil {
			return nil, err
		}
		db = db.Where(condition, args...)
	}
	if len(query.Complexities) > 0 {
		db = db.Where("projects.complexity IN ?", query.Complexities)
	}

	switch query.Order {
	case domain.SortCreatedDesc:
		db = db.Order("projects.created_at DESC")
	case domain.SortCreatedAsc:
		db = db.Order("projects.created_at ASC")
	case domain.SortFavoritesDesc:
		db = db.Order(favoriteCountExpr + " DESC").Order("projects.created_at DESC")
	}
	// id keeps pages stable when the requested order has ties.
	db = db.Order("projects.id")

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	var projects []domain.Project
	if err := db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// containsAny matches rows whose jsonb array column holds at least one of
// values. Each value becomes its own containment test so the GIN index on
// the column can serve it.
func containsAny(column string, values []string) (string, []any, error) {
	conditions := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, value := range values {
		raw, err := json.Marshal([]string{value})
		if err != nil {
			return "", nil, fmt.Errorf("encode %s filter: %w", column, err)
		}
		conditions = append(conditions, column+" @> ?::jsonb")
		args = append(args, string(raw))
	}
	return "(" + strings.Join(conditions, " OR ") + ")", args, nil
}

func (r *PostgresRepository) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).Where("id = ?", projectID).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *PostgresRepository) CreateProject(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *PostgresRepository) UpdateProject(ctx context.Context, projectID string, patch domain.ProjectPatch) (bool, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.IsOpen != nil {
		updates["is_open"] = *patch.IsOpen
	}
	if patch.Complexity != nil {
		updates["complexity"] = *patch.Complexity
	}
	if patch.Roles != nil {
		updates["roles_open"] = datatypes.JSONSlice[string](*patch.Roles)
	}
	if patch.Technologies != nil {
		updates["technologies"] = datatypes.JSONSlice[string](*patch.Technologies)
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", projectID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, projectID string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", projectID).Delete(&domain.Project{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeleteProjectCollaborations(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&collaborationdomain.Collaboration{}).Error
}

func (r *PostgresRepository) DeleteProjectFavorites(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&domain.Favorite{}).Error
}

func (r *PostgresRepository) DeleteProjectLinks(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&link.AttachmentLink{}).Error
}

func (r *PostgresRepository) CreateCollaboration(ctx context.Context, collaboration *collaborationdomain.Collaboration) error {
	return r.db.WithContext(ctx).Create(collaboration).Error
}

func (r *PostgresRepository) ListMembers(ctx context.Context, projectIDs []string, relations []collaborationdomain.Relation) ([]collaborationdomain.Member, error) {
	return collaborationrepo.ListMembers(ctx, r.db, projectIDs, relations)
}

func (r *PostgresRepository) GetCreatorID(ctx context.Context, projectID string) (string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&collaborationdomain.Collaboration{}).
		Where("project_id = ? AND relation = ?", projectID, collaborationdomain.RelationCreator).
		Limit(1).
		Pluck("profile_id", &ids).Error; err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

func (r *PostgresRepository) CountFavorites(ctx context.Context, projectIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(projectIDs))
	if len(projectIDs) == 0 {
		return counts, nil
	}

	type countRow struct {
		ProjectID string `gorm:"column:project_id"`
		Count     int64  `gorm:"column:count"`
	}

	var rows []countRow
	if err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Select("project_id, COUNT(*) AS count").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ProjectID] = row.Count
	}
	return counts, nil
}

func (r *PostgresRepository) ListFavoriteProfileIDs(ctx context.Context, projectID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("project_id = ?", projectID).
		Pluck("profile_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) HasFavorite(ctx context.Context, profileID, projectID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("profile_id = ? AND project_id = ?", profileID, projectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) AddFavorite(ctx context.Context, favorite *domain.Favorite) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error
}

func (r *PostgresRepository) RemoveFavorite(ctx context.Context, profileID, projectID string) error {
	return r.db.WithContext(ctx).
		Where("profile_id = ? AND project_id = ?", profileID, projectID).
		Delete(&domain.Favorite{}).Error
}

func (r *PostgresRepository) ListLinks(ctx context.Context, projectID string) ([]link.AttachmentLink, error) {
	var links []link.AttachmentLink
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PostgresRepository) CreateLink(ctx context.Context, attachment *link.AttachmentLink) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *PostgresRepository) DeleteLink(ctx context.Context, projectID, linkID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", linkID, projectID).
		Delete(&link.AttachmentLink{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
