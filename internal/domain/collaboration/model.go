package collaboration

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Relation is the state of a profile on a project. The set is closed: Scan
// refuses anything else, so services only ever see these four values.
type Relation string

const (
	RelationCreator  Relation = "Creator"
	RelationPending  Relation = "CollaboratorPending"
	RelationAccepted Relation = "CollaboratorAccepted"
	RelationDeclined Relation = "CollaboratorDeclined"
)

func ParseRelation(value string) (Relation, error) {
	switch relation := Relation(value); relation {
	case RelationCreator, RelationPending, RelationAccepted, RelationDeclined:
		return relation, nil
	default:
		return "", fmt.Errorf("unknown relation %q", value)
	}
}

func (r *Relation) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan relation: unsupported type %T", value)
	}

	parsed, err := ParseRelation(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Relation) Value() (driver.Value, error) {
	if _, err := ParseRelation(string(r)); err != nil {
		return nil, err
	}
	return string(r), nil
}

type Collaboration struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	ProjectID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_collaborations_pair"`
	ProfileID      string    `gorm:"not null;uniqueIndex:idx_collaborations_pair;index"`
	Relation       Relation  `gorm:"type:varchar(32);not null"`
	RequestMessage *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// Member is a collaboration row joined with the profile it points at.
type Member struct {
	ProjectID      string
	ProfileID      string
	Name           string
	AvatarURL      *string
	Relation       Relation
	RequestMessage *string
}

type ManageInput struct {
	Accepted []string
	Declined []string
	Removed  []string
}

type CreatorRequests struct {
	ProjectID        string
	ProjectName      string
	NumberOfRequests int64
}

// ProjectCardRow is a project the profile is involved in, with the members
// needed to render its card.
type ProjectCardRow struct {
	ProjectID    string
	Name         string
	IsOpen       bool
	Technologies []string
	UpdatedAt    time.Time
	Members      []Member
}

type CreatorProjectCard struct {
	ID                  string
	Name                string
	TechnologyStackText string
	CollaboratorsText   string
	IsOpen              bool
}

type CollaboratorProjectCard struct {
	ID                  string
	Name                string
	TechnologyStackText string
	CreatorName         string
	CollaboratorsText   string
	IsOpen              bool
}
