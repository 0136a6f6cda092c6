package repository

import (
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a new team
func (r *GormTeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// FindByID finds a team by ID with optional preloading
func (r *GormTeamRepository) FindByID(id uint64, preload ...string) (*models.Team, error) {
	var team models.Team
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams with filtering and pagination
func (r *GormTeamRepository) List(filter map[string]any, opts PageOptions) (*Page[models.Team], error) {
	return Paginate[models.Team](r.db, filter, opts)
}

// Update updates a team
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete hard-deletes a team and all of its membership rows
func (r *GormTeamRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Team{}, id).Error
	})
}

// AddMember inserts a membership row under the team's version guard
func (r *GormTeamRepository) AddMember(team *models.Team, member *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpVersion(tx, &models.Team{}, team.ID, team.Version); err != nil {
			return err
		}

		return tx.Create(member).Error
	})
}

// RemoveMember deletes a membership row under the team's version guard
func (r *GormTeamRepository) RemoveMember(team *models.Team, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpVersion(tx, &models.Team{}, team.ID, team.Version); err != nil {
			return err
		}

		return tx.Where("team_id = ? AND user_id = ?", team.ID, userID).
			Delete(&models.TeamMember{}).Error
	})
}

// FindMember finds a specific team member
func (r *GormTeamRepository) FindMember(teamID, userID uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all members of a team
func (r *GormTeamRepository) ListMembers(teamID uint64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("User").
		Where("team_id = ?", teamID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// bumpVersion performs the compare-and-swap that linearizes reference-set
// writes per entity. A writer holding a stale version affects zero rows
// and gets ErrVersionConflict instead of clobbering the other write.
func bumpVersion(tx *gorm.DB, model any, id, version uint64) error {
	res := tx.Model(model).
		Where("id = ? AND version = ?", id, version).
		Update("version", version+1)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}
