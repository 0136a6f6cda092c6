package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrManagerNotFound   = errors.New("manager does not exist")
	ErrUserAlreadyInTeam = errors.New("user already exists in the team")
	ErrUserNotInTeam     = errors.New("user does not exist in the team")
)

// TeamService handles team lifecycle and membership logic
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	Name      string
	ManagerID uint64
}

// UpdateTeamInput represents a partial team patch
type UpdateTeamInput struct {
	Name      *string
	ManagerID *uint64
	Status    *models.EntityStatus
}

// CreateTeam creates a team after checking the manager reference resolves
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	if _, err := s.userRepo.FindByID(input.ManagerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to verify manager: %w", err)
	}

	team := &models.Team{
		Name:      input.Name,
		ManagerID: input.ManagerID,
		Status:    models.StatusActive,
		Version:   1,
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// QueryTeams returns a page of teams matching the filter
func (s *TeamService) QueryTeams(filter map[string]any, opts repository.PageOptions) (*repository.Page[models.Team], error) {
	page, err := s.teamRepo.List(filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return page, nil
}

// GetTeam returns a team with its member set loaded
func (s *TeamService) GetTeam(id uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id, "Members", "Members.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return team, nil
}

// UpdateTeam merges the patch onto the stored team
func (s *TeamService) UpdateTeam(id uint64, input UpdateTeamInput) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if input.ManagerID != nil {
		if _, err := s.userRepo.FindByID(*input.ManagerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrManagerNotFound
			}
			return nil, fmt.Errorf("failed to verify manager: %w", err)
		}
		team.ManagerID = *input.ManagerID
	}
	if input.Name != nil {
		team.Name = *input.Name
	}
	if input.Status != nil {
		team.Status = *input.Status
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return team, nil
}

// DeleteTeam soft-deletes a team, or removes it with its membership rows
// when hard is set. Soft-deleting an already Invalid team is a no-op.
func (s *TeamService) DeleteTeam(id uint64, hard bool) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if hard {
		if err := s.teamRepo.Delete(id); err != nil {
			return nil, fmt.Errorf("failed to delete team: %w", err)
		}
		return team, nil
	}

	team.Status = models.StatusInvalid
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to soft delete team: %w", err)
	}
	return team, nil
}

// AddUser adds a user to the team's member set. Both sides must exist
// and the user must not already be a member.
func (s *TeamService) AddUser(teamID, userID uint64) (*models.Team, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if _, err := s.teamRepo.FindMember(teamID, userID); err == nil {
		return nil, ErrUserAlreadyInTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	member := &models.TeamMember{
		TeamID: teamID,
		UserID: userID,
	}

	if err := s.teamRepo.AddMember(team, member); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add user to team: %w", err)
	}

	return s.GetTeam(teamID)
}

// RemoveUser removes a user from the team's member set by identifier
func (s *TeamService) RemoveUser(teamID, userID uint64) (*models.Team, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if _, err := s.teamRepo.FindMember(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotInTeam
		}
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	if err := s.teamRepo.RemoveMember(team, userID); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to remove user from team: %w", err)
	}

	return s.GetTeam(teamID)
}
