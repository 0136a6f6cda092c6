package repository

import (
	"errors"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// ErrVersionConflict is returned when a version-guarded write loses the
// race against a concurrent writer. Callers may retry the whole
// read-modify-write sequence.
var ErrVersionConflict = errors.New("repository: entity version conflict")

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	List(filter map[string]any, opts PageOptions) (*Page[models.User], error)
	Update(user *models.User) error

	// Delete hard-deletes a user and prunes their team memberships.
	Delete(id uint64) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(team *models.Team) error

	// FindByID finds a team by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Team, error)
	List(filter map[string]any, opts PageOptions) (*Page[models.Team], error)
	Update(team *models.Team) error

	// Delete hard-deletes a team together with its membership rows.
	Delete(id uint64) error

	// AddMember inserts a membership row and bumps the team's version in
	// one transaction. Returns ErrVersionConflict on a lost race.
	AddMember(team *models.Team, member *models.TeamMember) error

	// RemoveMember deletes a membership row under the same version guard.
	RemoveMember(team *models.Team, userID uint64) error

	FindMember(teamID, userID uint64) (*models.TeamMember, error)
	ListMembers(teamID uint64) ([]models.TeamMember, error)
}

// TemplateRepository defines the interface for template data access
type TemplateRepository interface {
	Create(template *models.Template) error
	FindByID(id uint64, preload ...string) (*models.Template, error)
	List(filter map[string]any, opts PageOptions) (*Page[models.Template], error)
	Update(template *models.Template) error

	// Delete hard-deletes a template together with its question rows.
	Delete(id uint64) error

	// AddQuestion and RemoveQuestion mutate the question set under the
	// template's version guard, same contract as TeamRepository.
	AddQuestion(template *models.Template, entry *models.TemplateQuestion) error
	RemoveQuestion(template *models.Template, questionID uint64) error

	FindQuestion(templateID, questionID uint64) (*models.TemplateQuestion, error)
	ListQuestions(templateID uint64) ([]models.TemplateQuestion, error)
}

// QuestionRepository defines the interface for question data access
type QuestionRepository interface {
	Create(question *models.Question) error
	FindByID(id uint64, preload ...string) (*models.Question, error)
	List(filter map[string]any, opts PageOptions) (*Page[models.Question], error)
	Update(question *models.Question) error

	// Delete hard-deletes a question and prunes template references to it.
	Delete(id uint64) error
}

// QuestionTypeRepository defines the interface for question type data access
type QuestionTypeRepository interface {
	Create(qt *models.QuestionType) error
	FindByID(id uint64) (*models.QuestionType, error)
	List(filter map[string]any, opts PageOptions) (*Page[models.QuestionType], error)
	Update(qt *models.QuestionType) error
	Delete(id uint64) error
}
