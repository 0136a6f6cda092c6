package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
)

var (
	ErrTemplateNotFound          = errors.New("template not found")
	ErrQuestionAlreadyInTemplate = errors.New("question already exists in the template")
	ErrQuestionNotInTemplate     = errors.New("question does not exist in the template")
)

// TemplateService handles template lifecycle and question-set logic
type TemplateService struct {
	templateRepo repository.TemplateRepository
	questionRepo repository.QuestionRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(templateRepo repository.TemplateRepository, questionRepo repository.QuestionRepository) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		questionRepo: questionRepo,
	}
}

// CreateTemplateInput represents input for creating a template
type CreateTemplateInput struct {
	Name string
}

// UpdateTemplateInput represents a partial template patch
type UpdateTemplateInput struct {
	Name   *string
	Status *models.EntityStatus
}

// CreateTemplate creates a new template with an empty question set
func (s *TemplateService) CreateTemplate(input CreateTemplateInput) (*models.Template, error) {
	template := &models.Template{
		Name:    input.Name,
		Status:  models.StatusActive,
		Version: 1,
	}

	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return template, nil
}

// QueryTemplates returns a page of templates matching the filter
func (s *TemplateService) QueryTemplates(filter map[string]any, opts repository.PageOptions) (*repository.Page[models.Template], error) {
	page, err := s.templateRepo.List(filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return page, nil
}

// GetTemplate returns a template with its question set loaded
func (s *TemplateService) GetTemplate(id uint64) (*models.Template, error) {
	template, err := s.templateRepo.FindByID(id, "Questions", "Questions.Question")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}
	return template, nil
}

// UpdateTemplate merges the patch onto the stored template
func (s *TemplateService) UpdateTemplate(id uint64, input UpdateTemplateInput) (*models.Template, error) {
	template, err := s.templateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.Status != nil {
		template.Status = *input.Status
	}

	if err := s.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return template, nil
}

// DeleteTemplate soft-deletes a template, or removes it with its question
// rows when hard is set.
func (s *TemplateService) DeleteTemplate(id uint64, hard bool) (*models.Template, error) {
	template, err := s.templateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	if hard {
		if err := s.templateRepo.Delete(id); err != nil {
			return nil, fmt.Errorf("failed to delete template: %w", err)
		}
		return template, nil
	}

	template.Status = models.StatusInvalid
	if err := s.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to soft delete template: %w", err)
	}
	return template, nil
}

// AddQuestion adds a question to the template's question set
func (s *TemplateService) AddQuestion(templateID, questionID uint64) (*models.Template, error) {
	template, err := s.templateRepo.FindByID(templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	if _, err := s.templateRepo.FindQuestion(templateID, questionID); err == nil {
		return nil, ErrQuestionAlreadyInTemplate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify question membership: %w", err)
	}

	entry := &models.TemplateQuestion{
		TemplateID: templateID,
		QuestionID: questionID,
	}

	if err := s.templateRepo.AddQuestion(template, entry); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add question to template: %w", err)
	}

	return s.GetTemplate(templateID)
}

// RemoveQuestion removes a question from the template's set by identifier
func (s *TemplateService) RemoveQuestion(templateID, questionID uint64) (*models.Template, error) {
	template, err := s.templateRepo.FindByID(templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	if _, err := s.templateRepo.FindQuestion(templateID, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotInTemplate
		}
		return nil, fmt.Errorf("failed to verify question membership: %w", err)
	}

	if err := s.templateRepo.RemoveQuestion(template, questionID); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to remove question from template: %w", err)
	}

	return s.GetTemplate(templateID)
}
