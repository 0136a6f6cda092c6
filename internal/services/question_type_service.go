package services

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
)

var ErrQuestionTypeNotFound = errors.New("question type not found")

// QuestionTypeService handles question type lifecycle logic
type QuestionTypeService struct {
	qtRepo repository.QuestionTypeRepository
}

// NewQuestionTypeService creates a new QuestionTypeService
func NewQuestionTypeService(qtRepo repository.QuestionTypeRepository) *QuestionTypeService {
	return &QuestionTypeService{qtRepo: qtRepo}
}

// CreateQuestionTypeInput represents input for creating a question type
type CreateQuestionTypeInput struct {
	Name   string
	Values datatypes.JSON
	Units  string
}

// UpdateQuestionTypeInput represents a partial question type patch.
// A non-nil Values replaces the stored payload wholly.
type UpdateQuestionTypeInput struct {
	Name   *string
	Status *models.EntityStatus
	Values datatypes.JSON
	Units  *string
}

// CreateQuestionType creates a new question type
func (s *QuestionTypeService) CreateQuestionType(input CreateQuestionTypeInput) (*models.QuestionType, error) {
	qt := &models.QuestionType{
		Name:   input.Name,
		Status: models.StatusActive,
		Values: input.Values,
		Units:  input.Units,
	}

	if err := s.qtRepo.Create(qt); err != nil {
		return nil, fmt.Errorf("failed to create question type: %w", err)
	}

	return qt, nil
}

// QueryQuestionTypes returns a page of question types matching the filter
func (s *QuestionTypeService) QueryQuestionTypes(filter map[string]any, opts repository.PageOptions) (*repository.Page[models.QuestionType], error) {
	page, err := s.qtRepo.List(filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list question types: %w", err)
	}
	return page, nil
}

// GetQuestionType returns a question type by ID
func (s *QuestionTypeService) GetQuestionType(id uint64) (*models.QuestionType, error) {
	qt, err := s.qtRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionTypeNotFound
		}
		return nil, fmt.Errorf("failed to find question type: %w", err)
	}
	return qt, nil
}

// UpdateQuestionType merges the patch onto the stored question type. The
// values payload is swapped out as a unit rather than edited in place, so
// there is no separate change-marking step.
func (s *QuestionTypeService) UpdateQuestionType(id uint64, input UpdateQuestionTypeInput) (*models.QuestionType, error) {
	qt, err := s.qtRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionTypeNotFound
		}
		return nil, fmt.Errorf("failed to find question type: %w", err)
	}

	if input.Name != nil {
		qt.Name = *input.Name
	}
	if input.Status != nil {
		qt.Status = *input.Status
	}
	if input.Values != nil {
		qt.Values = input.Values
	}
	if input.Units != nil {
		qt.Units = *input.Units
	}

	if err := s.qtRepo.Update(qt); err != nil {
		return nil, fmt.Errorf("failed to update question type: %w", err)
	}

	return qt, nil
}

// DeleteQuestionType soft-deletes a question type, or removes the row
// when hard is set.
func (s *QuestionTypeService) DeleteQuestionType(id uint64, hard bool) (*models.QuestionType, error) {
	qt, err := s.qtRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionTypeNotFound
		}
		return nil, fmt.Errorf("failed to find question type: %w", err)
	}

	if hard {
		if err := s.qtRepo.Delete(id); err != nil {
			return nil, fmt.Errorf("failed to delete question type: %w", err)
		}
		return qt, nil
	}

	qt.Status = models.StatusInvalid
	if err := s.qtRepo.Update(qt); err != nil {
		return nil, fmt.Errorf("failed to soft delete question type: %w", err)
	}
	return qt, nil
}
