package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionService handles question lifecycle logic
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// CreateQuestionInput represents input for creating a question.
// QuestionTypeID is taken as given; the request validation layer is
// responsible for rejecting malformed references.
type CreateQuestionInput struct {
	Question       string
	QuestionTypeID uint64
	Comments       bool
	Optional       bool
}

// UpdateQuestionInput represents a partial question patch
type UpdateQuestionInput struct {
	Question       *string
	QuestionTypeID *uint64
	Status         *models.EntityStatus
	Comments       *bool
	Optional       *bool
}

// CreateQuestion creates a new question
func (s *QuestionService) CreateQuestion(input CreateQuestionInput) (*models.Question, error) {
	question := &models.Question{
		Question:       input.Question,
		QuestionTypeID: input.QuestionTypeID,
		Status:         models.StatusActive,
		Comments:       input.Comments,
		Optional:       input.Optional,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return question, nil
}

// QueryQuestions returns a page of questions matching the filter
func (s *QuestionService) QueryQuestions(filter map[string]any, opts repository.PageOptions) (*repository.Page[models.Question], error) {
	page, err := s.questionRepo.List(filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return page, nil
}

// GetQuestion returns a question with its type loaded
func (s *QuestionService) GetQuestion(id uint64) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(id, "QuestionType")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}
	return question, nil
}

// UpdateQuestion merges the patch onto the stored question
func (s *QuestionService) UpdateQuestion(id uint64, input UpdateQuestionInput) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	if input.Question != nil {
		question.Question = *input.Question
	}
	if input.QuestionTypeID != nil {
		question.QuestionTypeID = *input.QuestionTypeID
	}
	if input.Status != nil {
		question.Status = *input.Status
	}
	if input.Comments != nil {
		question.Comments = *input.Comments
	}
	if input.Optional != nil {
		question.Optional = *input.Optional
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	return question, nil
}

// DeleteQuestion soft-deletes a question, or removes it and prunes
// template references when hard is set.
func (s *QuestionService) DeleteQuestion(id uint64, hard bool) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	if hard {
		if err := s.questionRepo.Delete(id); err != nil {
			return nil, fmt.Errorf("failed to delete question: %w", err)
		}
		return question, nil
	}

	question.Status = models.StatusInvalid
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to soft delete question: %w", err)
	}
	return question, nil
}
