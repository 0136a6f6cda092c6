package repository

import (
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// GormQuestionRepository is a GORM implementation of QuestionRepository
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &GormQuestionRepository{db: db}
}

// Create creates a new question
func (r *GormQuestionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

// FindByID finds a question by ID with optional preloading
func (r *GormQuestionRepository) FindByID(id uint64, preload ...string) (*models.Question, error) {
	var question models.Question
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// List retrieves questions with filtering and pagination
func (r *GormQuestionRepository) List(filter map[string]any, opts PageOptions) (*Page[models.Question], error) {
	return Paginate[models.Question](r.db, filter, opts)
}

// Update updates a question
func (r *GormQuestionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

// Delete hard-deletes a question and prunes template references to it
func (r *GormQuestionRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.TemplateQuestion{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Question{}, id).Error
	})
}
