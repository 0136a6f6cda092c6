package repository

import (
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// GormQuestionTypeRepository is a GORM implementation of QuestionTypeRepository
type GormQuestionTypeRepository struct {
	db *gorm.DB
}

// NewQuestionTypeRepository creates a new QuestionTypeRepository
func NewQuestionTypeRepository(db *gorm.DB) QuestionTypeRepository {
	return &GormQuestionTypeRepository{db: db}
}

// Create creates a new question type
func (r *GormQuestionTypeRepository) Create(qt *models.QuestionType) error {
	return r.db.Create(qt).Error
}

// FindByID finds a question type by ID
func (r *GormQuestionTypeRepository) FindByID(id uint64) (*models.QuestionType, error) {
	var qt models.QuestionType
	if err := r.db.First(&qt, id).Error; err != nil {
		return nil, err
	}
	return &qt, nil
}

// List retrieves question types with filtering and pagination
func (r *GormQuestionTypeRepository) List(filter map[string]any, opts PageOptions) (*Page[models.QuestionType], error) {
	return Paginate[models.QuestionType](r.db, filter, opts)
}

// Update updates a question type. Values is written back wholly on every
// save, so in-place edits of the payload never go missing.
func (r *GormQuestionTypeRepository) Update(qt *models.QuestionType) error {
	return r.db.Save(qt).Error
}

// Delete hard-deletes a question type
func (r *GormQuestionTypeRepository) Delete(id uint64) error {
	return r.db.Delete(&models.QuestionType{}, id).Error
}
