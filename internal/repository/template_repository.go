package repository

import (
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// GormTemplateRepository is a GORM implementation of TemplateRepository
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &GormTemplateRepository{db: db}
}

// Create creates a new template
func (r *GormTemplateRepository) Create(template *models.Template) error {
	return r.db.Create(template).Error
}

// FindByID finds a template by ID with optional preloading
func (r *GormTemplateRepository) FindByID(id uint64, preload ...string) (*models.Template, error) {
	var template models.Template
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// List retrieves templates with filtering and pagination
func (r *GormTemplateRepository) List(filter map[string]any, opts PageOptions) (*Page[models.Template], error) {
	return Paginate[models.Template](r.db, filter, opts)
}

// Update updates a template
func (r *GormTemplateRepository) Update(template *models.Template) error {
	return r.db.Save(template).Error
}

// Delete hard-deletes a template and all of its question rows
func (r *GormTemplateRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&models.TemplateQuestion{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Template{}, id).Error
	})
}

// AddQuestion inserts a question row under the template's version guard
func (r *GormTemplateRepository) AddQuestion(template *models.Template, entry *models.TemplateQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpVersion(tx, &models.Template{}, template.ID, template.Version); err != nil {
			return err
		}

		return tx.Create(entry).Error
	})
}

// RemoveQuestion deletes a question row under the template's version guard
func (r *GormTemplateRepository) RemoveQuestion(template *models.Template, questionID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpVersion(tx, &models.Template{}, template.ID, template.Version); err != nil {
			return err
		}

		return tx.Where("template_id = ? AND question_id = ?", template.ID, questionID).
			Delete(&models.TemplateQuestion{}).Error
	})
}

// FindQuestion finds a specific template question entry
func (r *GormTemplateRepository) FindQuestion(templateID, questionID uint64) (*models.TemplateQuestion, error) {
	var entry models.TemplateQuestion
	if err := r.db.Where("template_id = ? AND question_id = ?", templateID, questionID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListQuestions lists all questions of a template
func (r *GormTemplateRepository) ListQuestions(templateID uint64) ([]models.TemplateQuestion, error) {
	var entries []models.TemplateQuestion
	if err := r.db.Preload("Question").
		Where("template_id = ?", templateID).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
