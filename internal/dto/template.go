package dto

import (
	"time"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// TemplateDTO exposes a template with its question set as a list of
// question ids.
type TemplateDTO struct {
	ID        uint64              `json:"id"`
	Name      string              `json:"name"`
	Questions []uint64            `json:"questions"`
	Status    models.EntityStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ToTemplateDTO converts a template model to its response shape
func ToTemplateDTO(template models.Template) TemplateDTO {
	questions := make([]uint64, len(template.Questions))
	for i, q := range template.Questions {
		questions[i] = q.QuestionID
	}

	return TemplateDTO{
		ID:        template.ID,
		Name:      template.Name,
		Questions: questions,
		Status:    template.Status,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}
