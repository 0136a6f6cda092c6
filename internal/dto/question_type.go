package dto

import (
	"encoding/json"
	"time"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

type QuestionTypeDTO struct {
	ID        uint64              `json:"id"`
	Name      string              `json:"name"`
	Status    models.EntityStatus `json:"status"`
	Values    json.RawMessage     `json:"values"`
	Units     string              `json:"units,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ToQuestionTypeDTO converts a question type model to its response shape
func ToQuestionTypeDTO(qt models.QuestionType) QuestionTypeDTO {
	return QuestionTypeDTO{
		ID:        qt.ID,
		Name:      qt.Name,
		Status:    qt.Status,
		Values:    json.RawMessage(qt.Values),
		Units:     qt.Units,
		CreatedAt: qt.CreatedAt,
		UpdatedAt: qt.UpdatedAt,
	}
}
