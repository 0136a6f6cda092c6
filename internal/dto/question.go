package dto

import (
	"time"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

type QuestionDTO struct {
	ID           uint64              `json:"id"`
	Question     string              `json:"question"`
	QuestionType uint64              `json:"questionType"`
	Status       models.EntityStatus `json:"status"`
	Comments     bool                `json:"comments"`
	Optional     bool                `json:"optional"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToQuestionDTO converts a question model to its response shape
func ToQuestionDTO(question models.Question) QuestionDTO {
	return QuestionDTO{
		ID:           question.ID,
		Question:     question.Question,
		QuestionType: question.QuestionTypeID,
		Status:       question.Status,
		Comments:     question.Comments,
		Optional:     question.Optional,
		CreatedAt:    question.CreatedAt,
		UpdatedAt:    question.UpdatedAt,
	}
}
