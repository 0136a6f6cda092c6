package models

import "time"

type Question struct {
	ID             uint64       `gorm:"primarykey" json:"id"`
	Question       string       `gorm:"type:text;not null" json:"question"`
	QuestionTypeID uint64       `gorm:"not null" json:"question_type_id"`
	Status         EntityStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Comments       bool         `gorm:"not null;default:false" json:"comments"`
	Optional       bool         `gorm:"not null;default:false" json:"optional"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Relations
	QuestionType QuestionType `gorm:"foreignKey:QuestionTypeID" json:"question_type,omitempty"`
}
