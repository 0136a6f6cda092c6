package models

import "time"

// TemplateQuestion is one entry of a template's question reference set,
// unique per (template, question) via the composite primary key.
type TemplateQuestion struct {
	TemplateID uint64    `gorm:"primarykey" json:"template_id"`
	QuestionID uint64    `gorm:"primarykey" json:"question_id"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Relations
	Template Template `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
	Question Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
