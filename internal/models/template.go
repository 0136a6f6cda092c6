package models

import "time"

type Template struct {
	ID     uint64       `gorm:"primarykey" json:"id"`
	Name   string       `gorm:"type:varchar(255);not null" json:"name"`
	Status EntityStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	// Version guards question-set writes, same contract as Team.Version.
	Version   uint64    `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Questions []TemplateQuestion `gorm:"foreignKey:TemplateID" json:"questions,omitempty"`
}
