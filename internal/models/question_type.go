package models

import (
	"time"

	"gorm.io/datatypes"
)

type QuestionType struct {
	ID     uint64       `gorm:"primarykey" json:"id"`
	Name   string       `gorm:"type:varchar(255);not null" json:"name"`
	Status EntityStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	// Values is the free-form answer schema. It is stored as an opaque
	// JSON blob and always replaced wholly on update, never mutated in
	// place, so no change-tracking workaround is needed.
	Values    datatypes.JSON `gorm:"not null" json:"values"`
	Units     string         `gorm:"type:varchar(100)" json:"units,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Relations
	Questions []Question `gorm:"foreignKey:QuestionTypeID" json:"-"`
}
