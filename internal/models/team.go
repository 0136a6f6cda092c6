package models

import "time"

type Team struct {
	ID        uint64       `gorm:"primarykey" json:"id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	ManagerID uint64       `gorm:"not null" json:"manager_id"`
	Status    EntityStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	// Version guards membership writes: every mutation of the member set
	// bumps it with a compare-and-swap, so concurrent writers cannot both
	// pass the duplicate check and silently clobber each other.
	Version   uint64    `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Manager User         `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}
