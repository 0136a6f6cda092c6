package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Status       EntityStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	Memberships  []TeamMember `gorm:"foreignKey:UserID" json:"-"`
	ManagedTeams []Team       `gorm:"foreignKey:ManagerID" json:"-"`
}
