package dto

import (
	"time"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// TeamDTO exposes a team with its member set as a list of user ids.
type TeamDTO struct {
	ID        uint64              `json:"id"`
	Name      string              `json:"name"`
	Manager   uint64              `json:"manager"`
	Users     []uint64            `json:"users"`
	Status    models.EntityStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ToTeamDTO converts a team model to its response shape
func ToTeamDTO(team models.Team) TeamDTO {
	users := make([]uint64, len(team.Members))
	for i, m := range team.Members {
		users[i] = m.UserID
	}

	return TeamDTO{
		ID:        team.ID,
		Name:      team.Name,
		Manager:   team.ManagerID,
		Users:     users,
		Status:    team.Status,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}
