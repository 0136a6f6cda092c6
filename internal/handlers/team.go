package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuzuhara/survey-admin-api/internal/dto"
	apierrors "github.com/yuzuhara/survey-admin-api/internal/errors"
	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/services"
	"github.com/yuzuhara/survey-admin-api/internal/utils"
)

// TeamHandler coordinates team management HTTP handlers.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam creates a new team
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	type CreateTeamRequest struct {
		Name    string `json:"name" binding:"required"`
		Manager uint64 `json:"manager" binding:"required"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		Name:      req.Name,
		ManagerID: req.Manager,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// ListTeams returns a filtered page of teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	filter := utils.CollectFilter(c, map[string]string{
		"name":    "name",
		"manager": "manager_id",
		"status":  "status",
	})

	page, err := h.teamService.QueryTeams(filter, utils.GetPageOptions(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageDTO(page, dto.ToTeamDTO))
}

// GetTeam returns one team with its member set
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// UpdateTeam applies a partial patch to a team
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateTeamRequest struct {
		Name    *string              `json:"name"`
		Manager *uint64              `json:"manager"`
		Status  *models.EntityStatus `json:"status"`
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.UpdateTeam(id, services.UpdateTeamInput{
		Name:      req.Name,
		ManagerID: req.Manager,
		Status:    req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// DeleteTeam soft-deletes a team, or hard-deletes with ?hardDelete=true
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.DeleteTeam(id, parseHardDelete(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// AddUser adds a user to the team's member set
func (h *TeamHandler) AddUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type MemberRequest struct {
		User uint64 `json:"user" binding:"required"`
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.AddUser(id, req.User)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// RemoveUser removes a user from the team's member set
func (h *TeamHandler) RemoveUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type MemberRequest struct {
		User uint64 `json:"user" binding:"required"`
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.RemoveUser(id, req.User)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}
