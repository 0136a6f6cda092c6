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

// TemplateHandler coordinates template management HTTP handlers.
type TemplateHandler struct {
	templateService *services.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// CreateTemplate creates a new template
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	type CreateTemplateRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.CreateTemplate(services.CreateTemplateInput{
		Name: req.Name,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateDTO(*template))
}

// ListTemplates returns a filtered page of templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	filter := utils.CollectFilter(c, map[string]string{
		"name":   "name",
		"status": "status",
	})

	page, err := h.templateService.QueryTemplates(filter, utils.GetPageOptions(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageDTO(page, dto.ToTemplateDTO))
}

// GetTemplate returns one template with its question set
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplate(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDTO(*template))
}

// UpdateTemplate applies a partial patch to a template
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateTemplateRequest struct {
		Name   *string              `json:"name"`
		Status *models.EntityStatus `json:"status"`
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.UpdateTemplate(id, services.UpdateTemplateInput{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDTO(*template))
}

// DeleteTemplate soft-deletes a template, or hard-deletes with ?hardDelete=true
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, err := h.templateService.DeleteTemplate(id, parseHardDelete(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDTO(*template))
}

// AddQuestion adds a question to the template's question set
func (h *TemplateHandler) AddQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type QuestionRequest struct {
		Question uint64 `json:"question" binding:"required"`
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.AddQuestion(id, req.Question)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDTO(*template))
}

// RemoveQuestion removes a question from the template's question set
func (h *TemplateHandler) RemoveQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type QuestionRequest struct {
		Question uint64 `json:"question" binding:"required"`
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.RemoveQuestion(id, req.Question)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateDTO(*template))
}
