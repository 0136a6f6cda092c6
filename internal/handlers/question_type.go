package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/yuzuhara/survey-admin-api/internal/dto"
	apierrors "github.com/yuzuhara/survey-admin-api/internal/errors"
	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/services"
	"github.com/yuzuhara/survey-admin-api/internal/utils"
)

// QuestionTypeHandler coordinates question type management HTTP handlers.
type QuestionTypeHandler struct {
	qtService *services.QuestionTypeService
}

// NewQuestionTypeHandler creates a new QuestionTypeHandler
func NewQuestionTypeHandler(qtService *services.QuestionTypeService) *QuestionTypeHandler {
	return &QuestionTypeHandler{qtService: qtService}
}

// CreateQuestionType creates a new question type
func (h *QuestionTypeHandler) CreateQuestionType(c *gin.Context) {
	type CreateQuestionTypeRequest struct {
		Name   string          `json:"name" binding:"required"`
		Values json.RawMessage `json:"values" binding:"required"`
		Units  string          `json:"units"`
	}

	var req CreateQuestionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	qt, err := h.qtService.CreateQuestionType(services.CreateQuestionTypeInput{
		Name:   req.Name,
		Values: datatypes.JSON(req.Values),
		Units:  req.Units,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuestionTypeDTO(*qt))
}

// ListQuestionTypes returns a filtered page of question types
func (h *QuestionTypeHandler) ListQuestionTypes(c *gin.Context) {
	filter := utils.CollectFilter(c, map[string]string{
		"name":   "name",
		"status": "status",
	})

	page, err := h.qtService.QueryQuestionTypes(filter, utils.GetPageOptions(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageDTO(page, dto.ToQuestionTypeDTO))
}

// GetQuestionType returns one question type by id
func (h *QuestionTypeHandler) GetQuestionType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	qt, err := h.qtService.GetQuestionType(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionTypeDTO(*qt))
}

// UpdateQuestionType applies a partial patch to a question type. A
// values payload in the patch replaces the stored one wholly.
func (h *QuestionTypeHandler) UpdateQuestionType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateQuestionTypeRequest struct {
		Name   *string              `json:"name"`
		Status *models.EntityStatus `json:"status"`
		Values json.RawMessage      `json:"values"`
		Units  *string              `json:"units"`
	}

	var req UpdateQuestionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	qt, err := h.qtService.UpdateQuestionType(id, services.UpdateQuestionTypeInput{
		Name:   req.Name,
		Status: req.Status,
		Values: datatypes.JSON(req.Values),
		Units:  req.Units,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionTypeDTO(*qt))
}

// DeleteQuestionType soft-deletes a question type, or hard-deletes with ?hardDelete=true
func (h *QuestionTypeHandler) DeleteQuestionType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	qt, err := h.qtService.DeleteQuestionType(id, parseHardDelete(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionTypeDTO(*qt))
}
