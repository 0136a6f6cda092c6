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

// QuestionHandler coordinates question management HTTP handlers.
type QuestionHandler struct {
	questionService *services.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// CreateQuestion creates a new question
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	type CreateQuestionRequest struct {
		Question     string `json:"question" binding:"required"`
		QuestionType uint64 `json:"questionType" binding:"required"`
		Comments     bool   `json:"comments"`
		Optional     bool   `json:"optional"`
	}

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	question, err := h.questionService.CreateQuestion(services.CreateQuestionInput{
		Question:       req.Question,
		QuestionTypeID: req.QuestionType,
		Comments:       req.Comments,
		Optional:       req.Optional,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuestionDTO(*question))
}

// ListQuestions returns a filtered page of questions
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	filter := utils.CollectFilter(c, map[string]string{
		"question":     "question",
		"questionType": "question_type_id",
		"status":       "status",
	})

	page, err := h.questionService.QueryQuestions(filter, utils.GetPageOptions(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageDTO(page, dto.ToQuestionDTO))
}

// GetQuestion returns one question by id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.GetQuestion(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTO(*question))
}

// UpdateQuestion applies a partial patch to a question
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateQuestionRequest struct {
		Question     *string              `json:"question"`
		QuestionType *uint64              `json:"questionType"`
		Status       *models.EntityStatus `json:"status"`
		Comments     *bool                `json:"comments"`
		Optional     *bool                `json:"optional"`
	}

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	question, err := h.questionService.UpdateQuestion(id, services.UpdateQuestionInput{
		Question:       req.Question,
		QuestionTypeID: req.QuestionType,
		Status:         req.Status,
		Comments:       req.Comments,
		Optional:       req.Optional,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTO(*question))
}

// DeleteQuestion soft-deletes a question, or hard-deletes with ?hardDelete=true
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.DeleteQuestion(id, parseHardDelete(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDTO(*question))
}
