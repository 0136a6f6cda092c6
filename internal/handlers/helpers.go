package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yuzuhara/survey-admin-api/internal/errors"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
	"github.com/yuzuhara/survey-admin-api/internal/services"
)

// parseIDParam reads a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// parseHardDelete reads the hardDelete query flag; absent means soft.
func parseHardDelete(c *gin.Context) bool {
	hard, _ := strconv.ParseBool(c.DefaultQuery("hardDelete", "false"))
	return hard
}

// respondServiceError translates service-layer sentinel errors into the
// uniform API error body.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrQuestionTypeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrManagerNotFound),
		errors.Is(err, services.ErrUserAlreadyInTeam),
		errors.Is(err, services.ErrUserNotInTeam),
		errors.Is(err, services.ErrQuestionAlreadyInTemplate),
		errors.Is(err, services.ErrQuestionNotInTemplate),
		errors.Is(err, services.ErrEmailAlreadyTaken),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, repository.ErrInvalidSort):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		apierrors.Conflict(c, "Concurrent modification detected, retry the request")
	default:
		apierrors.InternalError(c, "")
	}
}
