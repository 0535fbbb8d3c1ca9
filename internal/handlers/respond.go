package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

// responder carries the logger the handler layer reports unexpected errors
// through. Handlers embed it so the whole layer shares one injected logger
// instead of reaching for the global.
type responder struct {
	logger *zap.SugaredLogger
}

func message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func badRequest(c *gin.Context, err error) {
	message(c, http.StatusBadRequest, "invalid request body: "+err.Error())
}

// fail converts a service error into the API's status convention:
// 400 business-rule/validation, 401 credentials, 403 role, 404 missing or
// not owned, 500 for anything unexpected (logged, generic body).
func (r responder) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		message(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountDisabled):
		message(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrCompanyExists),
		errors.Is(err, services.ErrNoCompany),
		errors.Is(err, services.ErrCompanyNotApproved),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidEngagement),
		errors.Is(err, services.ErrCommentRequired),
		errors.Is(err, services.ErrSlugTaken):
		message(c, http.StatusBadRequest, err.Error())
	default:
		r.logger.Errorw("unhandled error",
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "something went wrong",
			"error":   "internal server error",
		})
	}
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		message(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// intQuery reads a numeric query parameter, falling back when it is missing
// or not a number.
func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
