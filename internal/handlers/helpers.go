package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error *apperrors.AppError `json:"error"`
}

// respondError writes err with the status of its taxonomy code. External
// failures are reported to Sentry; nothing else is.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Infof("[http] %s %s abandoned: %v", c.Request.Method, c.FullPath(), err)
		c.AbortWithStatusJSON(http.StatusRequestTimeout, ErrorResponse{Error: apperrors.BadRequest("request was cancelled")})
		return
	}
	ae := apperrors.From(err)
	switch ae.Code {
	case apperrors.CodeExternal:
		reportExternal(c, ae)
	case apperrors.CodeInternal:
		log.Errorf("[http] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(ae.HTTPStatus, ErrorResponse{Error: ae})
}

func reportExternal(c *gin.Context, ae *apperrors.AppError) {
	log.WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Errorf("[http] external service failure: %v", ae)

	hub := sentry.CurrentHub().Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("error_type", ae.Code)
		scope.SetExtra("path", c.FullPath())
		cause := ae.Err
		if cause == nil {
			cause = ae
		}
		hub.CaptureException(cause)
	})
}

// bindJSON decodes the body; a malformed body is a bad request.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, apperrors.BadRequest("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// NavigationResponse echoes where the client should go next.
type NavigationResponse struct {
	Next models.Destination `json:"next"`
	Data any                `json:"data,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status"`
}
