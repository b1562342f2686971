package handler

import (
	"errors"

	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

type logFielder interface {
	LogFields() map[string]any
}

// errorResponse builds the API error body for a domain error. Internal
// details never reach the client.
func errorResponse(err error) (int, dto.ErrorResponse) {
	status := errs.HTTPStatus(err)
	resp := dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: err.Error(),
	}
	if resp.Code == errs.CodeInternalServer {
		resp.Message = "Internal server error"
	}

	var transitionErr *errs.TransitionError
	if errors.As(err, &transitionErr) {
		resp.Status = transitionErr.Status
	}
	var authErr *errs.AuthorizationError
	if errors.As(err, &authErr) {
		resp.RequiredRole = authErr.RequiredRole
	}
	return status, resp
}

// respondError logs err and writes its API error body
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status, resp := errorResponse(err)
	writeError(c, logger, err, status, resp)
}

// respondPartial writes a payout failure together with the record it left behind
func respondPartial(c *gin.Context, logger coreport.Logger, err error, recordStatus string, resource any) {
	status, resp := errorResponse(err)
	resp.Status = recordStatus
	resp.Resource = resource
	writeError(c, logger, err, status, resp)
}

func writeError(c *gin.Context, logger coreport.Logger, err error, status int, resp dto.ErrorResponse) {
	fields := map[string]any{
		"path":       c.FullPath(),
		"actor_id":   middleware.ActorID(c),
		"request_id": c.GetString(middleware.RequestIDKey),
		"error":      err.Error(),
		"error_code": resp.Code,
	}
	var detailed logFielder
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}

	if status >= 500 {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, resp)
}

// respondBindError answers a malformed request body
func respondBindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":  c.FullPath(),
		"error": err.Error(),
	})
	c.JSON(errs.HTTPStatus(errs.ErrInvalidRequest), dto.ErrorResponse{
		Code:    errs.CodeInvalidRequest,
		Message: "Invalid request format: " + err.Error(),
	})
}
