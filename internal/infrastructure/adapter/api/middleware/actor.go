package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/neighborhood-escrow/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	// ActorHeader carries the authenticated user id set by the marketplace gateway
	ActorHeader = "X-User-ID"
	// ActorIDKey is the gin context key holding the acting user id
	ActorIDKey = "actor_id"
	// RequestIDHeader correlates a request across services
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"
)

// Actor requires the X-User-ID header. The reserved system actor cannot be
// claimed over HTTP.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actorID == "" || actorID == entity.SystemActor {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    errs.CodeInvalidRequest,
				Message: "Missing or invalid header: " + ActorHeader,
			})
			return
		}
		c.Set(ActorIDKey, actorID)
		c.Next()
	}
}

// ActorID returns the acting user id stored by Actor
func ActorID(c *gin.Context) string {
	return c.GetString(ActorIDKey)
}

// RequestID reuses the caller's X-Request-ID or issues a new one
func RequestID(ids coreport.IDGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = ids.NewID()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
