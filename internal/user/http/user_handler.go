// Package http provides HTTP handlers for user directory operations.
package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hireassist/backend/internal/httputil"
	"github.com/hireassist/backend/internal/user/domain"
	"github.com/hireassist/backend/internal/user/http/dto"
	"github.com/hireassist/backend/internal/user/usecase"
)

// SessionTokenHeader carries the session token on authenticated requests.
// A bearer Authorization header is accepted as an alternative.
const SessionTokenHeader = "X-Session-Token"

// UserHandler handles HTTP requests for user directory operations.
type UserHandler struct {
	directory usecase.Directory
	logger    *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(directory usecase.Directory, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		directory: directory,
		logger:    logger,
	}
}

// RegisterHandler registers a new user.
// POST /api/users/register - Returns 201 Created with the session token.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	output, err := h.directory.Register(c.Request.Context(), usecase.RegisterInput{
		Profile:  req.Profile,
		Settings: req.Settings,
		Request:  requestContext(c),
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRegisterToResponse(output))
}

// GetProfileHandler retrieves a user with its decrypted profile.
// GET /api/users/profile/:userId - Returns 200 OK.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	record, err := h.directory.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(record))
}

// UpdateProfileHandler updates the supplied profile fields.
// PUT /api/users/profile/:userId - Returns 200 OK with the merged profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	record, err := h.directory.UpdateProfile(c.Request.Context(), c.Param("userId"), req.ToProfileInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(record))
}

// UpdateSettingsHandler updates the supplied settings options.
// PUT /api/users/settings/:userId - Returns 200 OK with the merged settings.
func (h *UserHandler) UpdateSettingsHandler(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	settings, err := h.directory.UpdateSettings(c.Request.Context(), c.Param("userId"), req.ToSettingsInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ValidateSessionHandler validates the session token against the user.
// GET /api/users/validate/:userId - Token via X-Session-Token or bearer
// Authorization header. Returns 200 OK or a generic 401.
func (h *UserHandler) ValidateSessionHandler(c *gin.Context) {
	token := extractToken(c)

	output, err := h.directory.ValidateSession(c.Request.Context(), token, c.Param("userId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidateSessionToResponse(output))
}

// DeleteUserHandler deletes a user and all of its sessions.
// DELETE /api/users/:userId - Returns 204 No Content.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.directory.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// StatsHandler reports directory usage counters.
// GET /api/users/stats - Returns 200 OK.
func (h *UserHandler) StatsHandler(c *gin.Context) {
	stats, err := h.directory.Stats(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapStatsToResponse(stats))
}

// extractToken pulls the session token from the request headers. An empty
// return falls through to token verification, which rejects it as malformed.
func extractToken(c *gin.Context) string {
	if token := c.GetHeader(SessionTokenHeader); token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// requestContext captures the client characteristics used for registration
// metadata and fingerprinting.
func requestContext(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		Language:  c.GetHeader("Accept-Language"),
	}
}
