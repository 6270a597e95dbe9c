package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobtrackr/internal/dtos"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"github.com/justsurfingit/jobtrackr/internal/services"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	StatsService       *services.StatsService
	Log                *zap.Logger
}

// NewApplicationHandler creates the handler with dependencies
func NewApplicationHandler(a *services.ApplicationService, s *services.StatsService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
		StatsService:       s,
		Log:                log,
	}
}

// HealthCheck is the GET /health endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CreateApplication is the POST /applications endpoint
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	app, err := h.ApplicationService.CreateApplication(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "Failed to create application", err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewApplicationResponse(app))
}

// ListApplications is the GET /applications endpoint
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var q dtos.ApplicationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}
	items, total, err := h.ApplicationService.ListApplications(c.Request.Context(), &q)
	if err != nil {
		h.fail(c, "Failed to list applications", err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewApplicationListResponse(items, total))
}

// UpdateStatus is the PATCH /applications/:id endpoint
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var uri dtos.ApplicationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		validationError(c, err)
		return
	}
	var req dtos.ApplicationStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	app, err := h.ApplicationService.UpdateStatus(c.Request.Context(), uri.ID, models.Status(req.Status))
	if err != nil {
		h.fail(c, "Failed to update application", err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewApplicationResponse(app))
}

// DeleteApplication is the DELETE /applications/:id endpoint; it soft-deletes.
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	var uri dtos.ApplicationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		validationError(c, err)
		return
	}
	app, err := h.ApplicationService.SoftDelete(c.Request.Context(), uri.ID)
	if err != nil {
		h.fail(c, "Failed to delete application", err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewApplicationResponse(app))
}

// RestoreApplication is the POST /applications/:id/restore endpoint
func (h *ApplicationHandler) RestoreApplication(c *gin.Context) {
	var uri dtos.ApplicationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		validationError(c, err)
		return
	}
	app, err := h.ApplicationService.Restore(c.Request.Context(), uri.ID)
	if err != nil {
		h.fail(c, "Failed to restore application", err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewApplicationResponse(app))
}

// Stats is the GET /stats endpoint
func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.StatsService.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to compute stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request: " + err.Error()})
}

// fail maps service errors to status codes. Anything unrecognised is a store
// failure and gets logged.
func (h *ApplicationHandler) fail(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNotFound.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidState.Error()})
	default:
		h.Log.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg + ": " + err.Error()})
	}
}
