package handler

import (
	"errors"
	"log"
	"net/http"

	"hostelhub/backend/internal/announcements"
	"hostelhub/backend/internal/apperr"
	"hostelhub/backend/internal/complaints"
	"hostelhub/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler holds the services behind the HTTP API.
type Handler struct {
	Storage       storage.Storage
	Complaints    *complaints.Service
	Announcements *announcements.Service
}

func NewHandler(s storage.Storage) *Handler {
	return &Handler{
		Storage:       s,
		Complaints:    complaints.NewService(s),
		Announcements: announcements.NewService(s),
	}
}

// respondError maps the engine error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error(), "fields": ve.Fields})
		return
	}
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"message": "administrator access required"})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
	case errors.Is(err, apperr.ErrTooManyComplaints):
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many complaints submitted, try again later"})
	case errors.Is(err, apperr.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "service temporarily unavailable"})
	default:
		log.Printf("ERROR: unhandled API error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
