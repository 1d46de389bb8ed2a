package handler

import (
	"log"
	"net/http"

	"hostelhub/backend/internal/announcements"

	"github.com/gin-gonic/gin"
)

// StudentAnnouncements lists the announcements visible to the viewer.
// The dashboard widget is non-critical, so a store failure degrades to an
// empty list instead of an error page.
// GET /api/announcements
func (h *Handler) StudentAnnouncements(c *gin.Context) {
	views, err := h.Announcements.ListFor(actorFrom(c))
	if err != nil {
		log.Printf("ERROR: loading announcements: %v", err)
		views = []announcements.View{}
	}
	c.JSON(http.StatusOK, gin.H{"announcements": views})
}

// AllAnnouncements lists every announcement for administrators, expired
// ones flagged.
// GET /api/announcements/all
func (h *Handler) AllAnnouncements(c *gin.Context) {
	actor := actorFrom(c)
	if !actor.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "administrator access required"})
		return
	}
	views, err := h.Announcements.ListFor(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": views})
}

// CreateAnnouncement publishes a new notice.
// POST /api/announcements
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req announcements.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	created, err := h.Announcements.Create(req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"announcement": created})
}

// UpdateAnnouncement replaces the editable fields of a notice.
// PUT /api/announcements/:id
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	var req announcements.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	updated, err := h.Announcements.Update(c.Param("id"), req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcement": updated})
}

// DeleteAnnouncement removes a notice.
// DELETE /api/announcements/:id
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	if err := h.Announcements.Delete(c.Param("id"), actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "announcement deleted"})
}
