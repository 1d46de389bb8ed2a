package handler

import (
	"net/http"

	"hostelhub/backend/internal/analytics"
	"hostelhub/backend/internal/apperr"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Leaderboard returns the staff and block leaderboards. Both are recomputed
// from the current store snapshot on every request.
// GET /api/leaderboard
func (h *Handler) Leaderboard(c *gin.Context) {
	if !actorFrom(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "administrator access required"})
		return
	}
	resolved, err := h.Storage.ListResolvedComplaints()
	if err != nil {
		respondError(c, err)
		return
	}
	all, err := h.Storage.ListComplaints(models.ComplaintFilter{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"staffLeaderboard": analytics.StaffLeaderboard(resolved),
		"blockLeaderboard": analytics.BlockLeaderboard(all),
	})
}

// Activity returns the merged recent-activity feed: the most recent
// complaints and announcements interleaved newest first.
// GET /api/activity
func (h *Handler) Activity(c *gin.Context) {
	if !actorFrom(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "administrator access required"})
		return
	}
	recentComplaints, err := h.Storage.ListRecentComplaints(config.RecentComplaints)
	if err != nil {
		respondError(c, err)
		return
	}
	recentAnns, err := h.Storage.ListRecentAnnouncements(config.RecentAnnouncements)
	if err != nil {
		respondError(c, err)
		return
	}
	feed := analytics.MergeActivity(recentComplaints, recentAnns, config.ActivityFeedLimit)
	c.JSON(http.StatusOK, gin.H{"activity": feed})
}

// ListStaff suggests administrators whose specialties cover a category.
// GET /api/staff?category=Plumbing
func (h *Handler) ListStaff(c *gin.Context) {
	if !actorFrom(c).IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "administrator access required"})
		return
	}
	cat := models.Category(c.Query("category"))
	if !cat.IsValid() {
		respondError(c, apperr.NewValidationError(apperr.FieldError{
			Field: "category", Message: "unknown category " + string(cat),
		}))
		return
	}
	staff, err := h.Storage.ListStaffBySpecialty(cat)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
