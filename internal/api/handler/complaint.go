package handler

import (
	"net/http"
	"strconv"

	"hostelhub/backend/internal/analytics"
	"hostelhub/backend/internal/apperr"
	"hostelhub/backend/internal/complaints"
	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateComplaint files a new complaint for the authenticated student.
// POST /api/complaints
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req complaints.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	created, err := h.Complaints.Create(req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"complaint": created})
}

// MyComplaints lists the authenticated student's complaints.
// GET /api/complaints/my
func (h *Handler) MyComplaints(c *gin.Context) {
	list, err := h.Complaints.ListMine(actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list})
}

// ListComplaints is the filterable administrator listing.
// GET /api/complaints?category=&status=&priority=&limit=
func (h *Handler) ListComplaints(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	list, err := h.Complaints.List(filter, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list})
}

// GetComplaint returns one complaint to its owner or an administrator.
// GET /api/complaints/:id
func (h *Handler) GetComplaint(c *gin.Context) {
	complaint, err := h.Complaints.Get(c.Param("id"), actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": complaint})
}

// UpdateComplaint applies an administrator's status/priority/remark change.
// PUT /api/complaints/:id
func (h *Handler) UpdateComplaint(c *gin.Context) {
	var req complaints.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	updated, err := h.Complaints.Update(c.Param("id"), req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": updated})
}

// ComplaintStats aggregates complaint statistics. Students get their own
// complaints; administrators get the whole system unless ?scope=my.
// GET /api/complaints/stats
func (h *Handler) ComplaintStats(c *gin.Context) {
	actor := actorFrom(c)
	var (
		list []models.Complaint
		err  error
	)
	if actor.IsAdmin() && c.Query("scope") != "my" {
		list, err = h.Storage.ListComplaints(models.ComplaintFilter{})
	} else {
		list, err = h.Storage.ListComplaintsByStudent(actor.ID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": analytics.Aggregate(list)})
}

func parseFilter(c *gin.Context) (models.ComplaintFilter, error) {
	var filter models.ComplaintFilter
	if v := c.Query("category"); v != "" {
		cat := models.Category(v)
		if !cat.IsValid() {
			return filter, apperr.NewValidationError(apperr.FieldError{
				Field: "category", Message: "unknown category " + v,
			})
		}
		filter.Category = &cat
	}
	if v := c.Query("status"); v != "" {
		st := models.Status(v)
		if !st.IsValid() {
			return filter, apperr.NewValidationError(apperr.FieldError{
				Field: "status", Message: "unknown status " + v,
			})
		}
		filter.Status = &st
	}
	if v := c.Query("priority"); v != "" {
		pr := models.Priority(v)
		if !pr.IsValid() {
			return filter, apperr.NewValidationError(apperr.FieldError{
				Field: "priority", Message: "unknown priority " + v,
			})
		}
		filter.Priority = &pr
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, apperr.NewValidationError(apperr.FieldError{
				Field: "limit", Message: "must be a non-negative integer",
			})
		}
		filter.Limit = n
	}
	return filter, nil
}
