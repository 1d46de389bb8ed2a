// Package complaints implements the complaint lifecycle: student submission
// and the administrator-only status transition engine.
package complaints

import (
	"time"

	"hostelhub/backend/internal/apperr"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreateRequest carries the fields a student supplies when filing a
// complaint. Priority is optional and defaults to Medium.
type CreateRequest struct {
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=1000"`
	Category    models.Category `json:"category" validate:"required"`
	Priority    models.Priority `json:"priority"`
}

// Create files a new complaint for the acting student. The complaint starts
// Pending and snapshots the student's block and room.
func (s *Service) Create(req CreateRequest, actor models.Actor) (*models.Complaint, error) {
	if err := apperr.FromValidator(validate.Struct(req)); err != nil {
		return nil, err
	}
	if !req.Category.IsValid() {
		return nil, apperr.NewValidationError(apperr.FieldError{
			Field: "category", Message: "unknown category " + string(req.Category),
		})
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.IsValid() {
		return nil, apperr.NewValidationError(apperr.FieldError{
			Field: "priority", Message: "unknown priority " + string(req.Priority),
		})
	}

	allowed, err := s.Storage.AllowSubmission(actor.ID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperr.ErrTooManyComplaints
	}

	c := &models.Complaint{
		StudentID:   actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      models.StatusPending,
		HostelBlock: actor.HostelBlock,
		RoomNumber:  actor.RoomNumber,
	}
	if err := s.Storage.CreateComplaint(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateRequest carries an administrator's changes. Nil fields are left
// unchanged; category and description are never mutable here.
type UpdateRequest struct {
	Status      *models.Status   `json:"status"`
	Priority    *models.Priority `json:"priority"`
	AdminRemark *string          `json:"adminRemark"`
}

// Update applies a status/priority/remark change to one complaint.
//
// Any status may be set from any other — the portal deliberately has no
// transition table, so a resolved complaint can be reopened by simply
// setting it back to Pending or In Progress. Entering Resolved stamps
// ResolvedAt and the resolving administrator; leaving Resolved clears both.
func (s *Service) Update(id string, req UpdateRequest, actor models.Actor) (*models.Complaint, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrUnauthorized
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperr.NewValidationError(apperr.FieldError{
			Field: "status", Message: "unknown status " + string(*req.Status),
		})
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperr.NewValidationError(apperr.FieldError{
			Field: "priority", Message: "unknown priority " + string(*req.Priority),
		})
	}

	c, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != c.Status {
		switch {
		case *req.Status == models.StatusResolved:
			now := time.Now()
			c.ResolvedAt = &now
			resolver := actor.ID
			c.ResolvedByID = &resolver
		case c.Status == models.StatusResolved:
			c.ResolvedAt = nil
			c.ResolvedByID = nil
			c.ResolvedBy = nil
		}
		c.Status = *req.Status
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.AdminRemark != nil {
		c.AdminRemark = *req.AdminRemark
	}

	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a single complaint. Students may only read their own.
func (s *Service) Get(id string, actor models.Actor) (*models.Complaint, error) {
	c, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && c.StudentID != actor.ID {
		return nil, apperr.ErrUnauthorized
	}
	return c, nil
}

// ListMine returns the acting student's complaints, newest first.
func (s *Service) ListMine(actor models.Actor) ([]models.Complaint, error) {
	return s.Storage.ListComplaintsByStudent(actor.ID)
}

// List returns complaints for the administrator view, newest first.
func (s *Service) List(filter models.ComplaintFilter, actor models.Actor) ([]models.Complaint, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrUnauthorized
	}
	return s.Storage.ListComplaints(filter)
}
