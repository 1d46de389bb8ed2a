// Package announcements implements administrator broadcast notices and the
// visibility rules that decide which notices each viewer sees.
package announcements

import (
	"time"

	"hostelhub/backend/internal/apperr"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Service handles the business logic for announcements.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new announcement service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// SaveRequest carries the editable fields of an announcement. An empty
// TargetBlock means the notice is for all blocks; a nil ExpiryDate means it
// never expires.
type SaveRequest struct {
	Title       string                      `json:"title" validate:"required,max=120"`
	Description string                      `json:"description" validate:"required,max=2000"`
	Category    models.AnnouncementCategory `json:"category" validate:"required"`
	Priority    models.AnnouncementPriority `json:"priority"`
	TargetBlock *string                     `json:"targetBlock"`
	ExpiryDate  *time.Time                  `json:"expiryDate"`
}

func (r *SaveRequest) normalize() error {
	if err := apperr.FromValidator(validate.Struct(r)); err != nil {
		return err
	}
	if !r.Category.IsValid() {
		return apperr.NewValidationError(apperr.FieldError{
			Field: "category", Message: "unknown category " + string(r.Category),
		})
	}
	if r.Priority == "" {
		r.Priority = models.AnnouncementNormal
	}
	if !r.Priority.IsValid() {
		return apperr.NewValidationError(apperr.FieldError{
			Field: "priority", Message: "unknown priority " + string(r.Priority),
		})
	}
	// The client sends "" when no block is selected.
	if r.TargetBlock != nil && *r.TargetBlock == "" {
		r.TargetBlock = nil
	}
	return nil
}

// Create publishes a new announcement. Admin only.
func (s *Service) Create(req SaveRequest, actor models.Actor) (*models.Announcement, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrUnauthorized
	}
	if err := req.normalize(); err != nil {
		return nil, err
	}
	a := &models.Announcement{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		TargetBlock: req.TargetBlock,
		ExpiryDate:  req.ExpiryDate,
		CreatedByID: actor.ID,
	}
	if err := s.Storage.CreateAnnouncement(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the editable fields of an existing announcement. Admin only.
func (s *Service) Update(id string, req SaveRequest, actor models.Actor) (*models.Announcement, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrUnauthorized
	}
	if err := req.normalize(); err != nil {
		return nil, err
	}
	a, err := s.Storage.GetAnnouncementByID(id)
	if err != nil {
		return nil, err
	}
	a.Title = req.Title
	a.Description = req.Description
	a.Category = req.Category
	a.Priority = req.Priority
	a.TargetBlock = req.TargetBlock
	a.ExpiryDate = req.ExpiryDate
	if err := s.Storage.SaveAnnouncement(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an announcement. Admin only.
func (s *Service) Delete(id string, actor models.Actor) error {
	if !actor.IsAdmin() {
		return apperr.ErrUnauthorized
	}
	return s.Storage.DeleteAnnouncement(id)
}

// ListFor loads all announcements and filters them for the viewer.
func (s *Service) ListFor(viewer models.Actor) ([]View, error) {
	anns, err := s.Storage.ListAnnouncements()
	if err != nil {
		return nil, err
	}
	return VisibleTo(anns, viewer, time.Now()), nil
}
