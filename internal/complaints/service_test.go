package complaints_test

import (
	"testing"
	"time"

	"hostelhub/backend/internal/apperr"
	"hostelhub/backend/internal/complaints"
	"hostelhub/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	studentActor = models.Actor{
		ID: "student-1", Name: "Ravi", Role: models.RoleStudent,
		HostelBlock: "B", RoomNumber: "204",
	}
	adminActor = models.Actor{ID: "admin-1", Name: "Warden", Role: models.RoleAdmin}
)

func pendingComplaint(id string) *models.Complaint {
	return &models.Complaint{
		ID:          id,
		StudentID:   studentActor.ID,
		Title:       "Broken chair",
		Description: "Chair leg snapped",
		Category:    models.CategoryFurniture,
		Priority:    models.PriorityLow,
		Status:      models.StatusPending,
		HostelBlock: "B",
		RoomNumber:  "204",
		CreatedAt:   time.Now().Add(-48 * time.Hour),
	}
}

// TestCreate_FilesPendingComplaint stamps the student's block/room and
// starts the lifecycle at Pending.
func TestCreate_FilesPendingComplaint(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	storageMock.On("AllowSubmission", studentActor.ID).Return(true, nil).Once()
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil).Once()

	// Act
	created, err := svc.Create(complaints.CreateRequest{
		Title:       "No hot water",
		Description: "Geyser in B-204 not heating since Monday",
		Category:    models.CategoryPlumbing,
		Priority:    models.PriorityHigh,
	}, studentActor)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, studentActor.ID, created.StudentID)
	assert.Equal(t, "B", created.HostelBlock)
	assert.Equal(t, "204", created.RoomNumber)
	assert.Nil(t, created.ResolvedAt)
	storageMock.AssertExpectations(t)
}

// TestCreate_DefaultsPriorityToMedium when the student leaves it unset.
func TestCreate_DefaultsPriorityToMedium(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	storageMock.On("AllowSubmission", studentActor.ID).Return(true, nil).Once()
	storageMock.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil).Once()

	created, err := svc.Create(complaints.CreateRequest{
		Title:       "Flickering light",
		Description: "Corridor light flickers at night",
		Category:    models.CategoryElectrical,
	}, studentActor)

	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, created.Priority)
}

// TestCreate_ValidationFailures rejects missing and malformed fields before
// touching storage.
func TestCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  complaints.CreateRequest
	}{
		{"missing title", complaints.CreateRequest{
			Description: "desc", Category: models.CategoryPlumbing,
		}},
		{"missing description", complaints.CreateRequest{
			Title: "t", Category: models.CategoryPlumbing,
		}},
		{"missing category", complaints.CreateRequest{
			Title: "t", Description: "desc",
		}},
		{"unknown category", complaints.CreateRequest{
			Title: "t", Description: "desc", Category: "Gardening",
		}},
		{"unknown priority", complaints.CreateRequest{
			Title: "t", Description: "desc",
			Category: models.CategoryPlumbing, Priority: "Critical",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storageMock := new(MockStorage)
			svc := complaints.NewService(storageMock)

			_, err := svc.Create(tt.req, studentActor)

			_, ok := apperr.AsValidation(err)
			assert.True(t, ok, "expected a validation error, got %v", err)
			storageMock.AssertNotCalled(t, "CreateComplaint", mock.Anything)
		})
	}
}

// TestCreate_Throttled surfaces the submission limit without storing anything.
func TestCreate_Throttled(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	storageMock.On("AllowSubmission", studentActor.ID).Return(false, nil).Once()

	_, err := svc.Create(complaints.CreateRequest{
		Title:       "Another one",
		Description: "desc",
		Category:    models.CategoryOther,
	}, studentActor)

	assert.ErrorIs(t, err, apperr.ErrTooManyComplaints)
	storageMock.AssertNotCalled(t, "CreateComplaint", mock.Anything)
}

// TestUpdate_ResolveStampsResolution covers the documented scenario: admin
// resolves a pending complaint with a remark, which stamps resolvedAt and
// the resolver.
func TestUpdate_ResolveStampsResolution(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	existing := pendingComplaint("comp-1")
	storageMock.On("GetComplaintByID", "comp-1").Return(existing, nil).Once()
	storageMock.On("SaveComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil).Once()

	resolved := models.StatusResolved
	remark := "Fixed"

	// Act
	updated, err := svc.Update("comp-1", complaints.UpdateRequest{
		Status:      &resolved,
		AdminRemark: &remark,
	}, adminActor)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.Equal(t, "Fixed", updated.AdminRemark)
	require.NotNil(t, updated.ResolvedAt)
	assert.WithinDuration(t, time.Now(), *updated.ResolvedAt, 2*time.Second)
	assert.True(t, updated.CreatedAt.Before(*updated.ResolvedAt))
	require.NotNil(t, updated.ResolvedByID)
	assert.Equal(t, adminActor.ID, *updated.ResolvedByID)
	storageMock.AssertExpectations(t)
}

// TestUpdate_ReopenClearsResolution clears resolvedAt and the resolver when
// a resolved complaint leaves Resolved. The portal deliberately allows any
// status-to-status jump.
func TestUpdate_ReopenClearsResolution(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	existing := pendingComplaint("comp-2")
	resolvedAt := time.Now().Add(-time.Hour)
	resolver := adminActor.ID
	existing.Status = models.StatusResolved
	existing.ResolvedAt = &resolvedAt
	existing.ResolvedByID = &resolver
	storageMock.On("GetComplaintByID", "comp-2").Return(existing, nil).Once()
	storageMock.On("SaveComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil).Once()

	pending := models.StatusPending

	updated, err := svc.Update("comp-2", complaints.UpdateRequest{Status: &pending}, adminActor)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Nil(t, updated.ResolvedAt)
	assert.Nil(t, updated.ResolvedByID)
}

// TestUpdate_PartialChangesLeaveRestUntouched only applies supplied fields.
func TestUpdate_PartialChangesLeaveRestUntouched(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	existing := pendingComplaint("comp-3")
	existing.AdminRemark = "looking into it"
	storageMock.On("GetComplaintByID", "comp-3").Return(existing, nil).Once()
	storageMock.On("SaveComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil).Once()

	urgent := models.PriorityUrgent

	updated, err := svc.Update("comp-3", complaints.UpdateRequest{Priority: &urgent}, adminActor)

	require.NoError(t, err)
	assert.Equal(t, models.PriorityUrgent, updated.Priority)
	assert.Equal(t, models.StatusPending, updated.Status, "status unchanged")
	assert.Equal(t, "looking into it", updated.AdminRemark, "remark unchanged")
	assert.Nil(t, updated.ResolvedAt)
}

// TestUpdate_ResolvedToResolvedKeepsOriginalStamp does not re-stamp a
// complaint already resolved.
func TestUpdate_ResolvedToResolvedKeepsOriginalStamp(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	existing := pendingComplaint("comp-4")
	resolvedAt := time.Now().Add(-24 * time.Hour)
	resolver := "admin-older"
	existing.Status = models.StatusResolved
	existing.ResolvedAt = &resolvedAt
	existing.ResolvedByID = &resolver
	storageMock.On("GetComplaintByID", "comp-4").Return(existing, nil).Once()
	storageMock.On("SaveComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil).Once()

	resolved := models.StatusResolved
	remark := "double checked"

	updated, err := svc.Update("comp-4", complaints.UpdateRequest{
		Status:      &resolved,
		AdminRemark: &remark,
	}, adminActor)

	require.NoError(t, err)
	assert.Equal(t, resolvedAt.Unix(), updated.ResolvedAt.Unix(), "original stamp preserved")
	assert.Equal(t, "admin-older", *updated.ResolvedByID)
}

// TestUpdate_NonAdminRejected fails with Unauthorized before any storage
// read, leaving the complaint unchanged.
func TestUpdate_NonAdminRejected(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	resolved := models.StatusResolved

	_, err := svc.Update("comp-1", complaints.UpdateRequest{Status: &resolved}, studentActor)

	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	storageMock.AssertNotCalled(t, "GetComplaintByID", mock.Anything)
	storageMock.AssertNotCalled(t, "SaveComplaint", mock.Anything)
}

// TestUpdate_UnknownComplaint surfaces NotFound.
func TestUpdate_UnknownComplaint(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	storageMock.On("GetComplaintByID", "ghost").Return(nil, apperr.ErrNotFound).Once()

	pending := models.StatusPending

	_, err := svc.Update("ghost", complaints.UpdateRequest{Status: &pending}, adminActor)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// TestUpdate_InvalidEnumRejected validates status and priority values
// before loading the record.
func TestUpdate_InvalidEnumRejected(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	bad := models.Status("Closed")

	_, err := svc.Update("comp-1", complaints.UpdateRequest{Status: &bad}, adminActor)

	_, ok := apperr.AsValidation(err)
	assert.True(t, ok, "expected a validation error, got %v", err)
	storageMock.AssertNotCalled(t, "GetComplaintByID", mock.Anything)
}

// TestGet_OwnerAndAdminAccess lets the owner and any admin read a
// complaint, and nobody else.
func TestGet_OwnerAndAdminAccess(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	existing := pendingComplaint("comp-5")
	storageMock.On("GetComplaintByID", "comp-5").Return(existing, nil)

	_, err := svc.Get("comp-5", studentActor)
	assert.NoError(t, err)

	_, err = svc.Get("comp-5", adminActor)
	assert.NoError(t, err)

	other := models.Actor{ID: "student-2", Role: models.RoleStudent}
	_, err = svc.Get("comp-5", other)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

// TestList_AdminOnly guards the filterable listing.
func TestList_AdminOnly(t *testing.T) {
	storageMock := new(MockStorage)
	svc := complaints.NewService(storageMock)
	storageMock.On("ListComplaints", mock.AnythingOfType("models.ComplaintFilter")).
		Return([]models.Complaint{*pendingComplaint("comp-6")}, nil).Once()

	list, err := svc.List(models.ComplaintFilter{}, adminActor)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.List(models.ComplaintFilter{}, studentActor)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
