package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies the kind of maintenance issue a complaint reports.
type Category string

const (
	CategoryPlumbing    Category = "Plumbing"
	CategoryElectrical  Category = "Electrical"
	CategoryFurniture   Category = "Furniture"
	CategoryCleaning    Category = "Cleaning"
	CategoryInternet    Category = "Internet/WiFi"
	CategoryPestControl Category = "Pest Control"
	CategorySecurity    Category = "Security"
	CategoryOther       Category = "Other"
)

// Categories lists every valid complaint category.
var Categories = []Category{
	CategoryPlumbing, CategoryElectrical, CategoryFurniture, CategoryCleaning,
	CategoryInternet, CategoryPestControl, CategorySecurity, CategoryOther,
}

func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Priority is the urgency level a student assigns when filing a complaint.
// Administrators may change it afterwards.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) IsValid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Status tracks where a complaint is in its lifecycle.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusRejected   Status = "Rejected"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusResolved, StatusRejected}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Complaint represents a maintenance issue reported by a student.
// Title, description, category and the student reference are fixed at
// submission; only administrators mutate status, priority and the remark.
type Complaint struct {
	// ID is the unique identifier of the complaint (UUID).
	ID string `gorm:"primaryKey" json:"id"`
	// StudentID references the student who filed the complaint.
	StudentID string `gorm:"type:uuid;not null;index" json:"studentId"`
	Student   *User  `gorm:"foreignKey:StudentID" json:"student,omitempty"`

	Title       string   `gorm:"type:text;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Category    Category `gorm:"type:text;not null;index" json:"category"`
	Priority    Priority `gorm:"type:text;not null" json:"priority"`
	Status      Status   `gorm:"type:text;not null;index" json:"status"`
	// AdminRemark is an optional note left by the handling administrator.
	AdminRemark string `gorm:"type:text" json:"adminRemark"`

	// HostelBlock and RoomNumber are copied from the student at submission
	// so block analytics survive later profile changes.
	HostelBlock string `gorm:"type:text;index" json:"hostelBlock"`
	RoomNumber  string `gorm:"type:text" json:"roomNumber"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ResolvedAt is non-nil exactly while Status is Resolved.
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	// ResolvedByID records the administrator who resolved the complaint.
	ResolvedByID *string `gorm:"type:uuid;index" json:"resolvedById,omitempty"`
	ResolvedBy   *User   `gorm:"foreignKey:ResolvedByID" json:"resolvedBy,omitempty"`
}

// BeforeCreate generates a UUID for the complaint if none is set.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// ComplaintFilter narrows an administrator listing. Nil fields match
// everything; Limit <= 0 means no limit.
type ComplaintFilter struct {
	Category *Category
	Status   *Status
	Priority *Priority
	Limit    int
}
