package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementCategory describes what an announcement is about.
type AnnouncementCategory string

const (
	AnnouncementGeneral     AnnouncementCategory = "General"
	AnnouncementWater       AnnouncementCategory = "Water"
	AnnouncementElectricity AnnouncementCategory = "Electricity"
	AnnouncementMess        AnnouncementCategory = "Mess"
	AnnouncementInspection  AnnouncementCategory = "Inspection"
)

var AnnouncementCategories = []AnnouncementCategory{
	AnnouncementGeneral, AnnouncementWater, AnnouncementElectricity,
	AnnouncementMess, AnnouncementInspection,
}

func (c AnnouncementCategory) IsValid() bool {
	for _, v := range AnnouncementCategories {
		if c == v {
			return true
		}
	}
	return false
}

// AnnouncementPriority controls how prominently a notice is displayed.
type AnnouncementPriority string

const (
	AnnouncementNormal    AnnouncementPriority = "Normal"
	AnnouncementImportant AnnouncementPriority = "Important"
	AnnouncementUrgent    AnnouncementPriority = "Urgent"
)

var AnnouncementPriorities = []AnnouncementPriority{
	AnnouncementNormal, AnnouncementImportant, AnnouncementUrgent,
}

func (p AnnouncementPriority) IsValid() bool {
	for _, v := range AnnouncementPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Announcement is an administrator-authored notice, optionally scoped to a
// hostel block and optionally time-limited.
type Announcement struct {
	ID          string               `gorm:"primaryKey" json:"id"`
	Title       string               `gorm:"type:text;not null" json:"title"`
	Description string               `gorm:"type:text;not null" json:"description"`
	Category    AnnouncementCategory `gorm:"type:text;not null" json:"category"`
	Priority    AnnouncementPriority `gorm:"type:text;not null" json:"priority"`

	// TargetBlock limits visibility to one hostel block; nil means all blocks.
	TargetBlock *string `gorm:"type:text" json:"targetBlock"`
	// ExpiryDate is the instant after which students no longer see the
	// announcement; nil means it never expires.
	ExpiryDate *time.Time `json:"expiryDate"`

	CreatedByID string    `gorm:"type:uuid;not null" json:"createdById"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID for the announcement if none is set.
func (a *Announcement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// ExpiredAt reports whether the announcement has expired as of now.
func (a *Announcement) ExpiredAt(now time.Time) bool {
	return a.ExpiryDate != nil && a.ExpiryDate.Before(now)
}
