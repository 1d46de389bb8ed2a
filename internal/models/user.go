package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Role distinguishes students from administrators.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User represents a portal account: a resident student or an administrator
// (maintenance staff). Administrators may list the complaint categories they
// handle in Specialties.
type User struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Role        Role   `gorm:"type:text;not null" json:"role"`
	HostelBlock string `gorm:"type:text" json:"hostelBlock"`
	RoomNumber  string `gorm:"type:text" json:"roomNumber"`
	// Specialties holds maintenance categories a staff member handles.
	Specialties pq.StringArray `gorm:"type:text[]" json:"specialties,omitempty"`
}

// BeforeCreate generates a UUID for the user if none is set.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// Actor returns the session identity derived from this account.
func (u *User) Actor() Actor {
	return Actor{
		ID:          u.ID,
		Name:        u.Name,
		Role:        u.Role,
		HostelBlock: u.HostelBlock,
		RoomNumber:  u.RoomNumber,
	}
}

// Actor identifies the authenticated user on whose behalf an operation runs.
// It is passed explicitly into every engine call rather than kept as
// process-wide state.
type Actor struct {
	ID          string
	Name        string
	Role        Role
	HostelBlock string
	RoomNumber  string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
