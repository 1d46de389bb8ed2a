package models

import "time"

// ActivityType tags which kind of record an ActivityItem wraps.
type ActivityType string

const (
	ActivityComplaint    ActivityType = "complaint"
	ActivityAnnouncement ActivityType = "announcement"
)

// ActivityItem is one entry of the merged dashboard feed. It carries just
// the fields both record kinds can render uniformly.
type ActivityItem struct {
	Type      ActivityType `json:"type"`
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  string       `json:"category"`
	CreatedAt time.Time    `json:"createdAt"`
}
