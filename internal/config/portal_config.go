package config

import "time"

const (
	// Dashboard feed
	ActivityFeedLimit   = 8
	RecentComplaints    = 5
	RecentAnnouncements = 5

	// Complaint submission throttle (per student, Redis-backed)
	SubmissionWindow        = 1 * time.Hour
	MaxSubmissionsPerWindow = 5

	// Session tokens
	TokenTTL    = 72 * time.Hour
	TokenIssuer = "hostelhub-service"
)
