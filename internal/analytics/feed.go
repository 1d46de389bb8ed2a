// Package analytics provides the pure derived-state computations behind the
// dashboards: the merged activity feed, complaint statistics and the staff
// and block leaderboards. Nothing here touches storage or caches results;
// every function is a single pass over the snapshot it is handed.
package analytics

import (
	"sort"

	"hostelhub/backend/internal/models"
)

// MergeActivity combines recent complaints and announcements into one
// time-ordered feed of at most limit items.
//
// Order is CreatedAt descending. Equal timestamps break ties with the
// announcement first, then ascending id, so the feed is a total order.
func MergeActivity(complaints []models.Complaint, anns []models.Announcement, limit int) []models.ActivityItem {
	items := make([]models.ActivityItem, 0, len(complaints)+len(anns))
	for i := range complaints {
		c := &complaints[i]
		items = append(items, models.ActivityItem{
			Type:      models.ActivityComplaint,
			ID:        c.ID,
			Title:     c.Title,
			Category:  string(c.Category),
			CreatedAt: c.CreatedAt,
		})
	}
	for i := range anns {
		a := &anns[i]
		items = append(items, models.ActivityItem{
			Type:      models.ActivityAnnouncement,
			ID:        a.ID,
			Title:     a.Title,
			Category:  string(a.Category),
			CreatedAt: a.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		if items[i].Type != items[j].Type {
			return items[i].Type == models.ActivityAnnouncement
		}
		return items[i].ID < items[j].ID
	})

	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
