package announcements

import (
	"sort"
	"time"

	"hostelhub/backend/internal/models"
)

// View is one announcement prepared for a viewer. IsExpired is only ever
// true for administrators; students never receive expired announcements.
type View struct {
	models.Announcement
	IsExpired bool `json:"isExpired"`
}

// VisibleTo applies the visibility rules to a snapshot of announcements.
//
// Students see a notice iff it targets all blocks or their own block, and it
// has not expired. Administrators see every notice with the expiry flagged.
// The result is ordered by CreatedAt descending with an id tie-break, so
// equal timestamps still produce a deterministic order.
func VisibleTo(anns []models.Announcement, viewer models.Actor, now time.Time) []View {
	out := make([]View, 0, len(anns))
	for i := range anns {
		a := anns[i]
		expired := a.ExpiredAt(now)
		if !viewer.IsAdmin() {
			if expired {
				continue
			}
			if a.TargetBlock != nil && *a.TargetBlock != viewer.HostelBlock {
				continue
			}
		}
		out = append(out, View{Announcement: a, IsExpired: expired})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
