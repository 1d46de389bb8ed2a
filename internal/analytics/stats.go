package analytics

import (
	"math"
	"sort"

	"hostelhub/backend/internal/models"
)

// Stats is the per-status and per-category breakdown of a complaint set.
type Stats struct {
	Total      int             `json:"total"`
	Pending    int             `json:"pending"`
	InProgress int             `json:"inProgress"`
	Resolved   int             `json:"resolved"`
	Rejected   int             `json:"rejected"`
	ByCategory []CategoryCount `json:"byCategory"`
}

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Category   models.Category `json:"category"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// Aggregate computes dashboard statistics over a complaint snapshot. The
// caller decides the scope (one student's complaints or the whole system).
//
// Percentages are rounded independently, so their sum can land a point off
// 100. That is a property of the breakdown, not an error to correct.
func Aggregate(complaints []models.Complaint) Stats {
	stats := Stats{
		Total:      len(complaints),
		ByCategory: make([]CategoryCount, 0),
	}
	byCategory := make(map[models.Category]int)
	for i := range complaints {
		c := &complaints[i]
		switch c.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusResolved:
			stats.Resolved++
		case models.StatusRejected:
			stats.Rejected++
		}
		byCategory[c.Category]++
	}

	for cat, count := range byCategory {
		pct := 0
		if stats.Total > 0 {
			pct = int(math.Round(float64(count) / float64(stats.Total) * 100))
		}
		stats.ByCategory = append(stats.ByCategory, CategoryCount{
			Category:   cat,
			Count:      count,
			Percentage: pct,
		})
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		if stats.ByCategory[i].Count != stats.ByCategory[j].Count {
			return stats.ByCategory[i].Count > stats.ByCategory[j].Count
		}
		return stats.ByCategory[i].Category < stats.ByCategory[j].Category
	})
	return stats
}
