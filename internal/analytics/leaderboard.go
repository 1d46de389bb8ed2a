package analytics

import (
	"sort"
	"time"

	"hostelhub/backend/internal/models"
)

// StaffEntry ranks one administrator by resolution work.
type StaffEntry struct {
	StaffID       string        `json:"staffId"`
	Name          string        `json:"name"`
	TotalResolved int           `json:"totalResolved"`
	AvgResolution time.Duration `json:"-"`
	// AvgTime is AvgResolution in the human format the dashboard renders,
	// e.g. "2d 4h".
	AvgTime  string `json:"avgTime"`
	Champion bool   `json:"champion"`
}

// BlockEntry ranks one hostel block by resolution volume.
type BlockEntry struct {
	Block           string `json:"block"`
	ResolvedCount   int    `json:"resolvedCount"`
	TotalComplaints int    `json:"totalComplaints"`
}

// StaffLeaderboard ranks resolving staff by volume, then by speed.
//
// Only resolved complaints with a recorded resolver and resolution time
// count. Order: TotalResolved descending, average resolution ascending
// (faster wins ties), then name and id for determinism. The first entry is
// flagged as champion; empty input yields an empty list.
func StaffLeaderboard(complaints []models.Complaint) []StaffEntry {
	type agg struct {
		name  string
		count int
		total time.Duration
	}
	groups := make(map[string]*agg)
	for i := range complaints {
		c := &complaints[i]
		if c.Status != models.StatusResolved || c.ResolvedByID == nil || c.ResolvedAt == nil {
			continue
		}
		g, ok := groups[*c.ResolvedByID]
		if !ok {
			g = &agg{name: "Unknown"}
			groups[*c.ResolvedByID] = g
		}
		if c.ResolvedBy != nil && c.ResolvedBy.Name != "" {
			g.name = c.ResolvedBy.Name
		}
		g.count++
		g.total += c.ResolvedAt.Sub(c.CreatedAt)
	}

	entries := make([]StaffEntry, 0, len(groups))
	for id, g := range groups {
		avg := g.total / time.Duration(g.count)
		entries = append(entries, StaffEntry{
			StaffID:       id,
			Name:          g.name,
			TotalResolved: g.count,
			AvgResolution: avg,
			AvgTime:       FormatDuration(avg),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalResolved != entries[j].TotalResolved {
			return entries[i].TotalResolved > entries[j].TotalResolved
		}
		if entries[i].AvgResolution != entries[j].AvgResolution {
			return entries[i].AvgResolution < entries[j].AvgResolution
		}
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].StaffID < entries[j].StaffID
	})
	if len(entries) > 0 {
		entries[0].Champion = true
	}
	return entries
}

// BlockLeaderboard groups complaints by hostel block and ranks blocks by
// resolved volume, with the block identifier breaking ties.
func BlockLeaderboard(complaints []models.Complaint) []BlockEntry {
	type agg struct {
		resolved int
		total    int
	}
	groups := make(map[string]*agg)
	for i := range complaints {
		c := &complaints[i]
		g, ok := groups[c.HostelBlock]
		if !ok {
			g = &agg{}
			groups[c.HostelBlock] = g
		}
		g.total++
		if c.Status == models.StatusResolved {
			g.resolved++
		}
	}

	entries := make([]BlockEntry, 0, len(groups))
	for block, g := range groups {
		entries = append(entries, BlockEntry{
			Block:           block,
			ResolvedCount:   g.resolved,
			TotalComplaints: g.total,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ResolvedCount != entries[j].ResolvedCount {
			return entries[i].ResolvedCount > entries[j].ResolvedCount
		}
		return entries[i].Block < entries[j].Block
	})
	return entries
}
