package services

import (
	"sort"

	"github.com/Eyabennessib/rooma/internal/models"
)

// FairOrder ranks a household's members from most to least owed a turn:
// ascending by historical assignment count, then join order, then id so
// the order is fully deterministic. Members missing from
// historicalCounts count as zero. The input slice is not modified.
func FairOrder(members []models.Member, historicalCounts map[string]int) []string {
	ranked := make([]models.Member, len(members))
	copy(ranked, members)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if historicalCounts[a.ID] != historicalCounts[b.ID] {
			return historicalCounts[a.ID] < historicalCounts[b.ID]
		}
		if a.JoinOrder != b.JoinOrder {
			return a.JoinOrder < b.JoinOrder
		}
		return a.ID < b.ID
	})

	order := make([]string, 0, len(ranked))
	for _, member := range ranked {
		order = append(order, member.ID)
	}
	return order
}
