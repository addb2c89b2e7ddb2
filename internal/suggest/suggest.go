// Package suggest finds near-miss names for "did you mean" hints.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to name by case-insensitive edit
// distance when it is within a third of the name's length (at least one
// edit), or "". Ties keep the earlier candidate.
func Closest(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	limit := max(1, len(name)/3)
	best, bestDist := "", limit+1
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(name, strings.ToLower(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}
