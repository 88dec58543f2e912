package search

import (
	"strings"

	"github.com/Sanjay1766/OptiSearch-AI/core"
)

// Bonus factors applied per matched field during multi-field re-ranking.
const (
	titleBonusFactor    = 0.5
	skillsBonusFactor   = 0.5
	categoryBonusFactor = 0.3
)

// FieldWeights scales the substring bonuses of multi-field search.
// The category bonus reuses the description weight.
type FieldWeights struct {
	Title       float64
	Skills      float64
	Description float64
}

// DefaultFieldWeights returns the standard weighting: title 0.4, skills 0.3,
// description 0.3.
func DefaultFieldWeights() FieldWeights {
	return FieldWeights{
		Title:       0.4,
		Skills:      0.3,
		Description: 0.3,
	}
}

// IsZero reports whether no weight is set.
func (w FieldWeights) IsZero() bool {
	return w == FieldWeights{}
}

// fieldBonus totals the bonuses for a lowercased query appearing verbatim
// inside a record's title, skills or category.
func fieldBonus(loweredQuery string, r *core.Internship, w FieldWeights) float64 {
	var bonus float64
	if strings.Contains(strings.ToLower(r.Title), loweredQuery) {
		bonus += w.Title * titleBonusFactor
	}
	if strings.Contains(strings.ToLower(r.SkillsRequired), loweredQuery) {
		bonus += w.Skills * skillsBonusFactor
	}
	if strings.Contains(strings.ToLower(r.Category), loweredQuery) {
		bonus += w.Description * categoryBonusFactor
	}
	return bonus
}
