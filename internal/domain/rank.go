package domain

import "math"

// Rank is the derived rank of a point total.
type Rank struct {
	Points   int      `json:"points"`
	Current  RankTier `json:"current"`
	Next     RankTier `json:"next"`
	Progress int      `json:"progressPercent"` // 0..100 toward Next
	ToNext   int      `json:"toNext"`          // points still missing, 0 at the top tier
}

// Capped reports whether Current is the last tier.
func (r Rank) Capped() bool {
	return r.Current == r.Next
}

// ComputeRank maps a point total onto tiers.
//
// Tiers are scanned in catalog order and the last one whose threshold is
// reached wins. Next is the tier after it in catalog order, or Current
// itself at the top. Progress is the rounded share of the Current→Next
// span already covered, clamped to 0..100.
func ComputeRank(points int, tiers []RankTier) Rank {
	if len(tiers) == 0 {
		return Rank{Points: points}
	}
	if points < 0 {
		points = 0
	}

	idx := 0
	for i, t := range tiers {
		if points >= t.Threshold {
			idx = i
		}
	}
	current := tiers[idx]
	next := tiers[min(idx+1, len(tiers)-1)]

	span := max(1, next.Threshold-current.Threshold)
	into := points - current.Threshold
	pct := int(math.Floor(float64(into)*100/float64(span) + 0.5))
	pct = min(100, max(0, pct))

	toNext := 0
	if next != current && next.Threshold > points {
		toNext = next.Threshold - points
	}

	return Rank{
		Points:   points,
		Current:  current,
		Next:     next,
		Progress: pct,
		ToNext:   toNext,
	}
}
