package session

import "github.com/MrSnakeDoc/makerhub/internal/domain"

// Points granted by community actions. Course points come from the catalog.
const (
	QuizPoints   = 50
	ThreadPoints = 20
	IdeaPoints   = 25
	CartPoints   = 5
)

// Award reports what an operation changed and granted.
type Award struct {
	Changed  bool   `json:"changed"`
	Points   int    `json:"points"`
	Badge    string `json:"badge,omitempty"`
	NewBadge bool   `json:"newBadge"`
}

// grant adds points (clamping the total at zero) and the badge to next and
// records both in the award.
func grant(next *domain.Snapshot, points int, badge string) Award {
	a := Award{Changed: true}

	before := next.Profile.Points
	next.Profile.Points = max(0, before+points)
	a.Points = next.Profile.Points - before

	if badge != "" {
		a.Badge = badge
		if next.Profile.Badges == nil {
			next.Profile.Badges = map[string]bool{}
		}
		if !next.Profile.Badges[badge] {
			next.Profile.Badges[badge] = true
			a.NewBadge = true
		}
	}
	return a
}
