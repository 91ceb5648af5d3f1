package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/makerhub/internal/domain"
)

var errNullRecord = errors.New("record is null")

// record mirrors domain.Snapshot with every field optional, so a partial
// record can be told apart from one holding empty collections.
type record struct {
	Page     *string                       `json:"page"`
	Profile  *profileRecord                `json:"profile"`
	Enrolled *map[string]domain.Enrollment `json:"enrolled"`
	Posts    *[]domain.Thread              `json:"posts"`
	Ideas    *[]domain.Idea                `json:"ideas"`
	Cart     *[]domain.CartLine            `json:"cart"`
}

type profileRecord struct {
	Name   string          `json:"name"`
	Points int             `json:"points"`
	Badges map[string]bool `json:"badges"`
}

// Encode serializes a snapshot.
func Encode(s domain.Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a stored record. Missing fields are taken from defaults,
// while fields that are present (even empty) are kept as stored.
func Decode(data []byte, defaults domain.Snapshot) (domain.Snapshot, error) {
	var rec *record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if rec == nil {
		return domain.Snapshot{}, errNullRecord
	}

	out := defaults.Clone()
	if rec.Page != nil && *rec.Page != "" {
		out.Page = *rec.Page
	}
	if rec.Profile != nil {
		out.Profile = domain.Profile{
			Name:   rec.Profile.Name,
			Points: max(0, rec.Profile.Points),
			Badges: rec.Profile.Badges,
		}
		if out.Profile.Badges == nil {
			out.Profile.Badges = map[string]bool{}
		}
	}
	if rec.Enrolled != nil {
		out.Enrolled = orEmptyMap(*rec.Enrolled)
	}
	if rec.Posts != nil {
		out.Posts = orEmpty(*rec.Posts)
	}
	if rec.Ideas != nil {
		out.Ideas = orEmpty(*rec.Ideas)
	}
	if rec.Cart != nil {
		out.Cart = mergeCart(*rec.Cart)
	}
	return out, nil
}

// mergeCart drops lines with no quantity and folds duplicate product ids
// into one line, keeping first-seen order.
func mergeCart(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	pos := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.Qty < 1 {
			continue
		}
		if i, ok := pos[l.ProductID]; ok {
			out[i].Qty += l.Qty
			continue
		}
		pos[l.ProductID] = len(out)
		out = append(out, l)
	}
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func orEmptyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}
