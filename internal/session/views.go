package session

import (
	"github.com/MrSnakeDoc/makerhub/internal/catalog"
	"github.com/MrSnakeDoc/makerhub/internal/domain"
)

// BadgeStatus is a badge definition with whether the profile holds it.
type BadgeStatus struct {
	domain.BadgeDef
	Earned bool `json:"earned"`
}

// ProfileView is the profile page: identity, rank and badge shelf.
type ProfileView struct {
	Name    string            `json:"name"`
	Points  int               `json:"points"`
	Rank    domain.Rank       `json:"rank"`
	MaxRank bool              `json:"maxRank"`
	Ranks   []domain.RankTier `json:"ranks"`
	Badges  []BadgeStatus     `json:"badges"`
}

// CartItem is a cart line resolved against the catalog.
type CartItem struct {
	ProductID string         `json:"id"`
	Qty       int            `json:"qty"`
	Product   domain.Product `json:"product"`
	Subtotal  int            `json:"subtotal"`
}

// CartView is the cart with its totals.
type CartView struct {
	Lines      []CartItem `json:"lines"`
	Count      int        `json:"count"`
	Total      int        `json:"total"`
	TotalLabel string     `json:"totalLabel"`
}

// Rank returns the rank for the current points.
func (s *Store) Rank() domain.Rank {
	s.mu.Lock()
	points := s.state.Profile.Points
	s.mu.Unlock()
	return domain.ComputeRank(points, s.catalog.Current().Ranks)
}

// CartCount is the number of units in the cart, summed over every line,
// including lines whose product has left the catalog.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartUnits(s.state.Cart)
}

// CartTotal sums price × qty over lines whose product still exists.
func (s *Store) CartTotal() int {
	return s.Cart().Total
}

// Cart resolves the cart against the catalog. Lines pointing at products
// that no longer exist are counted but not priced or listed.
func (s *Store) Cart() CartView {
	s.mu.Lock()
	lines := append([]domain.CartLine(nil), s.state.Cart...)
	s.mu.Unlock()

	return resolveCart(lines, s.catalog.Current())
}

// StateView is a snapshot together with the values derived from it.
type StateView struct {
	Snapshot domain.Snapshot
	Rank     domain.Rank
	Cart     CartView
}

// State copies the session and derives rank and cart from that same copy,
// so the three always agree.
func (s *Store) State() StateView {
	s.mu.Lock()
	snap := s.state.Clone()
	s.mu.Unlock()

	cat := s.catalog.Current()
	return StateView{
		Snapshot: snap,
		Rank:     domain.ComputeRank(snap.Profile.Points, cat.Ranks),
		Cart:     resolveCart(snap.Cart, cat),
	}
}

func cartUnits(lines []domain.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Qty
	}
	return n
}

func resolveCart(lines []domain.CartLine, cat *catalog.Catalog) CartView {
	v := CartView{Lines: make([]CartItem, 0, len(lines)), Count: cartUnits(lines)}
	for _, l := range lines {
		p, ok := cat.Product(l.ProductID)
		if !ok {
			continue
		}
		item := CartItem{ProductID: l.ProductID, Qty: l.Qty, Product: p, Subtotal: p.Price * l.Qty}
		v.Lines = append(v.Lines, item)
		v.Total += item.Subtotal
	}
	v.TotalLabel = domain.FormatINR(v.Total)
	return v
}

// Profile builds the profile page view.
func (s *Store) Profile() ProfileView {
	s.mu.Lock()
	p := s.state.Profile
	earned := make(map[string]bool, len(p.Badges))
	for k, v := range p.Badges {
		earned[k] = v
	}
	s.mu.Unlock()

	cat := s.catalog.Current()
	v := ProfileView{
		Name:   p.Name,
		Points: p.Points,
		Rank:   domain.ComputeRank(p.Points, cat.Ranks),
		Ranks:  cat.Ranks,
		Badges: make([]BadgeStatus, 0, len(cat.Badges)),
	}
	v.MaxRank = v.Rank.Capped()
	for _, b := range cat.Badges {
		v.Badges = append(v.Badges, BadgeStatus{BadgeDef: b, Earned: earned[b.Key]})
	}
	return v
}
