package domain

const (
	// DefaultDisplayName is the name a fresh profile starts with.
	DefaultDisplayName = "Guest Maker"
	// DefaultView is the page shown on a fresh session.
	DefaultView = "home"
	// AnonymousAuthor is used for threads posted with an empty display name.
	AnonymousAuthor = "You"
)

// Views lists the pages the presentation layer can show.
var Views = []string{"home", "learn", "community", "ideas", "shop", "blog", "profile", "about"}

// IsView reports whether v is a known page.
func IsView(v string) bool {
	for _, known := range Views {
		if known == v {
			return true
		}
	}
	return false
}

// Profile is the user's identity and gamification state.
type Profile struct {
	// Name is free text, editable by the user.
	Name string `json:"name"`

	// Points never goes below zero.
	Points int `json:"points"`

	// Badges is the set of earned badge keys. Values are always true.
	Badges map[string]bool `json:"badges"`
}

// Enrollment tracks a single course. Created on first toggle.
type Enrollment struct {
	Done bool `json:"done"`
}

// Thread is a forum post.
type Thread struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Likes  int    `json:"likes"`
}

// Idea is a project idea on the idea board.
// Sharing an idea counts as its first vote.
type Idea struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Votes int    `json:"votes"`
}

// CartLine is one product in the cart. There is at most one line per product.
type CartLine struct {
	ProductID string `json:"id"`
	Qty       int    `json:"qty"`
}

// Snapshot is the complete state of a session. It is the exact unit
// written to and read from the persistence slot.
type Snapshot struct {
	Page     string                `json:"page"`
	Profile  Profile               `json:"profile"`
	Enrolled map[string]Enrollment `json:"enrolled"`
	Posts    []Thread              `json:"posts"`
	Ideas    []Idea                `json:"ideas"`
	Cart     []CartLine            `json:"cart"`
}

// NewProfile returns the profile of a brand new session.
func NewProfile() Profile {
	return Profile{
		Name:   DefaultDisplayName,
		Badges: map[string]bool{},
	}
}

// NewSnapshot returns a fresh session seeded with the given sample posts and ideas.
func NewSnapshot(posts []Thread, ideas []Idea) Snapshot {
	s := Snapshot{
		Page:     DefaultView,
		Profile:  NewProfile(),
		Enrolled: map[string]Enrollment{},
		Posts:    make([]Thread, len(posts)),
		Ideas:    make([]Idea, len(ideas)),
		Cart:     []CartLine{},
	}
	copy(s.Posts, posts)
	copy(s.Ideas, ideas)
	return s
}

// Clone returns a deep copy. Nil collections come back as nil so that a
// clone compares equal to its source.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Profile.Badges != nil {
		out.Profile.Badges = make(map[string]bool, len(s.Profile.Badges))
		for k, v := range s.Profile.Badges {
			out.Profile.Badges[k] = v
		}
	}
	if s.Enrolled != nil {
		out.Enrolled = make(map[string]Enrollment, len(s.Enrolled))
		for k, v := range s.Enrolled {
			out.Enrolled[k] = v
		}
	}
	if s.Posts != nil {
		out.Posts = append(make([]Thread, 0, len(s.Posts)), s.Posts...)
	}
	if s.Ideas != nil {
		out.Ideas = append(make([]Idea, 0, len(s.Ideas)), s.Ideas...)
	}
	if s.Cart != nil {
		out.Cart = append(make([]CartLine, 0, len(s.Cart)), s.Cart...)
	}
	return out
}

// HasBadge reports whether the profile holds key.
func (p Profile) HasBadge(key string) bool {
	return p.Badges[key]
}
