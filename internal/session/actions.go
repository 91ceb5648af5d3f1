package session

import (
	"context"
	"strings"

	"github.com/MrSnakeDoc/makerhub/internal/catalog"
	"github.com/MrSnakeDoc/makerhub/internal/domain"
)

// SetView records the page being shown. Unknown pages are ignored.
func (s *Store) SetView(ctx context.Context, view string) bool {
	a, _ := s.apply(ctx, "SetView", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		if !domain.IsView(view) || next.Page == view {
			return Award{}, nil
		}
		next.Page = view
		return Award{Changed: true}, nil
	})
	return a.Changed
}

// SetDisplayName replaces the profile name with the trimmed input. An empty
// name is allowed.
func (s *Store) SetDisplayName(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	a, _ := s.apply(ctx, "SetDisplayName", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		if next.Profile.Name == name {
			return Award{}, nil
		}
		next.Profile.Name = name
		return Award{Changed: true}, nil
	})
	return a.Changed
}

// ToggleCourse flips a course between complete and incomplete, creating the
// enrollment on first use. Only the incomplete→complete edge awards the
// course points and the firstCourse badge; marking a course incomplete
// again keeps everything already granted. Unknown courses are ignored.
func (s *Store) ToggleCourse(ctx context.Context, courseID string) (domain.Enrollment, Award) {
	var enrollment domain.Enrollment
	a, _ := s.apply(ctx, "ToggleCourse", func(next *domain.Snapshot, cat *catalog.Catalog) (Award, error) {
		course, ok := cat.Course(courseID)
		if !ok {
			return Award{}, nil
		}
		if next.Enrolled == nil {
			next.Enrolled = map[string]domain.Enrollment{}
		}

		e := next.Enrolled[courseID]
		e.Done = !e.Done
		next.Enrolled[courseID] = e
		enrollment = e

		if !e.Done {
			return Award{Changed: true}, nil
		}
		return grant(next, course.Points, domain.BadgeFirstCourse), nil
	})
	if !a.Changed {
		enrollment = s.enrollment(courseID)
	}
	return enrollment, a
}

func (s *Store) enrollment(courseID string) domain.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Enrolled[courseID]
}

// SubmitQuiz scores a quiz verdict. A correct answer grants QuizPoints and
// quizWhiz; a wrong one changes nothing.
func (s *Store) SubmitQuiz(ctx context.Context, correct bool) Award {
	a, _ := s.apply(ctx, "SubmitQuiz", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		if !correct {
			return Award{}, nil
		}
		return grant(next, QuizPoints, domain.BadgeQuizWhiz), nil
	})
	return a
}

// AnswerQuiz checks answer against the catalog quiz and scores the verdict.
func (s *Store) AnswerQuiz(ctx context.Context, answer bool) (correct bool, a Award) {
	correct = answer == s.catalog.Current().Quiz.Answer
	return correct, s.SubmitQuiz(ctx, correct)
}

// CreateThread posts a forum thread at the top of the list. Title and body
// are trimmed and both are required.
func (s *Store) CreateThread(ctx context.Context, title, body string) (domain.Thread, Award, error) {
	title, body = strings.TrimSpace(title), strings.TrimSpace(body)

	var thread domain.Thread
	a, err := s.apply(ctx, "CreateThread", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		if title == "" {
			return Award{}, missing("CreateThread", "title")
		}
		if body == "" {
			return Award{}, missing("CreateThread", "body")
		}

		author := next.Profile.Name
		if author == "" {
			author = domain.AnonymousAuthor
		}
		thread = domain.Thread{
			ID:     s.uniqueID("f", threadIDs(next.Posts)),
			Author: author,
			Title:  title,
			Body:   body,
		}
		next.Posts = append([]domain.Thread{thread}, next.Posts...)
		return grant(next, ThreadPoints, domain.BadgeHelper), nil
	})
	return thread, a, err
}

// LikeThread adds a like. Unknown ids are ignored.
func (s *Store) LikeThread(ctx context.Context, threadID string) bool {
	a, _ := s.apply(ctx, "LikeThread", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		for i := range next.Posts {
			if next.Posts[i].ID == threadID {
				next.Posts[i].Likes++
				return Award{Changed: true}, nil
			}
		}
		return Award{}, nil
	})
	return a.Changed
}

// ShareIdea adds an idea at the top of the board with its author's vote.
func (s *Store) ShareIdea(ctx context.Context, title string) (domain.Idea, Award, error) {
	title = strings.TrimSpace(title)

	var idea domain.Idea
	a, err := s.apply(ctx, "ShareIdea", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		if title == "" {
			return Award{}, missing("ShareIdea", "title")
		}
		idea = domain.Idea{
			ID:    s.uniqueID("i", ideaIDs(next.Ideas)),
			Title: title,
			Votes: 1,
		}
		next.Ideas = append([]domain.Idea{idea}, next.Ideas...)
		return grant(next, IdeaPoints, domain.BadgeContributor), nil
	})
	return idea, a, err
}

// UpvoteIdea adds a vote. Unknown ids are ignored.
func (s *Store) UpvoteIdea(ctx context.Context, ideaID string) bool {
	a, _ := s.apply(ctx, "UpvoteIdea", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		for i := range next.Ideas {
			if next.Ideas[i].ID == ideaID {
				next.Ideas[i].Votes++
				return Award{Changed: true}, nil
			}
		}
		return Award{}, nil
	})
	return a.Changed
}

// AddToCart adds one unit of a product. Unknown products are ignored.
func (s *Store) AddToCart(ctx context.Context, productID string) Award {
	a, _ := s.apply(ctx, "AddToCart", func(next *domain.Snapshot, cat *catalog.Catalog) (Award, error) {
		if _, ok := cat.Product(productID); !ok {
			return Award{}, nil
		}

		found := false
		for i := range next.Cart {
			if next.Cart[i].ProductID == productID {
				next.Cart[i].Qty++
				found = true
				break
			}
		}
		if !found {
			next.Cart = append(next.Cart, domain.CartLine{ProductID: productID, Qty: 1})
		}
		return grant(next, CartPoints, domain.BadgeShopper), nil
	})
	return a
}

// RemoveFromCart drops the whole line for a product, whatever its quantity.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) bool {
	a, _ := s.apply(ctx, "RemoveFromCart", func(next *domain.Snapshot, _ *catalog.Catalog) (Award, error) {
		for i := range next.Cart {
			if next.Cart[i].ProductID == productID {
				next.Cart = append(next.Cart[:i], next.Cart[i+1:]...)
				return Award{Changed: true}, nil
			}
		}
		return Award{}, nil
	})
	return a.Changed
}

// uniqueID draws ids until one is not in taken.
func (s *Store) uniqueID(prefix string, taken map[string]bool) string {
	for {
		id := s.newID(prefix)
		if !taken[id] {
			return id
		}
	}
}

func threadIDs(posts []domain.Thread) map[string]bool {
	ids := make(map[string]bool, len(posts))
	for _, p := range posts {
		ids[p.ID] = true
	}
	return ids
}

func ideaIDs(ideas []domain.Idea) map[string]bool {
	ids := make(map[string]bool, len(ideas))
	for _, i := range ideas {
		ids[i.ID] = true
	}
	return ids
}
