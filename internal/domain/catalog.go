package domain

// Course is a mini-course from the learning catalog.
// Completing it for the first time grants Points to the profile.
type Course struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Level   string `json:"level" yaml:"level"`
	Points  int    `json:"points" yaml:"points"`
	Lessons int    `json:"lessons" yaml:"lessons"`
	Blurb   string `json:"blurb" yaml:"blurb"`
}

// Product is a shop item. Price is in whole rupees.
type Product struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Price int    `json:"price" yaml:"price"`
	Tag   string `json:"tag" yaml:"tag"`
}

// RankTier is a named level unlocked at Threshold points.
type RankTier struct {
	Key       string `json:"key" yaml:"key"`
	Name      string `json:"name" yaml:"name"`
	Threshold int    `json:"threshold" yaml:"threshold"`
}

// BadgeDef describes a badge that can be earned.
type BadgeDef struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Hint  string `json:"hint" yaml:"hint"`
}

// BlogPost is a read-only article teaser.
type BlogPost struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"`
	ReadMinutes int    `json:"read" yaml:"read"`
}

// Quiz is the yes/no question asked on the learn page.
type Quiz struct {
	Question string `json:"question" yaml:"question"`
	Answer   bool   `json:"-" yaml:"answer"`
}

// Badge keys awarded by session actions.
const (
	BadgeFirstCourse = "firstCourse"
	BadgeQuizWhiz    = "quizWhiz"
	BadgeHelper      = "helper"
	BadgeContributor = "contributor"
	BadgeShopper     = "shopper"
)
