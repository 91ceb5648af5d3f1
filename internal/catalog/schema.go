package catalog

import "github.com/MrSnakeDoc/makerhub/internal/domain"

// FileConfig is the root structure of catalog.yaml. Every section is
// optional; a missing section keeps the built-in default.
//
//	courses:
//	  - id: c1
//	    title: Arduino Basics
//	    points: 80
//	products:
//	  - { id: p1, name: ESP8266 NodeMCU, price: 239 }
//	ranks:
//	  - { key: explorer, name: Explorer, threshold: 0 }
type FileConfig struct {
	Courses     *[]domain.Course   `yaml:"courses"`
	Products    *[]domain.Product  `yaml:"products"`
	Ranks       *[]domain.RankTier `yaml:"ranks"`
	Badges      *[]domain.BadgeDef `yaml:"badges"`
	Blogs       *[]domain.BlogPost `yaml:"blogs"`
	SamplePosts *[]domain.Thread   `yaml:"samplePosts"`
	SampleIdeas *[]domain.Idea     `yaml:"sampleIdeas"`
	Quiz        *QuizConfig        `yaml:"quiz"`
}

// QuizConfig is the quiz section of catalog.yaml.
type QuizConfig struct {
	Question string `yaml:"question"`
	Answer   *bool  `yaml:"answer"`
}

// Merge overlays the sections present in fc onto base and returns the result.
func (fc FileConfig) Merge(base *Catalog) *Catalog {
	out := *base
	if fc.Courses != nil {
		out.Courses = *fc.Courses
	}
	if fc.Products != nil {
		out.Products = *fc.Products
	}
	if fc.Ranks != nil {
		out.Ranks = *fc.Ranks
	}
	if fc.Badges != nil {
		out.Badges = *fc.Badges
	}
	if fc.Blogs != nil {
		out.Blogs = *fc.Blogs
	}
	if fc.SamplePosts != nil {
		out.SamplePosts = *fc.SamplePosts
	}
	if fc.SampleIdeas != nil {
		out.SampleIdeas = *fc.SampleIdeas
	}
	if fc.Quiz != nil {
		if fc.Quiz.Question != "" {
			out.Quiz.Question = fc.Quiz.Question
		}
		if fc.Quiz.Answer != nil {
			out.Quiz.Answer = *fc.Quiz.Answer
		}
	}
	return &out
}
