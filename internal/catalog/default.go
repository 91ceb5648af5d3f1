package catalog

import "github.com/MrSnakeDoc/makerhub/internal/domain"

// Default returns the built-in MakerHub catalog. Each call returns a fresh
// copy.
func Default() *Catalog {
	return &Catalog{
		Courses: []domain.Course{
			{ID: "c1", Title: "Arduino Basics", Level: "Beginner", Points: 80, Lessons: 8,
				Blurb: "Learn microcontroller fundamentals and build your first LED + sensor project."},
			{ID: "c2", Title: "Robotics 101", Level: "Beginner", Points: 120, Lessons: 10,
				Blurb: "Intro to motors, drivers, and motion control. Build a line-following bot."},
			{ID: "c3", Title: "Web for Makers", Level: "Intermediate", Points: 150, Lessons: 12,
				Blurb: "Ship a fast portfolio and IoT dashboard with modern web tools."},
			{ID: "c4", Title: "AI for Students", Level: "Intermediate", Points: 180, Lessons: 9,
				Blurb: "Use LLMs responsibly for study, notes, Q&A and project ideation."},
		},
		Products: []domain.Product{
			{ID: "p1", Name: "ESP8266 NodeMCU", Price: 239, Tag: "Wi-Fi MCU"},
			{ID: "p2", Name: "HC-SR04 Sensor", Price: 89, Tag: "Distance"},
			{ID: "p3", Name: "L298N Motor Driver", Price: 179, Tag: "Motors"},
			{ID: "p4", Name: "Breadboard + Wires Kit", Price: 149, Tag: "Starter"},
			{ID: "p5", Name: "DHT11 Sensor", Price: 79, Tag: "Temp/Humidity"},
			{ID: "p6", Name: "SG90 Micro Servo", Price: 129, Tag: "Servo"},
		},
		Ranks: []domain.RankTier{
			{Key: "explorer", Name: "Explorer", Threshold: 0},
			{Key: "tinkerer", Name: "Tinkerer", Threshold: 100},
			{Key: "builder", Name: "Builder", Threshold: 300},
			{Key: "innovator", Name: "Innovator", Threshold: 700},
			{Key: "visionary", Name: "Visionary", Threshold: 1200},
		},
		Badges: []domain.BadgeDef{
			{Key: domain.BadgeFirstCourse, Label: "First Course", Hint: "Complete your first course"},
			{Key: domain.BadgeQuizWhiz, Label: "Quiz Whiz", Hint: "Ace a quiz"},
			{Key: domain.BadgeHelper, Label: "Helper", Hint: "Post in the forum"},
			{Key: domain.BadgeContributor, Label: "Contributor", Hint: "Share a project idea"},
			{Key: domain.BadgeShopper, Label: "Shopper", Hint: "Add something to cart"},
		},
		Blogs: []domain.BlogPost{
			{ID: "b1", Title: "Choosing Your First Microcontroller", Date: "2025-08-20", ReadMinutes: 5},
			{ID: "b2", Title: "What is an H-Bridge?", Date: "2025-08-11", ReadMinutes: 4},
			{ID: "b3", Title: "Study Smarter with AI (Safely)", Date: "2025-07-30", ReadMinutes: 6},
		},
		SamplePosts: []domain.Thread{
			{ID: "f1", Author: "Kiara", Title: "Help with line sensor on white tiles",
				Body: "My bot overshoots turns - any tips on thresholds?", Likes: 6},
			{ID: "f2", Author: "Aman", Title: "Best budget soldering iron in India?",
				Body: "I need something reliable for school projects.", Likes: 9},
		},
		SampleIdeas: []domain.Idea{
			{ID: "i1", Title: "Smart Plant Watering", Votes: 15},
			{ID: "i2", Title: "Accident Alert Helmet", Votes: 22},
			{ID: "i3", Title: "Smart Dustbin (Auto-open)", Votes: 18},
		},
		Quiz: domain.Quiz{
			Question: "Is an H-bridge used to control motor direction?",
			Answer:   true,
		},
	}
}
