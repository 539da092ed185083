package store

import "github.com/campusconnect/board/internal/models"

// SamplePosts returns the fixed seed set used whenever no usable post
// collection is stored, newest first.
func SamplePosts() []models.Post {
	return []models.Post{
		{
			ID:             1,
			Title:          "Looking for React Developer for E-commerce Project",
			Category:       models.CategoryProject,
			Content:        "We're building a modern e-commerce platform using React and Node.js. Looking for a frontend developer with experience in React hooks, Redux, and modern CSS frameworks. Project duration: 3 months.",
			Tags:           []string{"React", "JavaScript", "E-commerce", "Frontend"},
			Author:         "Sarah Johnson",
			AuthorInitials: "SJ",
			Date:           "2024-01-15",
			Likes:          12,
			Comments:       5,
		},
		{
			ID:             2,
			Title:          "Study Group for Machine Learning Course",
			Category:       models.CategoryStudy,
			Content:        "Forming a study group for CS 229 Machine Learning. We meet twice a week to discuss assignments and prepare for exams. All skill levels welcome!",
			Tags:           []string{"Machine Learning", "Study Group", "CS 229"},
			Author:         "Mike Chen",
			AuthorInitials: "MC",
			Date:           "2024-01-14",
			Likes:          8,
			Comments:       3,
		},
		{
			ID:             3,
			Title:          "Free Python Tutorial Resources",
			Category:       models.CategoryResource,
			Content:        "Sharing a collection of free Python tutorials and coding challenges. Perfect for beginners and intermediate learners. Includes data structures, algorithms, and web development.",
			Tags:           []string{"Python", "Tutorial", "Programming", "Free"},
			Author:         "Alex Rodriguez",
			AuthorInitials: "AR",
			Date:           "2024-01-13",
			Likes:          15,
			Comments:       7,
		},
		{
			ID:             4,
			Title:          "Tech Talk: Future of AI in Healthcare",
			Category:       models.CategoryEvent,
			Content:        "Join us for an exciting tech talk by Dr. Emily Watson on AI applications in healthcare. Free pizza and networking after the talk!",
			Tags:           []string{"AI", "Healthcare", "Tech Talk", "Networking"},
			Author:         "Tech Society",
			AuthorInitials: "TS",
			Date:           "2024-01-12",
			Likes:          20,
			Comments:       12,
		},
		{
			ID:             5,
			Title:          "Mobile App Development Team Needed",
			Category:       models.CategoryProject,
			Content:        "Looking for iOS and Android developers to join our startup team. We're building a social networking app for students. Equity-based compensation available.",
			Tags:           []string{"Mobile", "iOS", "Android", "Startup"},
			Author:         "David Kim",
			AuthorInitials: "DK",
			Date:           "2024-01-11",
			Likes:          6,
			Comments:       4,
		},
		{
			ID:             6,
			Title:          "Database Design Study Materials",
			Category:       models.CategoryResource,
			Content:        "Comprehensive notes and practice problems for Database Systems course. Covers SQL, normalization, indexing, and query optimization.",
			Tags:           []string{"Database", "SQL", "Study Materials", "CS 145"},
			Author:         "Lisa Wang",
			AuthorInitials: "LW",
			Date:           "2024-01-10",
			Likes:          9,
			Comments:       2,
		},
	}
}
