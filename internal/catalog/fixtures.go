package catalog

// Courses returns the built-in course catalog. Callers must treat the
// result as read-only.
func Courses() []Course {
	return courses
}

// CourseByID returns the catalog course with the given id, or nil.
func CourseByID(id string) *Course {
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i]
		}
	}
	return nil
}

var courses = []Course{
	{
		ID:              "1",
		Title:           "Enterprise Architecture with ASP.NET Core 8",
		Instructor:      "Dr. Michael Chen",
		InstructorTitle: "Principal Software Architect",
		Description:     "A comprehensive guide to building resilient enterprise applications using the latest .NET standards. Learn Clean Architecture, DDD, and Event Sourcing.",
		Price:           99.99,
		Category:        "Backend",
		Rating:          4.9,
		ReviewCount:     450,
		StudentCount:    2450,
		Level:           LevelAdvanced,
		Tags:            []string{"C#", ".NET", "Microservices"},
		Lessons: []Lesson{
			{
				ID:       "l1",
				Title:    "Introduction to Modular Monoliths",
				Duration: "15:20",
				Content:  "Modular monoliths provide a great balance between maintainability and deployment simplicity...",
				Quiz: &Quiz{
					ID:    "q1",
					Title: "Monolith Patterns",
					Questions: []QuizQuestion{
						{
							ID:            "q1_1",
							Question:      "What is the key benefit of a Modular Monolith?",
							Options:       []string{"Faster DB", "Logical separation", "No network lag", "Cheap hosting"},
							CorrectAnswer: 1,
						},
					},
				},
			},
			{
				ID:       "l2",
				Title:    "Infrastructure Persistence Patterns",
				Duration: "22:10",
				Content:  "In this lesson we explore Repository and Unit of Work patterns...",
			},
		},
	},
	{
		ID:              "2",
		Title:           "Advanced UX/UI Design Patterns",
		Instructor:      "Sarah Jenkins",
		InstructorTitle: "Senior Product Designer",
		Description:     "Master the art of creating intuitive user interfaces. Deep dive into Material 3, cognitive load theories, and motion design.",
		Price:           49.00,
		Category:        "Design",
		Rating:          4.8,
		ReviewCount:     320,
		StudentCount:    1820,
		Level:           LevelIntermediate,
		Tags:            []string{"Figma", "UX Research", "Material 3"},
		Lessons: []Lesson{
			{
				ID:       "l3",
				Title:    "The Psychology of Color",
				Duration: "18:45",
				Content:  "Color is more than just aesthetic; it is a communication tool...",
			},
		},
	},
	{
		ID:              "3",
		Title:           "Cloud Native Go Services",
		Instructor:      "Priya Raman",
		InstructorTitle: "Staff Platform Engineer",
		Description:     "Design, ship and operate production Go services. Covers service boundaries, observability, and graceful degradation under load.",
		Price:           0,
		IsFree:          true,
		Category:        "Backend",
		Rating:          4.7,
		ReviewCount:     280,
		StudentCount:    3100,
		Level:           LevelIntermediate,
		Tags:            []string{"Go", "Kubernetes", "gRPC"},
		Lessons: []Lesson{
			{
				ID:       "l4",
				Title:    "Service Boundaries and Contracts",
				Duration: "19:30",
				Content:  "Well-drawn service boundaries keep coupling low and deployments independent...",
			},
			{
				ID:       "l5",
				Title:    "Designing for Failure",
				Duration: "24:05",
				Content:  "Every network call fails eventually. Timeouts, retries and circuit breakers are the tools...",
				Quiz: &Quiz{
					ID:    "q2",
					Title: "Resilience Essentials",
					Questions: []QuizQuestion{
						{
							ID:            "q2_1",
							Question:      "What does a circuit breaker protect against?",
							Options:       []string{"Slow compiles", "Cascading failures", "Memory leaks", "Large binaries"},
							CorrectAnswer: 1,
						},
						{
							ID:            "q2_2",
							Question:      "A sensible default for an outbound HTTP call is:",
							Options:       []string{"No timeout", "A bounded timeout", "Infinite retries", "Blocking forever"},
							CorrectAnswer: 1,
						},
						{
							ID:            "q2_3",
							Question:      "Retrying a non-idempotent request risks:",
							Options:       []string{"Duplicate side effects", "Faster responses", "Lower latency", "Nothing"},
							CorrectAnswer: 0,
						},
					},
				},
			},
		},
	},
}
