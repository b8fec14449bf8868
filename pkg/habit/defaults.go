package habit

// Defaults returns the sample collection used when nothing usable is
// persisted. Each call returns fresh slices.
func Defaults() []Habit {
	return []Habit{
		{
			ID:       1,
			Name:     "Morning Meditation",
			Category: "Mindfulness",
			Streak:   12,
			History:  pattern("111111111111011111111111111110"),
			Notes:    "Ten minutes before coffee.",
			Tags:     []string{"morning", "calm"},
			Icon:     "🧘",
		},
		{
			ID:        2,
			Name:      "Read 20 Pages",
			Category:  "Learning",
			Completed: true,
			Streak:    8,
			History:   pattern("101101110111011101111011111111"),
			Notes:     "",
			Tags:      []string{"books"},
			Icon:      "📚",
		},
		{
			ID:       3,
			Name:     "Drink 8 Glasses of Water",
			Category: "Health",
			Streak:   4,
			History:  pattern("110111011110111101110111101110"),
			Tags:     []string{"health"},
			Icon:     "💧",
		},
		{
			ID:        4,
			Name:      "Exercise 30 Minutes",
			Category:  "Fitness",
			Completed: true,
			Streak:    21,
			History:   pattern("011111111111111111111111111111"),
			Notes:     "Run on weekdays, climb on weekends.",
			Tags:      []string{"fitness", "cardio"},
			Icon:      "🏃",
		},
		{
			ID:       5,
			Name:     "Journal",
			Category: "Mindfulness",
			Streak:   0,
			History:  pattern("100100010010001001000100100010"),
			Tags:     []string{"evening"},
			Icon:     "📝",
		},
		{
			ID:       6,
			Name:     "No Phone After 10pm",
			Category: "Sleep",
			Streak:   2,
			History:  pattern("001101101100110110011011001110"),
			Tags:     []string{},
			Icon:     "🌙",
		},
	}
}

func pattern(s string) []int {
	out := make([]int, len(s))
	for i, r := range s {
		if r == '1' {
			out[i] = 1
		}
	}
	return out
}
