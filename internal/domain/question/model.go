package question

// Difficulty tags a question for the console's filtering and for the AI
// generator's difficulty mix.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Question is a single prompt belonging to one interview.
type Question struct {
	ID          int64  `json:"id,omitempty"`
	InterviewID int64  `json:"interview_id"`
	Question    string `json:"question"`
	Difficulty  string `json:"difficulty"`
}

func ValidDifficulty(d string) bool {
	switch Difficulty(d) {
	case DifficultyEasy, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
