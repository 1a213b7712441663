package question

type CreateQuestionDTO struct {
	InterviewID int64  `json:"interview_id" form:"interview_id" binding:"required"`
	Question    string `json:"question" form:"question" binding:"required"`
	Difficulty  string `json:"difficulty" form:"difficulty" binding:"required,oneof=Easy Intermediate Advanced"`
}

type UpdateQuestionDTO struct {
	Question   *string `json:"question,omitempty" form:"question,omitempty"`
	Difficulty *string `json:"difficulty,omitempty" form:"difficulty,omitempty" binding:"omitempty,oneof=Easy Intermediate Advanced"`
}

// GenerateQuestionsDTO asks the AI generator for a question set.
type GenerateQuestionsDTO struct {
	Count int `json:"count" form:"count"`
}
