package application

import (
	"context"

	"github.com/readysethire/readysethire/internal/domain/question"
	"github.com/readysethire/readysethire/internal/repository"
)

type QuestionService struct {
	Repos *repository.Repos
}

func NewQuestionService(repos *repository.Repos) *QuestionService {
	return &QuestionService{Repos: repos}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]question.Question, error) {
	return s.Repos.Question.List(ctx)
}

func (s *QuestionService) ListByInterview(ctx context.Context, interviewID int64) ([]question.Question, error) {
	return s.Repos.Question.ListByInterview(ctx, interviewID)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id int64) (question.Question, error) {
	return s.Repos.Question.Get(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, input question.CreateQuestionDTO) (question.Question, error) {
	var check draftCheck
	check.reference("interview_id", input.InterviewID)
	check.required("question", input.Question)
	check.oneOf("difficulty", input.Difficulty, question.ValidDifficulty, "Easy Intermediate Advanced")
	if err := check.result(); err != nil {
		return question.Question{}, err
	}

	return s.Repos.Question.Create(ctx, question.Question{
		InterviewID: input.InterviewID,
		Question:    input.Question,
		Difficulty:  input.Difficulty,
	})
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id int64, input question.UpdateQuestionDTO) (question.Question, error) {
	fields := map[string]any{}
	var check draftCheck
	if input.Question != nil {
		check.required("question", *input.Question)
		fields["question"] = *input.Question
	}
	if input.Difficulty != nil {
		check.oneOf("difficulty", *input.Difficulty, question.ValidDifficulty, "Easy Intermediate Advanced")
		fields["difficulty"] = *input.Difficulty
	}
	if err := check.result(); err != nil {
		return question.Question{}, err
	}
	if len(fields) == 0 {
		return s.Repos.Question.Get(ctx, id)
	}
	return s.Repos.Question.Update(ctx, id, fields)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.Repos.Question.Delete(ctx, id)
}
