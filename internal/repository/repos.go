// Package repository maps entity operations onto PostgREST resource paths.
// Scoped reads use the backend's equality filter convention
// (?field=eq.value); no pagination or sorting is requested, the backend's
// default ordering is relied upon as-is.
package repository

import (
	"github.com/readysethire/readysethire/internal/postgrest"
)

type Repos struct {
	Interview InterviewRepo
	Question  QuestionRepo
	Applicant ApplicantRepo
	Answer    AnswerRepo
}

func New(client *postgrest.Client) *Repos {
	return &Repos{
		Interview: NewInterviewRepo(client),
		Question:  NewQuestionRepo(client),
		Applicant: NewApplicantRepo(client),
		Answer:    NewAnswerRepo(client),
	}
}
