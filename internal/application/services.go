package application

import (
	"github.com/readysethire/readysethire/internal/repository"
	"github.com/readysethire/readysethire/internal/titlecache"
)

type Services struct {
	Interview *InterviewService
	Question  *QuestionService
	Applicant *ApplicantService
	Session   *SessionService
	Generator *GeneratorService
}

func New(repos *repository.Repos, cache titlecache.Cache, generator *GeneratorService) *Services {
	return &Services{
		Interview: NewInterviewService(repos, cache),
		Question:  NewQuestionService(repos),
		Applicant: NewApplicantService(repos, cache),
		Session:   NewSessionService(repos),
		Generator: generator,
	}
}
