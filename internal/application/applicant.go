package application

import (
	"context"

	"github.com/readysethire/readysethire/internal/domain/applicant"
	"github.com/readysethire/readysethire/internal/repository"
	"github.com/readysethire/readysethire/internal/titlecache"
)

type ApplicantService struct {
	Repos *repository.Repos
	Cache titlecache.Cache
}

func NewApplicantService(repos *repository.Repos, cache titlecache.Cache) *ApplicantService {
	return &ApplicantService{Repos: repos, Cache: cache}
}

// ApplicantRow is an applicant joined with the resolved interview display
// name. Resolution reads the title cache only; a cold cache yields a
// placeholder rather than a fetch.
type ApplicantRow struct {
	applicant.Applicant
	InterviewTitle string `json:"interview_title"`
}

func (s *ApplicantService) ListApplicants(ctx context.Context) ([]ApplicantRow, error) {
	list, err := s.Repos.Applicant.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ApplicantRow, 0, len(list))
	for _, a := range list {
		rows = append(rows, ApplicantRow{
			Applicant:      a,
			InterviewTitle: s.Cache.Resolve(a.InterviewID),
		})
	}
	return rows, nil
}

func (s *ApplicantService) GetApplicant(ctx context.Context, id int64) (applicant.Applicant, error) {
	return s.Repos.Applicant.Get(ctx, id)
}

func (s *ApplicantService) CreateApplicant(ctx context.Context, input applicant.CreateApplicantDTO) (applicant.Applicant, error) {
	var check draftCheck
	check.required("title", input.Title)
	check.required("firstname", input.Firstname)
	check.required("surname", input.Surname)
	check.required("phone_number", input.PhoneNumber)
	check.email("email_address", input.EmailAddress)
	check.reference("interview_id", input.InterviewID)
	if err := check.result(); err != nil {
		return applicant.Applicant{}, err
	}

	return s.Repos.Applicant.Create(ctx, applicant.Applicant{
		Title:           input.Title,
		Firstname:       input.Firstname,
		Surname:         input.Surname,
		PhoneNumber:     input.PhoneNumber,
		EmailAddress:    input.EmailAddress,
		InterviewID:     input.InterviewID,
		InterviewStatus: string(applicant.StatusNotStarted),
	})
}

// UpdateApplicant edits contact fields. interview_status is deliberately not
// editable here: the only transition is Not Started -> Completed, performed
// by the session flow on submission.
func (s *ApplicantService) UpdateApplicant(ctx context.Context, id int64, input applicant.UpdateApplicantDTO) (applicant.Applicant, error) {
	fields := map[string]any{}
	var check draftCheck
	if input.Title != nil {
		check.required("title", *input.Title)
		fields["title"] = *input.Title
	}
	if input.Firstname != nil {
		check.required("firstname", *input.Firstname)
		fields["firstname"] = *input.Firstname
	}
	if input.Surname != nil {
		check.required("surname", *input.Surname)
		fields["surname"] = *input.Surname
	}
	if input.PhoneNumber != nil {
		check.required("phone_number", *input.PhoneNumber)
		fields["phone_number"] = *input.PhoneNumber
	}
	if input.EmailAddress != nil {
		check.email("email_address", *input.EmailAddress)
		fields["email_address"] = *input.EmailAddress
	}
	if input.InterviewID != nil {
		check.reference("interview_id", *input.InterviewID)
		fields["interview_id"] = *input.InterviewID
	}
	if err := check.result(); err != nil {
		return applicant.Applicant{}, err
	}
	if len(fields) == 0 {
		return s.Repos.Applicant.Get(ctx, id)
	}
	return s.Repos.Applicant.Update(ctx, id, fields)
}

func (s *ApplicantService) DeleteApplicant(ctx context.Context, id int64) error {
	return s.Repos.Applicant.Delete(ctx, id)
}
