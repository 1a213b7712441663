package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/readysethire/readysethire/internal/domain/applicant"
	"github.com/readysethire/readysethire/internal/domain/interview"
	"github.com/readysethire/readysethire/internal/domain/question"
	"github.com/readysethire/readysethire/internal/repository"
	"github.com/readysethire/readysethire/internal/titlecache"
)

type InterviewService struct {
	Repos *repository.Repos
	Cache titlecache.Cache
}

// DeleteReport names the rows left behind by an interview deletion. The
// backend does not cascade, so questions and applicants keep referencing
// the deleted id; the console uses these counts to warn staff.
type DeleteReport struct {
	OrphanedQuestions  int `json:"orphaned_questions"`
	OrphanedApplicants int `json:"orphaned_applicants"`
}

func NewInterviewService(repos *repository.Repos, cache titlecache.Cache) *InterviewService {
	return &InterviewService{Repos: repos, Cache: cache}
}

// ListInterviews fetches the full collection and refreshes the title cache
// snapshot, keeping foreign-key display names resolvable elsewhere.
func (s *InterviewService) ListInterviews(ctx context.Context) ([]interview.Interview, error) {
	list, err := s.Repos.Interview.List(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Put(list)
	return list, nil
}

// ListWithStats joins the three collections fetched concurrently and
// computes per-interview question counts and the applicant completion
// breakdown in-process. The backend does no aggregation for us.
func (s *InterviewService) ListWithStats(ctx context.Context) ([]interview.Stats, error) {
	var (
		interviews []interview.Interview
		questions  []question.Question
		applicants []applicant.Applicant
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		interviews, err = s.Repos.Interview.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.Repos.Question.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		applicants, err = s.Repos.Applicant.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.Cache.Put(interviews)

	stats := make([]interview.Stats, 0, len(interviews))
	for _, in := range interviews {
		st := interview.Stats{Interview: in}
		for _, q := range questions {
			if q.InterviewID == in.ID {
				st.QuestionCount++
			}
		}
		for _, a := range applicants {
			if a.InterviewID != in.ID {
				continue
			}
			st.ApplicantCount++
			if a.Completed() {
				st.ApplicantsCompleted++
			} else {
				st.ApplicantsNotStarted++
			}
		}
		stats = append(stats, st)
	}
	return stats, nil
}

func (s *InterviewService) GetInterview(ctx context.Context, id int64) (interview.Interview, error) {
	return s.Repos.Interview.Get(ctx, id)
}

func (s *InterviewService) CreateInterview(ctx context.Context, input interview.CreateInterviewDTO) (interview.Interview, error) {
	var check draftCheck
	check.required("title", input.Title)
	check.required("job_role", input.JobRole)
	check.oneOf("status", input.Status, interview.ValidStatus, "Draft Published Archived")
	if err := check.result(); err != nil {
		return interview.Interview{}, err
	}

	return s.Repos.Interview.Create(ctx, interview.Interview{
		Title:       input.Title,
		JobRole:     input.JobRole,
		Description: input.Description,
		Status:      input.Status,
	})
}

func (s *InterviewService) UpdateInterview(ctx context.Context, id int64, input interview.UpdateInterviewDTO) (interview.Interview, error) {
	fields := map[string]any{}
	var check draftCheck
	if input.Title != nil {
		check.required("title", *input.Title)
		fields["title"] = *input.Title
	}
	if input.JobRole != nil {
		check.required("job_role", *input.JobRole)
		fields["job_role"] = *input.JobRole
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Status != nil {
		check.oneOf("status", *input.Status, interview.ValidStatus, "Draft Published Archived")
		fields["status"] = *input.Status
	}
	if err := check.result(); err != nil {
		return interview.Interview{}, err
	}
	if len(fields) == 0 {
		return s.Repos.Interview.Get(ctx, id)
	}
	return s.Repos.Interview.Update(ctx, id, fields)
}

// DeleteInterview removes the interview row only. Children are counted
// before the delete so the caller can report what was orphaned.
func (s *InterviewService) DeleteInterview(ctx context.Context, id int64) (DeleteReport, error) {
	var report DeleteReport
	if qs, err := s.Repos.Question.ListByInterview(ctx, id); err == nil {
		report.OrphanedQuestions = len(qs)
	}
	if as, err := s.Repos.Applicant.ListByInterview(ctx, id); err == nil {
		report.OrphanedApplicants = len(as)
	}
	if err := s.Repos.Interview.Delete(ctx, id); err != nil {
		return DeleteReport{}, err
	}
	return report, nil
}
