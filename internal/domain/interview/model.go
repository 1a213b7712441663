package interview

// Status is the publication state of an interview template.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusPublished Status = "Published"
	StatusArchived  Status = "Archived"
)

// Interview is a reusable template of questions and metadata used for
// screening applicants. Rows are stored by the PostgREST backend.
type Interview struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	JobRole     string `json:"job_role"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Stats is the per-interview breakdown the console dashboard shows. It is
// computed in-process from the full question and applicant collections.
type Stats struct {
	Interview
	QuestionCount        int `json:"question_count"`
	ApplicantCount       int `json:"applicant_count"`
	ApplicantsNotStarted int `json:"applicants_not_started"`
	ApplicantsCompleted  int `json:"applicants_completed"`
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
