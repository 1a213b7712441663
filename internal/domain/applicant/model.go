package applicant

// InterviewStatus only moves forward: Not Started -> Completed, flipped by a
// successful interview submission.
type InterviewStatus string

const (
	StatusNotStarted InterviewStatus = "Not Started"
	StatusCompleted  InterviewStatus = "Completed"
)

// Applicant is a candidate invited to answer one interview's questions via a
// shareable link.
type Applicant struct {
	ID              int64  `json:"id,omitempty"`
	Title           string `json:"title"`
	Firstname       string `json:"firstname"`
	Surname         string `json:"surname"`
	PhoneNumber     string `json:"phone_number"`
	EmailAddress    string `json:"email_address"`
	InterviewID     int64  `json:"interview_id"`
	InterviewStatus string `json:"interview_status"`
}

func (a Applicant) Completed() bool {
	return a.InterviewStatus == string(StatusCompleted)
}
