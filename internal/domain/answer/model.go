package answer

// Answer is the recorded response an applicant gave to one question: typed
// text, a speech transcript, or both joined by a separator. One row per
// answered question per submission; submission replaces any prior rows for
// the applicant so (applicant_id, question_id) stays unique.
type Answer struct {
	ID          int64  `json:"id,omitempty"`
	ApplicantID int64  `json:"applicant_id"`
	InterviewID int64  `json:"interview_id"`
	QuestionID  int64  `json:"question_id"`
	Answer      string `json:"answer"`
	AudioObject string `json:"audio_object,omitempty"`
}
