package applicant

type CreateApplicantDTO struct {
	Title        string `json:"title" form:"title" binding:"required"`
	Firstname    string `json:"firstname" form:"firstname" binding:"required"`
	Surname      string `json:"surname" form:"surname" binding:"required"`
	PhoneNumber  string `json:"phone_number" form:"phone_number" binding:"required"`
	EmailAddress string `json:"email_address" form:"email_address" binding:"required,email"`
	InterviewID  int64  `json:"interview_id" form:"interview_id" binding:"required"`
}

type UpdateApplicantDTO struct {
	Title        *string `json:"title,omitempty" form:"title,omitempty"`
	Firstname    *string `json:"firstname,omitempty" form:"firstname,omitempty"`
	Surname      *string `json:"surname,omitempty" form:"surname,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty" form:"phone_number,omitempty"`
	EmailAddress *string `json:"email_address,omitempty" form:"email_address,omitempty" binding:"omitempty,email"`
	InterviewID  *int64  `json:"interview_id,omitempty" form:"interview_id,omitempty"`
}
