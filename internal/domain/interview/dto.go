package interview

type CreateInterviewDTO struct {
	Title       string `json:"title" form:"title" binding:"required"`
	JobRole     string `json:"job_role" form:"job_role" binding:"required"`
	Description string `json:"description" form:"description"`
	Status      string `json:"status" form:"status" binding:"required,oneof=Draft Published Archived"`
}

type UpdateInterviewDTO struct {
	Title       *string `json:"title,omitempty" form:"title,omitempty"`
	JobRole     *string `json:"job_role,omitempty" form:"job_role,omitempty"`
	Description *string `json:"description,omitempty" form:"description,omitempty"`
	Status      *string `json:"status,omitempty" form:"status,omitempty" binding:"omitempty,oneof=Draft Published Archived"`
}
