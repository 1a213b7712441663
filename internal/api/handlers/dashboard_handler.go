package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/application"
)

type DashboardHandler struct {
	svc *application.InterviewService
}

func NewDashboardHandler(svc *application.InterviewService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetDashboard godoc
// @Summary Console dashboard totals
// @Description Joins the interview, question and applicant collections and
// @Description aggregates them in-process; the backend does no aggregation.
// @Tags dashboard
// @Produce json
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	stats, err := h.svc.ListWithStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var questions, applicants, completed int
	for _, st := range stats {
		questions += st.QuestionCount
		applicants += st.ApplicantCount
		completed += st.ApplicantsCompleted
	}

	c.JSON(http.StatusOK, gin.H{
		"interviews":           len(stats),
		"questions":            questions,
		"applicants":           applicants,
		"applicants_completed": completed,
		"per_interview":        stats,
	})
}
