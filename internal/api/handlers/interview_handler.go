package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/domain/interview"
	"github.com/readysethire/readysethire/internal/domain/question"
	"github.com/readysethire/readysethire/pkg/response"
)

type InterviewHandler struct {
	svc *application.InterviewService
	gen *application.GeneratorService
}

func NewInterviewHandler(svc *application.InterviewService, gen *application.GeneratorService) *InterviewHandler {
	return &InterviewHandler{svc: svc, gen: gen}
}

// GetInterviews godoc
// @Summary List interviews with question and applicant counts
// @Tags interviews
// @Produce json
// @Success 200 {array} interview.Stats
// @Failure 502 {object} response.ErrorResponse "Backend error"
// @Router /interviews [get]
func (h *InterviewHandler) GetInterviews(c *gin.Context) {
	stats, err := h.svc.ListWithStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /interviews/:id
func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid interview id"})
		return
	}
	in, err := h.svc.GetInterview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

// CreateInterview godoc
// @Summary Create interview
// @Tags interviews
// @Accept json
// @Produce json
// @Param input body interview.CreateInterviewDTO true "Interview fields"
// @Success 201 {object} interview.Interview
// @Failure 400 {object} response.ValidationResponse "Invalid fields"
// @Router /interviews [post]
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	var input interview.CreateInterviewDTO
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.svc.CreateInterview(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /interviews/:id
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid interview id"})
		return
	}
	var input interview.UpdateInterviewDTO
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.svc.UpdateInterview(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteInterview godoc
// @Summary Delete interview
// @Description Deletes the interview row only; questions and applicants are
// @Description not cascaded and the response reports what was orphaned.
// @Tags interviews
// @Produce json
// @Success 200 {object} application.DeleteReport
// @Failure 400 {object} response.ErrorResponse "Invalid id"
// @Router /interviews/{id} [delete]
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid interview id"})
		return
	}
	report, err := h.svc.DeleteInterview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /interviews/:id/generate-questions
func (h *InterviewHandler) GenerateQuestions(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid interview id"})
		return
	}
	in, err := h.svc.GetInterview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Body is optional; an empty count falls back to the bank size.
	var input question.GenerateQuestionsDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}

	generated := h.gen.GenerateInterviewQuestions(c.Request.Context(), in.JobRole, in.Description, input.Count)
	c.JSON(http.StatusOK, gin.H{"interview_id": id, "questions": generated})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
