package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/domain/question"
	"github.com/readysethire/readysethire/pkg/response"
)

type QuestionHandler struct {
	svc *application.QuestionService
}

func NewQuestionHandler(svc *application.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// GET /questions?interview_id=4
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	if raw := c.Query("interview_id"); raw != "" {
		interviewID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid interview_id"})
			return
		}
		list, err := h.svc.ListByInterview(c.Request.Context(), interviewID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := h.svc.ListQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /questions/:id
func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}
	q, err := h.svc.GetQuestion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// CreateQuestion godoc
// @Summary Create question
// @Tags questions
// @Accept json
// @Produce json
// @Param input body question.CreateQuestionDTO true "Question fields"
// @Success 201 {object} question.Question
// @Failure 400 {object} response.ValidationResponse "Invalid fields"
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input question.CreateQuestionDTO
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.svc.CreateQuestion(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /questions/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}
	var input question.UpdateQuestionDTO
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.svc.UpdateQuestion(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}
	if err := h.svc.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
