package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/domain/applicant"
	"github.com/readysethire/readysethire/pkg/response"
)

type ApplicantHandler struct {
	svc *application.ApplicantService
}

func NewApplicantHandler(svc *application.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{svc: svc}
}

// GetApplicants godoc
// @Summary List applicants with resolved interview titles
// @Tags applicants
// @Produce json
// @Success 200 {array} application.ApplicantRow
// @Router /applicants [get]
func (h *ApplicantHandler) GetApplicants(c *gin.Context) {
	rows, err := h.svc.ListApplicants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /applicants/:id
func (h *ApplicantHandler) GetApplicantByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid applicant id"})
		return
	}
	a, err := h.svc.GetApplicant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /applicants
func (h *ApplicantHandler) CreateApplicant(c *gin.Context) {
	var input applicant.CreateApplicantDTO
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := h.svc.CreateApplicant(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /applicants/:id
func (h *ApplicantHandler) UpdateApplicant(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid applicant id"})
		return
	}
	var input applicant.UpdateApplicantDTO
	if err := c.ShouldBind(&input); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.svc.UpdateApplicant(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /applicants/:id
func (h *ApplicantHandler) DeleteApplicant(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid applicant id"})
		return
	}
	if err := h.svc.DeleteApplicant(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
