package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/objectstore"
	"github.com/readysethire/readysethire/internal/postgrest"
	"github.com/readysethire/readysethire/internal/repository"
	"github.com/readysethire/readysethire/pkg/response"
)

type Handlers struct {
	Auth      *AuthHandler
	Interview *InterviewHandler
	Question  *QuestionHandler
	Applicant *ApplicantHandler
	Dashboard *DashboardHandler
	Session   *SessionHandler
}

func New(services *application.Services, store *objectstore.Store) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(),
		Interview: NewInterviewHandler(services.Interview, services.Generator),
		Question:  NewQuestionHandler(services.Question),
		Applicant: NewApplicantHandler(services.Applicant),
		Dashboard: NewDashboardHandler(services.Interview),
		Session:   NewSessionHandler(services.Session, store),
	}
}

// respondError maps application errors onto HTTP statuses. Backend errors
// keep their original status and raw body so the console can show them
// verbatim; nothing here is retried.
func respondError(c *gin.Context, err error) {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ValidationResponse{
			Error:  verr.Error(),
			Fields: fieldErrors(verr),
		})
		return
	}

	var apiErr *postgrest.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, response.ErrorResponse{Error: apiErr.Error()})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
}

func fieldErrors(verr *application.ValidationError) []response.FieldError {
	out := make([]response.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, response.FieldError{Field: f.Field, Message: f.Message})
	}
	return out
}

var fieldLabels = map[string]string{
	"Title":        "title",
	"JobRole":      "job role",
	"Description":  "description",
	"Status":       "status",
	"Question":     "question",
	"Difficulty":   "difficulty",
	"InterviewID":  "interview",
	"Firstname":    "first name",
	"Surname":      "surname",
	"PhoneNumber":  "phone number",
	"EmailAddress": "email address",
	"Username":     "username",
	"Password":     "password",
}

// respondBindError turns binding failures into friendly validation messages
// for the frontend instead of validator's struct-path errors.
func respondBindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl, ok := fieldLabels[fe.StructField()]
		if !ok {
			lbl = strings.ToLower(fe.StructField())
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", lbl))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", lbl))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", lbl, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", lbl))
		}
	}
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
}
