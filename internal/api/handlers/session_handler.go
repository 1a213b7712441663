package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/objectstore"
	"github.com/readysethire/readysethire/pkg/response"
)

// SessionHandler serves the public take-interview flow. No JWT: access is
// the shareable link's applicant id plus the opaque session token.
type SessionHandler struct {
	svc   *application.SessionService
	store *objectstore.Store
}

func NewSessionHandler(svc *application.SessionService, store *objectstore.Store) *SessionHandler {
	return &SessionHandler{svc: svc, store: store}
}

// StartSession godoc
// @Summary Start a take-interview session for an applicant
// @Tags sessions
// @Accept json
// @Produce json
// @Success 201 {object} application.SessionView
// @Failure 404 {object} response.ErrorResponse "Unknown applicant or empty interview"
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req struct {
		ApplicantID int64 `json:"applicant_id" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "applicant_id is required"})
		return
	}

	view, err := h.svc.Start(c.Request.Context(), req.ApplicantID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /sessions/:token
func (h *SessionHandler) GetSession(c *gin.Context) {
	view, err := h.svc.Get(c.Param("token"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /sessions/:token/navigate
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required,oneof=next previous"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "direction must be next or previous"})
		return
	}
	delta := 1
	if req.Direction == "previous" {
		delta = -1
	}
	view, err := h.svc.Navigate(c.Param("token"), delta)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /sessions/:token/questions/:question_id/answer
func (h *SessionHandler) SetAnswer(c *gin.Context) {
	questionID, err := parseQuestionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	view, err := h.svc.SetTypedAnswer(c.Param("token"), questionID, req.Text)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /sessions/:token/questions/:question_id/recording/start
func (h *SessionHandler) StartRecording(c *gin.Context) {
	questionID, err := parseQuestionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}
	view, err := h.svc.StartRecording(c.Param("token"), questionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /sessions/:token/questions/:question_id/recording/stop
func (h *SessionHandler) StopRecording(c *gin.Context) {
	questionID, err := parseQuestionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}
	view, err := h.svc.StopRecording(c.Param("token"), questionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateTranscript is the REST fallback for clients without websocket
// support; each call carries the full transcript so far.
func (h *SessionHandler) UpdateTranscript(c *gin.Context) {
	questionID, err := parseQuestionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}
	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	view, err := h.svc.UpdateTranscript(c.Param("token"), questionID, req.Transcript)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UploadAudio godoc
// @Summary Attach the captured audio blob for one question
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Router /sessions/{token}/questions/{question_id}/audio [post]
func (h *SessionHandler) UploadAudio(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "audio storage is not configured"})
		return
	}
	questionID, err := parseQuestionID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid question id"})
		return
	}

	view, err := h.svc.Get(c.Param("token"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "audio file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/webm"
	}

	objectName := objectstore.RecordingObjectName(view.Applicant.ID, questionID)
	if err := h.store.Upload(c.Request.Context(), objectName, contentType, file, header.Size); err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: "audio upload failed: " + err.Error()})
		return
	}

	updated, err := h.svc.AttachAudio(c.Param("token"), questionID, objectName)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SubmitSession godoc
// @Summary Submit all answered questions and complete the interview
// @Tags sessions
// @Produce json
// @Success 200 {object} application.SubmissionResult
// @Failure 400 {object} response.ErrorResponse "No question has any content"
// @Failure 409 {object} response.ErrorResponse "Already submitted"
// @Router /sessions/{token}/submit [post]
func (h *SessionHandler) SubmitSession(c *gin.Context) {
	result, err := h.svc.Submit(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SessionHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrSessionNotFound),
		errors.Is(err, application.ErrNoQuestions),
		errors.Is(err, application.ErrUnknownQuestion):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrRecordingBusy),
		errors.Is(err, application.ErrNotRecording),
		errors.Is(err, application.ErrSessionComplete):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNoAnswers):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		respondError(c, err)
	}
}

func parseQuestionID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("question_id"), 10, 64)
}
