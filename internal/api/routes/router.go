package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/api/handlers"
	"github.com/readysethire/readysethire/internal/api/middleware"
	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/objectstore"
)

// RegisterRoutes wires the console API (JWT-protected) and the public
// take-interview session flow.
func RegisterRoutes(r *gin.Engine, services *application.Services, store *objectstore.Store) {
	handlers_instance := handlers.New(services, store)

	r.POST("/login", handlers_instance.Auth.Login)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers_instance.Auth.Status)

	// Public take-interview flow, reached via the shareable link.
	sessions := r.Group("/sessions")
	{
		sessions.POST("", handlers_instance.Session.StartSession)
		sessions.GET("/:token", handlers_instance.Session.GetSession)
		sessions.POST("/:token/navigate", handlers_instance.Session.Navigate)
		sessions.PUT("/:token/questions/:question_id/answer", handlers_instance.Session.SetAnswer)
		sessions.POST("/:token/questions/:question_id/recording/start", handlers_instance.Session.StartRecording)
		sessions.POST("/:token/questions/:question_id/recording/stop", handlers_instance.Session.StopRecording)
		sessions.POST("/:token/questions/:question_id/transcript", handlers_instance.Session.UpdateTranscript)
		sessions.POST("/:token/questions/:question_id/audio", handlers_instance.Session.UploadAudio)
		sessions.POST("/:token/submit", handlers_instance.Session.SubmitSession)
	}
	r.GET("/ws/sessions/:token/transcript", handlers_instance.Session.TranscriptWebSocketHandler)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		interviews := auth.Group("/interviews")
		{
			interviews.GET("", handlers_instance.Interview.GetInterviews)
			interviews.GET("/:id", handlers_instance.Interview.GetInterviewByID)
			interviews.POST("", handlers_instance.Interview.CreateInterview)
			interviews.PATCH("/:id", handlers_instance.Interview.UpdateInterview)
			interviews.DELETE("/:id", handlers_instance.Interview.DeleteInterview)
			interviews.POST("/:id/generate-questions", handlers_instance.Interview.GenerateQuestions)
		}

		questions := auth.Group("/questions")
		{
			questions.GET("", handlers_instance.Question.GetQuestions)
			questions.GET("/:id", handlers_instance.Question.GetQuestionByID)
			questions.POST("", handlers_instance.Question.CreateQuestion)
			questions.PATCH("/:id", handlers_instance.Question.UpdateQuestion)
			questions.DELETE("/:id", handlers_instance.Question.DeleteQuestion)
		}

		applicants := auth.Group("/applicants")
		{
			applicants.GET("", handlers_instance.Applicant.GetApplicants)
			applicants.GET("/:id", handlers_instance.Applicant.GetApplicantByID)
			applicants.POST("", handlers_instance.Applicant.CreateApplicant)
			applicants.PATCH("/:id", handlers_instance.Applicant.UpdateApplicant)
			applicants.DELETE("/:id", handlers_instance.Applicant.DeleteApplicant)
		}

		auth.GET("/dashboard", handlers_instance.Dashboard.GetDashboard)
	}
}
