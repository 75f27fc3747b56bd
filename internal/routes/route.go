package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mentorbay/api/internal/container"
	"github.com/mentorbay/api/internal/handlers"
	"github.com/mentorbay/api/internal/middleware"
	"github.com/mentorbay/api/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(cn *container.Container, frontendURL string) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(cn.Logger))
	r.Use(middleware.ErrorHandler(cn.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "mentorbay-api",
			})
		})

		// public routes
		auth := v1.Group("/")
		auth.Use(middleware.RateLimit())
		{
			auth.POST("/login", handlers.Login(cn.ProfileService))
			auth.POST("/refresh", handlers.Refresh(cn.ProfileService))
			auth.POST("/logout", handlers.Logout())

			// Two-step mentor/seeker signup flow. The flow token returned by
			// the start call keys every later step.
			auth.POST("/register", handlers.StartRegistration(cn.RegistrationService))
			auth.POST("/register/:token/expertise", handlers.SaveRegistrationExpertise(cn.RegistrationService))
			auth.POST("/register/:token/back", handlers.RegistrationBack(cn.RegistrationService))
			auth.POST("/register/:token/submit", handlers.SubmitRegistration(cn.RegistrationService))

			auth.POST("/corporate-signups", handlers.CreateCorporateLead(cn.CorporateService))
		}

		v1.GET("/industries", handlers.ListIndustries(cn.IndustryService))
		v1.GET("/industries/:slug", handlers.GetIndustry(cn.IndustryService))

		v1.GET("/mentors", handlers.ListMentors(cn.ProfileService))
		v1.GET("/mentors/:id/answers", handlers.ListMentorAnswers(cn.AnswerService))

		v1.GET("/chapters", handlers.ListChapters(cn.ChapterService))
		v1.GET("/chapters/:slug", handlers.GetChapter(cn.ChapterService))

		v1.GET("/podcasts", handlers.ListPodcastSeries(cn.PodcastService))
		v1.GET("/podcasts/:id/episodes", handlers.ListPodcastEpisodes(cn.PodcastService))
		v1.GET("/episodes/:id", handlers.GetPodcastEpisode(cn.PodcastService))
		v1.GET("/invitations/:token", handlers.GetEpisodeInvitation(cn.PodcastService))

		v1.GET("/questions", handlers.ListQuestions(cn.QuestionService))
		v1.GET("/questions/:id", handlers.GetQuestion(cn.QuestionService))
		v1.GET("/questions/:id/answers", handlers.ListQuestionAnswers(cn.QuestionService))

		v1.GET("/answers/:id/sharing", handlers.AnswerSharing(cn.AnswerService))
		v1.POST("/answers/:id/views", handlers.RecordAnswerView(cn.AnswerService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cn.ProfileService, cn.Logger))
	{
		protected.GET("/me", handlers.Me())

		profileRoutes := protected.Group("/profiles")
		{
			profileRoutes.GET("/:id", handlers.GetProfile(cn.ProfileService))
			profileRoutes.PATCH("/:id", handlers.UpdateProfile(cn.ProfileService))
			profileRoutes.POST("/:id/avatar", handlers.UploadAvatar(cn.ProfileService))
		}

		protected.GET("/saved-mentors", handlers.ListSavedMentors(cn.ProfileService))
		protected.POST("/saved-mentors/:id", handlers.SaveMentor(cn.ProfileService))
		protected.DELETE("/saved-mentors/:id", handlers.UnsaveMentor(cn.ProfileService))

		protected.POST("/answers/:id/upvote", handlers.UpvoteAnswer(cn.AnswerService))
	}

	seeker := protected.Group("/")
	seeker.Use(middleware.RequireRole(string(models.RoleSeeker)))
	{
		seeker.POST("/questions", handlers.CreateQuestion(cn.QuestionService))
		seeker.POST("/questions/:id/close", handlers.CloseQuestion(cn.QuestionService))
	}

	mentor := protected.Group("/")
	mentor.Use(middleware.RequireRole(string(models.RoleMentor)))
	{
		mentor.GET("/feed", handlers.MentorFeed(cn.QuestionService))

		mentor.POST("/questions/:id/answers", handlers.CreateAnswer(cn.AnswerService))
		mentor.POST("/answers/:id/publish", handlers.PublishAnswer(cn.AnswerService))

		recordingRoutes := mentor.Group("/recordings")
		{
			recordingRoutes.POST("/", handlers.CreateRecordingSession(cn.RecordingService))
			recordingRoutes.GET("/:id", handlers.GetRecordingSession(cn.RecordingService))
			recordingRoutes.POST("/:id/start", handlers.StartRecording(cn.RecordingService))
			recordingRoutes.POST("/:id/pause", handlers.PauseRecording(cn.RecordingService))
			recordingRoutes.POST("/:id/resume", handlers.ResumeRecording(cn.RecordingService))
			recordingRoutes.POST("/:id/stop", handlers.StopRecording(cn.RecordingService))
			recordingRoutes.POST("/:id/reset", handlers.ResetRecording(cn.RecordingService))
			recordingRoutes.PATCH("/:id/scroll-speed", handlers.SetRecordingScrollSpeed(cn.RecordingService))
			recordingRoutes.POST("/:id/submit", handlers.SubmitRecording(cn.RecordingService))
		}

		mentor.POST("/chapters/:slug/join-requests", handlers.RequestChapterMembership(cn.ChapterService))
		mentor.POST("/invitations/:token/respond", handlers.RespondToEpisodeInvitation(cn.PodcastService))
	}

	admin := protected.Group("/admin")
	{
		admin.POST("/episodes/:id/invitations", handlers.InvitePodcastGuest(cn.PodcastService))
		admin.GET("/corporate-signups", handlers.ListCorporateLeads(cn.CorporateService))
	}

	return r
}
