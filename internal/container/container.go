package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/mentorbay/api/internal/config"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	ProfileService      *services.ProfileService
	RegistrationService *services.RegistrationService
	QuestionService     *services.QuestionService
	AnswerService       *services.AnswerService
	RecordingService    *services.RecordingService
	IndustryService     *services.IndustryService
	ChapterService      *services.ChapterService
	PodcastService      *services.PodcastService
	CorporateService    *services.CorporateService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, cfg.SupabaseURL, cfg.SupabaseAnonKey)
	mongo := models.MongodbNewRepo(mongoDBClient)

	answerService := services.NewAnswerService(supa, supa, mongo, cfg.FrontendURL)

	return &Container{
		Logger:         logger,
		Cloudinary:     cloudinary,
		SupabaseClient: supabaseClient,
		MongoDBClient:  mongoDBClient,

		ProfileService:      services.NewProfileService(supa, mongo),
		RegistrationService: services.NewRegistrationService(supa),
		QuestionService:     services.NewQuestionService(supa, supa),
		AnswerService:       answerService,
		RecordingService:    services.NewRecordingService(answerService),
		IndustryService:     services.NewIndustryService(supa),
		ChapterService:      services.NewChapterService(supa, supa, cfg.ChapterCountries),
		PodcastService:      services.NewPodcastService(supa),
		CorporateService:    services.NewCorporateService(supa),
	}
}
