package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Mocktail/config"
	"github.com/lshigami/Mocktail/database"
	_ "github.com/lshigami/Mocktail/docs" // Swagger docs - auto-generated
	feedbackctrl "github.com/lshigami/Mocktail/internal/controller/feedback"
	interviewctrl "github.com/lshigami/Mocktail/internal/controller/interview"
	"github.com/lshigami/Mocktail/internal/logger"
	"github.com/lshigami/Mocktail/internal/model"
	"github.com/lshigami/Mocktail/internal/repository"
	"github.com/lshigami/Mocktail/internal/service"
	"github.com/lshigami/Mocktail/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Mocktail AI Interview API
// @version 1.0
// @description API for AI-powered mock interviews: question generation, live answer capture, AI grading and feedback summaries.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewInterviewRepository,
			repository.NewUserAnswerRepository,
			repository.NewUserFeedbackRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewGradingService,
			service.NewInterviewGenerationService,
			service.NewInterviewService,
			service.NewUserFeedbackService,
			// Live sessions share one in-memory manager backed by the grader.
			func(grading service.GradingService, cfg *config.Config) *session.Manager {
				return session.NewManager(grading, cfg.Interview.MinTranscriptChars)
			},
		),

		// API Controllers Layer
		fx.Provide(
			interviewctrl.NewInterviewController,
			interviewctrl.NewSessionController,
			feedbackctrl.NewFeedbackController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route requests through Zerolog instead of Gin's default logger.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *interviewctrl.InterviewController,
	sessionCtrl *interviewctrl.SessionController,
	feedbackCtrl *feedbackctrl.FeedbackController,
) {
	api := router.Group("/api/v1")
	{
		interviews := api.Group("/interviews")
		interviews.POST("", interviewCtrl.CreateInterview)
		interviews.POST("/resume", interviewCtrl.CreateInterviewFromResume)
		interviews.GET("", interviewCtrl.ListInterviews)
		interviews.GET("/:mock_id", interviewCtrl.GetInterview)
		interviews.DELETE("/:mock_id", interviewCtrl.DeleteInterview)
		interviews.GET("/:mock_id/feedback", interviewCtrl.GetInterviewFeedback)
		interviews.POST("/:mock_id/answers", interviewCtrl.SubmitAnswer)

		// Live session state machine
		interviews.POST("/:mock_id/session", sessionCtrl.StartSession)
		interviews.GET("/:mock_id/session", sessionCtrl.GetSession)
		interviews.DELETE("/:mock_id/session", sessionCtrl.EndSession)
		interviews.POST("/:mock_id/session/advance", sessionCtrl.AdvanceSession)
		interviews.POST("/:mock_id/session/retreat", sessionCtrl.RetreatSession)
		interviews.POST("/:mock_id/session/jump", sessionCtrl.JumpSession)
		interviews.POST("/:mock_id/session/recording/start", sessionCtrl.StartRecording)
		interviews.POST("/:mock_id/session/recording/fragments", sessionCtrl.PushFragment)
		interviews.POST("/:mock_id/session/recording/stop", sessionCtrl.StopRecording)
		interviews.POST("/:mock_id/session/recording/unsupported", sessionCtrl.MarkUnsupported)

		api.POST("/feedback", feedbackCtrl.SubmitFeedback)
		api.GET("/feedback", feedbackCtrl.ListFeedback)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Mocktail API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Interview{},
		&model.UserAnswer{},
		&model.UserFeedback{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
