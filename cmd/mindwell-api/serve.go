package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mindwell/backend/internal/config"
	"github.com/mindwell/backend/internal/handlers"
	"github.com/mindwell/backend/internal/logger"
	"github.com/mindwell/backend/internal/middleware"
	"github.com/mindwell/backend/internal/repository"
	"github.com/mindwell/backend/internal/service"
	"github.com/mindwell/backend/pkg/gemini"
	"github.com/mindwell/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))

	logger.Info("starting MindWell API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Insight generation degrades to deterministic fallbacks without a key
	var insightClient service.InsightClient
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			client.Model = cfg.Gemini.Model
		}
		insightClient = client
	} else {
		logger.Warn("no Gemini API key configured, insight text will use fallbacks")
	}

	// Initialize repositories
	checkinRepo := repository.NewCheckInRepository(supabaseClient)
	stressRepo := repository.NewStressAssessmentRepository(supabaseClient)
	summaryRepo := repository.NewWeeklySummaryRepository(supabaseClient)

	// Initialize services
	checkinService := service.NewCheckInService(checkinRepo, insightClient)
	stressService := service.NewStressService(stressRepo, insightClient)
	summaryService := service.NewWeeklySummaryService(checkinRepo, summaryRepo, insightClient)

	// Initialize handlers
	checkinHandler := handlers.NewCheckInHandler(checkinService)
	stressHandler := handlers.NewStressHandler(stressService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		checkin := v1.Group("/checkin")
		{
			checkin.POST("/analyze", checkinHandler.Analyze)
			checkin.POST("/quick-mood", checkinHandler.QuickMood)
			checkin.GET("/history/:userId", checkinHandler.History)
			checkin.GET("/trends/:userId", checkinHandler.Trends)
			checkin.GET("/correlations/:userId", checkinHandler.Correlations)
		}

		stress := v1.Group("/stress")
		{
			stress.POST("/analyze", stressHandler.Analyze)
			stress.GET("/history/:userId", stressHandler.History)
			stress.GET("/insights/:userId", stressHandler.Insights)
		}

		summary := v1.Group("/summary")
		{
			summary.POST("/checkin", summaryHandler.SaveCheckIn)
			summary.GET("/weekly-data/:startDate/:endDate", summaryHandler.WeeklyData)
			summary.POST("/generate", summaryHandler.Generate)
			summary.POST("/quick-mood", summaryHandler.QuickMood)
		}
	}

	logger.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
