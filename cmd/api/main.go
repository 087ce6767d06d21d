package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/talentops/applicant-dashboard/internal/auth"
	"github.com/talentops/applicant-dashboard/internal/config"
	"github.com/talentops/applicant-dashboard/internal/database"
	"github.com/talentops/applicant-dashboard/internal/feed"
	"github.com/talentops/applicant-dashboard/internal/handlers"
	"github.com/talentops/applicant-dashboard/internal/services"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	slog.Info("database connection established")

	feedClient := feed.NewClient(
		feed.WithBaseURL(cfg.FeedBaseURL),
		feed.WithTimeout(cfg.FeedTimeout),
	)

	userService := services.NewUserService(db)
	settingsService := services.NewSettingsService(db)

	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, cfg.TokenTTL)
	jobsHandler := handlers.NewJobsHandler(feedClient, cfg.InterviewScheduledStatus, cfg.MetricsTopN)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("", auth.RequireAuth(cfg.JWTSecret))
		{
			authed.GET("/jobs", jobsHandler.ListJobs)
			authed.GET("/jobs/metrics", jobsHandler.JobMetrics)
			authed.GET("/interviews", jobsHandler.ListInterviews)
			authed.GET("/columns", handlers.Columns)
			authed.GET("/users/:userId/settings", settingsHandler.GetSettings)
			authed.PUT("/users/:userId/settings", settingsHandler.PutSettings)
		}
	}

	slog.Info("server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
