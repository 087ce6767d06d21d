package handlers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/talentops/applicant-dashboard/internal/auth"
	"github.com/talentops/applicant-dashboard/internal/feed"
	"github.com/talentops/applicant-dashboard/internal/models"
	"github.com/talentops/applicant-dashboard/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret    = "test-secret"
	testScheduled = "Görüşme Ayarlandı"
)

type testEnv struct {
	router *gin.Engine
	token  string
	userID string
}

// newTestEnv assembles the full route tree against an in-memory database and
// the given fake upstream, with one registered and logged-in recruiter.
func newTestEnv(t *testing.T, upstreamURL string) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.UserSettings{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	userService := services.NewUserService(db)
	settingsService := services.NewSettingsService(db)

	user, err := userService.Register("Ada", "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("register test user: %v", err)
	}
	token, err := auth.IssueToken(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue test token: %v", err)
	}

	feedClient := feed.NewClient(feed.WithBaseURL(upstreamURL))

	authHandler := NewAuthHandler(userService, testSecret, time.Hour)
	jobsHandler := NewJobsHandler(feedClient, testScheduled, 3)
	settingsHandler := NewSettingsHandler(settingsService)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("", auth.RequireAuth(testSecret))
		{
			authed.GET("/jobs", jobsHandler.ListJobs)
			authed.GET("/jobs/metrics", jobsHandler.JobMetrics)
			authed.GET("/interviews", jobsHandler.ListInterviews)
			authed.GET("/columns", Columns)
			authed.GET("/users/:userId/settings", settingsHandler.GetSettings)
			authed.PUT("/users/:userId/settings", settingsHandler.PutSettings)
		}
	}

	return testEnv{router: r, token: token, userID: user.ID}
}
