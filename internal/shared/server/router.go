package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhealth-backend/internal/llm"
	"bizhealth-backend/internal/llm/openai"
	"bizhealth-backend/internal/reports"
	"bizhealth-backend/internal/shared/config"
	"bizhealth-backend/internal/shared/metrics"
	"bizhealth-backend/internal/shared/server/middleware"
	"bizhealth-backend/internal/shared/server/respond"
	"bizhealth-backend/internal/shared/storage/db"
	"bizhealth-backend/internal/taxonomy"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// A catalog validation failure is returned as an error so the process refuses
// to start rather than serving reports from a broken taxonomy.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	registry, err := taxonomy.Load()
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var reportRepo reports.Repo
	if sqlDB != nil {
		reportRepo = &reports.PGRepo{DB: sqlDB}
	} else {
		reportRepo = reports.NewMemoryRepo()
	}

	tone, err := llm.ParseTone(cfg.ReportTone)
	if err != nil {
		log.Printf("REPORT_TONE %q invalid, using encouraging", cfg.ReportTone)
		tone = llm.ToneEncouraging
	}

	reportSvc := &reports.Service{
		Repo:             reportRepo,
		LLM:              narrativeClient(cfg),
		Provider:         cfg.LLMProvider,
		Model:            cfg.LLMModel,
		Tone:             tone,
		NarrativeTimeout: cfg.NarrativeTimeout,
	}
	reportHandler := reports.NewHandler(reportSvc)
	taxonomyHandler := taxonomy.NewHandler(registry)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	taxonomyHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)

	return r, nil
}

// narrativeClient picks the narrative provider. With no usable provider
// configuration the placeholder is wired in and every report uses the
// deterministic fallback narrative.
func narrativeClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider != "openai" {
		log.Printf("LLM_PROVIDER %q not supported, narrative fallback in use", cfg.LLMProvider)
		return llm.PlaceholderClient{}
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Printf("openai client unavailable, narrative fallback in use: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
