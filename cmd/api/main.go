package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talentfit/resume-scorer/internal/config"
	"talentfit/resume-scorer/internal/handlers"
	"talentfit/resume-scorer/internal/repositories"
	"talentfit/resume-scorer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database. Settings and history degrade to 500s when the
	// database is down; scoring keeps working.
	var configRepo repositories.UserConfigRepository
	var analysisRepo repositories.AnalysisRepository

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Printf("⚠️  Database unavailable, settings and history disabled: %v\n", err)
	} else {
		configRepo = repositories.NewUserConfigRepository(db)
		analysisRepo = repositories.NewAnalysisRepository(db)
		log.Println("✅ Repositories initialized successfully")
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.RequestsPerMinute)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	if geminiService.Available() {
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set: semantic scores fall back, summaries disabled")
	}

	// Initialize resume index. Best-effort: scoring works without it.
	var resumeIndex services.ResumeIndexService
	index, err := services.NewResumeIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Printf("⚠️  Qdrant unavailable, similar-resume search disabled: %v\n", err)
	} else if err := index.InitCollection(); err != nil {
		log.Printf("⚠️  Qdrant collection init failed, similar-resume search disabled: %v\n", err)
	} else {
		resumeIndex = index
		log.Println("✅ Qdrant initialized successfully")
	}

	// Initialize scoring services
	extractor := services.NewTextExtractor()
	keywordScorer := services.NewKeywordScorer()
	semanticScorer := services.NewSemanticScorer(
		geminiService,
		cfg.Scoring.SemanticFallbackScore,
		cfg.Scoring.MaxEmbedWords,
	)
	skillExtractor := services.NewSkillExtractor(services.DefaultSkillVocabulary)
	authService := services.NewAuthService(cfg.Auth.JWTSecret)

	analyzer := services.NewAnalyzerService(
		extractor,
		keywordScorer,
		semanticScorer,
		skillExtractor,
		geminiService,
		resumeIndex,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer,
		extractor,
		authService,
		analysisRepo,
		services.ScoreWeights{
			Keyword:  cfg.Scoring.KeywordWeight,
			Semantic: cfg.Scoring.SemanticWeight,
		},
	)
	emailHandler := handlers.NewEmailHandler(geminiService)
	settingsHandler := handlers.NewSettingsHandler(authService, configRepo)
	historyHandler := handlers.NewHistoryHandler(authService, analysisRepo, semanticScorer, resumeIndex)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TalentFit Resume Scorer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Server.MaxBodySize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Get("/", healthCheck)
	app.Get("/health", healthCheck)

	app.Post("/analyze", analyzeHandler.HandleAnalyze)
	app.Post("/generate_email", emailHandler.HandleGenerateEmail)
	app.Get("/settings", settingsHandler.HandleGetSettings)
	app.Post("/settings", settingsHandler.HandleSaveSettings)
	app.Get("/history", historyHandler.HandleGetHistory)
	app.Post("/similar", historyHandler.HandleFindSimilar)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "TalentFit Resume Scorer",
		"version": "1.0.0",
	})
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
