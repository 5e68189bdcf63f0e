// @title         resume-match API
// @version       1.0
// @description   Сервис оценки соответствия резюме кандидата описанию вакансии: извлечение навыков по словарю, оценка лет опыта, косинусная близость текстов и агрегированный балл 0-100 с рекомендациями.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	_ "github.com/artem13815/resume-match/docs"
	"github.com/gofiber/fiber/v2"
	recovermw "github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	// internal imports
	"github.com/artem13815/resume-match/api/http"
	"github.com/artem13815/resume-match/api/http/handlers"
	"github.com/artem13815/resume-match/pkg/analysis"
	"github.com/artem13815/resume-match/pkg/config"
	"github.com/artem13815/resume-match/pkg/health"
	"github.com/artem13815/resume-match/pkg/health/checkers"
	"github.com/artem13815/resume-match/pkg/llm"
	"github.com/artem13815/resume-match/pkg/llm/openrouter"
	"github.com/artem13815/resume-match/pkg/logger"
	"github.com/artem13815/resume-match/pkg/nlp"
	"github.com/artem13815/resume-match/pkg/vocabulary"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	zl, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Language-analysis resource: loaded once, shared read-only by all calls.
	an, err := nlp.NewAnalyzer()
	if err != nil {
		zl.Fatal("init language analyzer", zap.Error(err))
	}

	vocab, err := vocabulary.Load(cfg.SkillsPath)
	if err != nil {
		zl.Fatal("load skill vocabulary", zap.Error(err))
	}
	zl.Info("skill vocabulary loaded", zap.Int("terms", vocab.Len()))

	extractor := analysis.NewExtractor(an, vocab)

	// Optional LLM enrichment; without a key the service stays fully
	// deterministic.
	var model llm.ChatModel
	if cfg.OpenRouterAPIKey != "" {
		model = openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
		zl.Info("llm enrichment enabled", zap.String("model", cfg.OpenRouterModel))
	}

	uc := analysis.NewService(an, extractor, analysis.Weights{
		Skill:                    cfg.SkillWeight,
		Similarity:               cfg.SimilarityWeight,
		ExperiencePenaltyPerYear: cfg.ExperiencePenaltyPerYear,
		ExperiencePenaltyMax:     cfg.ExperiencePenaltyMax,
	}, model, cfg.OpenRouterModel)

	// Readiness: compose checkers over the shared read-only resources.
	readiness := health.NewService(
		checkers.NewVocabularyChecker(vocab),
		checkers.NewAnalyzerChecker(an),
	)

	app := fiber.New()
	app.Use(recovermw.New())

	maxBytes := cfg.MaxUploadMB << 20
	healthHandler := handlers.NewHealthHandler(readiness)
	matchHandler := handlers.NewMatchHandler(uc, maxBytes)
	resumeHandler := handlers.NewResumeHandler(maxBytes)

	// Register routes
	http.Register(app, healthHandler, matchHandler, resumeHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	zl.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
