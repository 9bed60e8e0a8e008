package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"alfredoptarigan/hrms-assistant/internal/config"
	"alfredoptarigan/hrms-assistant/internal/handlers"
	applog "alfredoptarigan/hrms-assistant/internal/logger"
	"alfredoptarigan/hrms-assistant/internal/repositories"
	"alfredoptarigan/hrms-assistant/internal/services"
)

func main() {
	cfg := config.Load()

	log, err := applog.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !cfg.EnvFileLoaded {
		log.Info("no .env file found, using environment and defaults")
	}
	log.Info("✅ config loaded", zap.String("env", cfg.Server.Env), zap.String("model", cfg.Gemini.Model))

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Fatal("❌ failed to initialize database", zap.Error(err))
	}

	candidateRepo := repositories.NewCandidateRepository(db)
	if cfg.Seed.Candidates {
		inserted, err := candidateRepo.Seed(repositories.DefaultCandidates())
		if err != nil {
			log.Fatal("❌ failed to seed candidates", zap.Error(err))
		}
		if inserted > 0 {
			log.Info("candidate directory seeded", zap.Int("candidates", inserted))
		}
	}

	// A missing or invalid API key must not take the dashboard down: every
	// AI call fails soft instead.
	generator, err := services.NewGeminiService(cfg.Gemini, log)
	if err != nil {
		log.Error("❌ Gemini client unavailable, AI features will report errors", zap.Error(err))
		generator = services.NewUnavailableGenerator(err, log)
	} else {
		log.Info("✅ Gemini client initialized")
	}

	analyses := services.NewRegistry[*services.AnalysisPipeline]()
	sessions := services.NewRegistry[*services.ChatSession]()
	drain := services.NewDrain()

	h := &handlers.Handlers{
		Candidate: handlers.NewCandidateHandler(candidateRepo),
		Analysis:  handlers.NewAnalysisHandler(candidateRepo, generator, analyses, drain, log),
		Chat:      handlers.NewChatHandler(generator, sessions, drain, log),
		Search:    handlers.NewSearchHandler(services.NewSearchInterpreter(generator, log)),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Nexus Horizon HRMS Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: handlers.ErrorHandler,
	})

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

	h.RegisterRoutes(app.Group("/api/v1"))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Nexus Horizon HRMS Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/candidates",
				"POST /api/v1/analyses",
				"POST /api/v1/analyses/:id/candidates/:candidateId",
				"GET /api/v1/analyses/:id",
				"POST /api/v1/chat/sessions",
				"POST /api/v1/chat/sessions/:id/messages",
				"GET /api/v1/chat/sessions/:id/messages",
				"GET /api/v1/search/suggestions?q=",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-quit
		log.Info("🛑 shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}

		// Let in-flight AI calls settle so their results are logged, including
		// those of analyses and sessions already deleted.
		log.Info("waiting for in-flight AI calls",
			zap.Int("analyses", analyses.Len()),
			zap.Int("sessions", sessions.Len()))
		analyses.Each(func(_ uuid.UUID, p *services.AnalysisPipeline) { p.Wait() })
		sessions.Each(func(_ uuid.UUID, s *services.ChatSession) { s.Wait() })
		drain.Wait()
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("🚀 server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("❌ failed to start server", zap.Error(err))
	}

	<-stopped
	log.Info("✅ server stopped")
}
