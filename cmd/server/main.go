package main

import (
	"fmt"
	"log"
	"time"

	"appeals/internal/config"
	"appeals/internal/email/noop"
	"appeals/internal/email/ses"
	"appeals/internal/handler"
	"appeals/internal/llm"
	"appeals/internal/llm/claude"
	"appeals/internal/llm/openai"
	"appeals/internal/ocr"
	"appeals/internal/ocr/textract"
	"appeals/internal/port"
	"appeals/internal/repository/postgres"
	"appeals/internal/router"
	"appeals/internal/service"
	s3storage "appeals/internal/storage/s3"
)

func init() {
	llm.RegisterProvider("claude", func(cfg *config.LLMProviderConfig) (port.TextGenerator, error) {
		return claude.NewClient(cfg), nil
	})
	llm.RegisterProvider("openai", func(cfg *config.LLMProviderConfig) (port.TextGenerator, error) {
		return openai.NewClient(cfg), nil
	})
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	appealRepo := postgres.NewAppealRepo(db)
	payerRepo := postgres.NewPayerRepo(db)

	// Document archive is optional; an empty bucket disables it
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize OCR with bounded retries
	inner, err := textract.NewExtractor(&cfg.OCR)
	if err != nil {
		return fmt.Errorf("failed to initialize OCR: %w", err)
	}
	extractor := ocr.NewRetryingExtractor(inner, cfg.OCR.MaxAttempts,
		time.Duration(cfg.OCR.BackoffMSecs)*time.Millisecond)

	// Initialize the generation provider chain
	generator, err := llm.NewGeneratorChain(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize generation providers: %w", err)
	}

	// Initialize email delivery
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize services
	appealSvc := service.NewAppealService(extractor, generator, appealRepo, storage, sender, &cfg.S3, cfg.LLM.Enhance)
	payerSvc := service.NewPayerService(payerRepo)

	// Initialize handlers
	maxFileSize := cfg.S3.MaxFileSizeMB * 1024 * 1024
	appealH := handler.NewAppealHandler(appealSvc, maxFileSize)
	payerH := handler.NewPayerHandler(payerSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, appealH, payerH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
