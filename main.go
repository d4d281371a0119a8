package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sHiNy2005-beep/journalreact/api"
	"github.com/sHiNy2005-beep/journalreact/config"
	"github.com/sHiNy2005-beep/journalreact/database"
	"github.com/sHiNy2005-beep/journalreact/services"
	"github.com/sHiNy2005-beep/journalreact/uploads"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zlog.Info().Msg("Initializing journal server...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Err(err).Msg("No .env file loaded")
	}

	cfg := config.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(cfg, "DB_HOST", "localhost"),
		config.GetString(cfg, "DB_USER", "journal"),
		config.GetString(cfg, "DB_PASSWORD", ""),
		config.GetString(cfg, "DB_NAME", "journal"),
		config.GetString(cfg, "DB_PORT", "5432"),
		config.GetString(cfg, "DB_SSLMODE", "disable"),
	)

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error connecting to database")
	}

	currentDB := database.New(db)

	if err := currentDB.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("Error migrating schema")
	}

	seeded, err := currentDB.SeedIfEmpty()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error seeding journal entries")
	}
	if seeded > 0 {
		zlog.Info().Int("entries", seeded).Msg("Seeded journal entries")
	}

	uploadStore, err := newUploadStore(cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing upload store")
	}

	// The contact relay is optional; without Resend credentials the endpoint
	// reports itself unavailable instead of failing startup.
	var sender api.ContactSender
	if mailer, err := services.NewMailer(cfg); err != nil {
		zlog.Warn().Err(err).Msg("Contact relay disabled")
	} else {
		sender = mailer
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, uploadStore, sender)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newUploadStore picks the image store backend: local disk by default, an
// S3/MinIO bucket when UPLOADS_S3=true.
func newUploadStore(cfg map[string]string) (uploads.Store, error) {
	if config.GetBool(cfg, "UPLOADS_S3", false) {
		return uploads.NewS3Store(context.Background(), uploads.S3Config{
			Region:       config.GetString(cfg, "S3_REGION", "us-east-1"),
			Bucket:       config.GetString(cfg, "S3_BUCKET", "journal-uploads"),
			AccessKey:    config.GetString(cfg, "S3_ACCESS_KEY", ""),
			SecretKey:    config.GetString(cfg, "S3_SECRET_KEY", ""),
			BaseEndpoint: config.GetString(cfg, "S3_ENDPOINT", ""),
		})
	}
	return uploads.NewLocalStore(config.GetString(cfg, "UPLOADS_DIR", "uploads"))
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
