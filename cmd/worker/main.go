package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/catalog/job"
	"library-backend/internal/shared"
	"library-backend/pkg/container"
	"library-backend/pkg/logger"
)

// Worker process: consume import tasks do API enqueue.
// Chạy riêng với API server, share cùng Postgres + Redis.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	ctx := context.Background()
	c, err := container.New(ctx, container.Options{WithAsynqClient: false})
	if err != nil {
		log.Fatal().Err(err).Msg("[WORKER] ❌ Failed to initialize container")
	}
	defer c.Cleanup()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			// Import tasks là network-bound - giữ concurrency vừa phải
			// để không đập remote catalog
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeImportRemoteBook, job.NewImportTaskHandler(c.CatalogImporter))

	log.Info().Msg("[WORKER] 🚀 Worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatal().Err(err).Msg("[WORKER] ❌ Worker stopped with error")
	}
}
