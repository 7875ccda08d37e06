package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-backend/pkg/container"
	"library-backend/pkg/logger"
)

func main() {
	// .env là optional - production dùng real env vars
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	c, err := container.New(ctx, container.Options{WithAsynqClient: true})
	if err != nil {
		log.Fatal().Err(err).Msg("[MAIN] ❌ Failed to initialize container")
	}
	defer c.Cleanup()

	router := SetupRouter(c)

	if err := Serve(router, c.Config.App.Port); err != nil {
		log.Fatal().Err(err).Msg("[MAIN] ❌ Server error")
	}
}
