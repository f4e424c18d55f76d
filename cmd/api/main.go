package main

import (
	"os"
	"time"

	"github.com/buildsbyrafael/datapersistence/internal/app"
	"github.com/buildsbyrafael/datapersistence/internal/bootstrap"
	"github.com/buildsbyrafael/datapersistence/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	router, err := app.BuildApp()
	if err != nil {
		logger.Fatal("application bootstrap failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	})
}
