package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/devalimotahari/uni-schedule-form/docs"
	"github.com/devalimotahari/uni-schedule-form/internal/handler"
	"github.com/devalimotahari/uni-schedule-form/internal/repository/postgres"
)

// @title Professor Registration API
// @version 1.0
// @description API for registering university professors, their course offerings and weekly availability

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes https http

func main() {
	godotenv.Load()

	logger := newLogger()
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	storage, err := postgres.NewConnection(connString)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer storage.Close()

	if err := storage.Init(context.Background()); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}

	if os.Getenv("SEED_DB") == "true" {
		if err := storage.SeedCourses(context.Background()); err != nil {
			logger.Fatal("failed to seed courses", zap.Error(err))
		}
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	handler.SetupCourseRoutes(e, storage)
	handler.SetupProfessorRoutes(e, storage, logger, os.Getenv("LIST_SECRET"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	if os.Getenv("LOG_FORMAT") == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
