package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/auth"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/config"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/database"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/handlers"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/routes"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Logging.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	db, err := database.Connect(cfg, sugar)
	if err != nil {
		sugar.Fatalw("database setup failed", "error", err)
	}

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

	var mailer services.Mailer
	if cfg.SMTP.Host != "" {
		mailer = services.NewSMTPMailer(cfg)
	} else {
		mailer = &services.NopMailer{Logger: sugar}
	}

	jobService := services.NewJobService(db)
	engagementService := services.NewEngagementService(db)
	applicationService := services.NewApplicationService(db, mailer, sugar)
	userService := services.NewUserService(db, issuer, mailer, sugar, cfg.Auth.BcryptCost, cfg.Auth.OTPExpiry)
	companyService := services.NewCompanyService(db)
	notificationService := services.NewNotificationService(db)
	blogService := services.NewBlogService(db)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	routes.Setup(r, routes.Deps{
		DB:            db,
		Config:        cfg,
		Issuer:        issuer,
		Auth:          handlers.NewAuthHandler(userService, sugar),
		Jobs:          handlers.NewJobHandler(jobService, engagementService, sugar),
		Applications:  handlers.NewApplicationHandler(applicationService, sugar),
		Engagements:   handlers.NewEngagementHandler(engagementService, sugar),
		Companies:     handlers.NewCompanyHandler(companyService, sugar),
		Notifications: handlers.NewNotificationHandler(notificationService, sugar),
		Blog:          handlers.NewBlogHandler(blogService, sugar),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		sugar.Infow("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("forced shutdown", "error", err)
	}
}
