package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"booking-service/internal/app"
	"booking-service/internal/config"
	applog "booking-service/internal/log"
	"booking-service/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET required")
	}

	logger, err := applog.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to db", zap.Error(err))
	}
	defer pool.Close()

	mailer := app.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser,
		cfg.SMTPPassword, cfg.FromEmail, cfg.AdminEmail)

	appInstance := &app.App{
		Store:  &app.DB{Pool: pool},
		Mailer: mailer,
		Log:    logger,
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.GET("/healthz", appInstance.HealthHandler)

	api := router.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.POST("", app.RateLimitMiddleware(cfg.BookingRatePerMin), appInstance.CreateBookingHandler)
			bookings.POST("/confirm", appInstance.ConfirmBookingHandler)

			admin := bookings.Group("", app.AuthMiddleware(cfg.JWTSecret))
			{
				admin.GET("", appInstance.ListBookingsHandler)
				admin.DELETE("", appInstance.DeleteBookingHandler)
			}
		}
	}

	server.Run(router, ":"+cfg.AppPort)
}
