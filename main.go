package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ysgtransport/config"
	"ysgtransport/cron"
	"ysgtransport/database"
	locationRepo "ysgtransport/database/repository/location"
	rideRepo "ysgtransport/database/repository/ride"
	"ysgtransport/handlers"
	"ysgtransport/middleware"
	"ysgtransport/models"
	"ysgtransport/routes"
	"ysgtransport/services/notification"
	"ysgtransport/services/reminder"
	rideService "ysgtransport/services/ride"
	"ysgtransport/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// seedLocations are the places a fresh install offers in the request form.
var seedLocations = []models.Location{
	{Name: "Campus PSG", Type: models.LocationTypeCampus, IsActive: true},
	{Name: "Domicile", Type: models.LocationTypeHome, IsActive: true},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	zone, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
		}
	}()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rides, err := rideRepo.NewMongoRideRepo(client, config.AppConfig.DatabaseName)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	locations, err := locationRepo.NewMongoLocationRepo(client, config.AppConfig.DatabaseName)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := locations.Seed(seedLocations); err != nil {
		logger.Sugar().Warnf("main: failed to seed locations: %v", err)
	}

	// services.
	composer := notification.NewComposer(zone)
	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
	)

	rideSvc := &rideService.DefaultRideService{
		Repo:        rides,
		Locations:   locations,
		Composer:    composer,
		Mailer:      mailer,
		DriverEmail: config.AppConfig.DriverEmail,
		Zone:        zone,
		Logger:      logger,
	}

	engine := &reminder.DefaultEngine{
		Repo:        rides,
		Composer:    composer,
		Mailer:      mailer,
		DriverEmail: config.AppConfig.DriverEmail,
		Zone:        zone,
		Logger:      logger,
	}

	rideHandler := handlers.NewRideHandler(rideSvc, logger)
	reminderHandler := handlers.NewReminderHandler(engine, logger)
	locationHandler := handlers.NewLocationHandler(locations, logger)

	routes.RegisterRoutes(router, rideHandler, reminderHandler, locationHandler)

	// Background sweep worker and health monitoring. Redis is optional: the
	// external scheduler can drive reminders through the trigger endpoint
	// alone.
	var redisClient *redis.Client
	if config.AppConfig.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
		cron.InitSweepWorker(engine)
	}
	utils.StartHealthMonitor(client, redisClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
