package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/wedlane/venue-service/config"
	"github.com/wedlane/venue-service/internal/handler"
	"github.com/wedlane/venue-service/internal/middleware"
	"github.com/wedlane/venue-service/internal/repository"
	"github.com/wedlane/venue-service/internal/service"
	"github.com/wedlane/venue-service/pkg/database"
	"github.com/wedlane/venue-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	if cfg.SeedDemo {
		database.Seed(db)
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, venueRepo, publisher)
	venueSvc := service.NewVenueService(venueRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "venue-service"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewVenueHandler(venueSvc).RegisterRoutes(e)

	log.Printf("Venue Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
