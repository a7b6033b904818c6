package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sittha/dorm-booking/config"
	"github.com/sittha/dorm-booking/internal/handler"
	"github.com/sittha/dorm-booking/internal/middleware"
	"github.com/sittha/dorm-booking/internal/repository"
	"github.com/sittha/dorm-booking/internal/service"
	"github.com/sittha/dorm-booking/pkg/database"
	"github.com/sittha/dorm-booking/pkg/rabbitmq"
	"github.com/sittha/dorm-booking/pkg/upload"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	// RabbitMQ is optional: without a broker the service still takes bookings,
	// it just skips lifecycle events.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	slips, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to init upload store: %v", err)
	}

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	termRepo := repository.NewTermRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, publisher)
	catalogSvc := service.NewCatalogService(roomRepo, termRepo, bookingRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)

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
		return c.JSON(200, map[string]string{"status": "ok", "service": "dorm-booking"})
	})
	e.Static("/uploads", slips.Dir())

	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewCatalogHandler(catalogSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc, slips).RegisterRoutes(e, cfg.JWTSecret)

	log.Printf("Dorm Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
