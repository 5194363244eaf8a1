package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"

	"github.com/Samvel1-1/Electronics/internal/config"
	"github.com/Samvel1-1/Electronics/internal/handlers"
	"github.com/Samvel1-1/Electronics/internal/mailer"
	"github.com/Samvel1-1/Electronics/internal/messaging"
	"github.com/Samvel1-1/Electronics/internal/repository"
	"github.com/Samvel1-1/Electronics/internal/service"
	"github.com/Samvel1-1/Electronics/internal/storage"
)

func main() {
	log.Println("Shop backend starting...")

	cfg := config.Load()

	store, err := initStorage(cfg)
	if err != nil {
		log.Fatalf("Storage init error: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("Uploads dir create error: %v", err)
	}

	mail, err := mailer.New(mailer.Config{
		Host:         cfg.SMTPHost,
		Port:         cfg.SMTPPort,
		Sender:       cfg.MailSender,
		ShopName:     cfg.ShopName,
		ClientID:     cfg.MailClientID,
		ClientSecret: cfg.MailClientSecret,
		RefreshToken: cfg.MailRefreshToken,
	})
	if err != nil {
		log.Fatalf("Mailer init error: %v", err)
	}
	if err := mail.Verify(); err != nil {
		// A dead relay at boot is worth knowing about, but the shop
		// stays up; sends will report their own failures.
		log.Printf("Mailer verification error: %v", err)
	}

	var publisher service.EventPublisher
	var rabbitClient *messaging.RabbitMQClient
	if cfg.RabbitMQEnabled {
		rabbitClient = messaging.NewRabbitMQClient(messaging.NewRabbitMQConfig())
		if err := rabbitClient.Connect(); err != nil {
			log.Printf("RabbitMQ connection error, events disabled: %v", err)
		} else {
			publisher = messaging.NewPublisher(rabbitClient)
			defer rabbitClient.Close()
		}
	}

	orderRepo := repository.NewOrderRepository(store)
	productRepo := repository.NewProductRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)

	orderService := service.NewOrderService(orderRepo, mail, publisher)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)

	orderHandler := handlers.NewOrderHandler(orderService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.UploadsDir)

	app := setupFiberApp()
	app.Static("/uploads", cfg.UploadsDir)
	handlers.RegisterRoutes(app, orderHandler, catalogHandler)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shop backend closing...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Shop backend listening on http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server start error: %v", err)
	}
}

func initStorage(cfg config.Config) (storage.RecordStore, error) {
	if cfg.StorageDriver == "postgres" {
		db, err := sql.Open("postgres", cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			return nil, err
		}
		log.Printf("Using Postgres record store: %s", cfg.DBName)
		return storage.NewPostgresStore(db)
	}
	log.Printf("Using JSON file record store: %s", cfg.DataDir)
	return storage.NewFileStore(cfg.DataDir)
}

func setupFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Shop Backend v1.0",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} - ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.Printf("Error: %v", err)

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
