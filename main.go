package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"storeapi/internal/config"
	"storeapi/internal/database"
	"storeapi/internal/handlers"
	"storeapi/internal/middleware"
	"storeapi/internal/repositories"
	"storeapi/internal/services"
	"storeapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQ.Enabled() {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		publisher = mqClient

		if cfg.RabbitMQ.Queue != "" {
			if err := mqClient.ConsumeEvents(auditEvent); err != nil {
				log.Printf("Failed to start RabbitMQ audit consumer: %v", err)
			}
		}
	} else {
		log.Println("RABBITMQ_URL not set, entity events are disabled")
	}

	app := NewApp(cfg, db, publisher)

	// --- Start HTTP Server ---
	log.Printf("Starting %s %s on %s", cfg.ServiceName, cfg.ServiceVersion, cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
		}
	}
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil, in which case no entity events are sent.
func NewApp(cfg config.Config, db *gorm.DB, publisher services.EventPublisher) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	userService := services.NewUserService(userRepo, publisher)
	storeService := services.NewStoreService(storeRepo, userRepo, publisher)
	productService := services.NewProductService(productRepo, storeRepo, publisher)

	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":      true,
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		})
	})
	app.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":     "API Online",
			"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
			"environment": cfg.Environment,
		})
	})

	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewStoreHandler(storeService).RegisterRoutes(app)
	handlers.NewProductHandler(productService).RegisterRoutes(app)

	app.Use(middleware.NotFound)
	return app
}

// auditEvent logs every entity event received from the broker.
func auditEvent(msg amqp.Delivery) error {
	event, err := rabbitmq.DecodeEvent(msg.Body)
	if err != nil {
		return err
	}
	log.Printf("Audit: %s %s at %s: %s", event.ID, event.Type, event.OccurredAt.Format(time.RFC3339), event.Data)
	return nil
}
