package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bakery/internal/handlers"
	"bakery/internal/middleware"
	"bakery/internal/models"
	"bakery/internal/repositories"
	"bakery/internal/services"
	"bakery/pkg/rabbitmq"
)

// appDeps bundles everything newApp needs to assemble the Fiber app.
type appDeps struct {
	userRepo    repositories.UserRepository
	orderRepo   repositories.OrderRepository
	contactRepo repositories.ContactRepository
	events      services.EventPublisher
	jwtSecret   string
	staticDir   string
	requireAuth bool
}

// newApp wires repositories, services, and handlers into a Fiber app.
func newApp(deps appDeps) *fiber.App {
	authService := services.NewAuthService(deps.userRepo, deps.jwtSecret)
	wishlistService := services.NewWishlistService(deps.userRepo)
	orderService := services.NewOrderService(deps.orderRepo, deps.events)
	contactService := services.NewContactService(deps.contactRepo, deps.events)

	app := fiber.New()
	app.Use(logger.New())

	if deps.requireAuth {
		// Guard the /api read surface; signup, login, and the legacy
		// mutation routes stay open.
		app.Use("/api", middleware.AuthRequired(authService))
	}

	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewWishlistHandler(wishlistService).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app)
	handlers.NewContactHandler(contactService).RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if deps.staticDir != "" {
		app.Static("/", deps.staticDir)
	}

	return app
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("SQLITE_PATH", "bakery.db")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("STATIC_DIR", "./public")
	viper.SetDefault("REQUIRE_AUTH", false)
	viper.AutomaticEnv()

	// --- Database ---
	// Postgres when a DSN is configured, an sqlite file otherwise.
	var (
		db  *gorm.DB
		err error
	)
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(viper.GetString("SQLITE_PATH")), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.Contact{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient

		go func() {
			log.Println("Starting RabbitMQ consumer for storefront events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received %s event (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	} else {
		log.Println("RABBITMQ_URL not set, storefront events disabled")
	}

	app := newApp(appDeps{
		userRepo:    repositories.NewGORMUserRepository(db),
		orderRepo:   repositories.NewGORMOrderRepository(db),
		contactRepo: repositories.NewGORMContactRepository(db),
		events:      events,
		jwtSecret:   viper.GetString("JWT_SECRET"),
		staticDir:   viper.GetString("STATIC_DIR"),
		requireAuth: viper.GetBool("REQUIRE_AUTH"),
	})

	// --- Start HTTP Server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
