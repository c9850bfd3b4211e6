package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rayhanbri/metronest-server-new/internal/config"
	"github.com/rayhanbri/metronest-server-new/internal/database"
	"github.com/rayhanbri/metronest-server-new/internal/handler"
	"github.com/rayhanbri/metronest-server-new/internal/identity"
	"github.com/rayhanbri/metronest-server-new/internal/middleware"
	"github.com/rayhanbri/metronest-server-new/internal/payment"
	"github.com/rayhanbri/metronest-server-new/internal/repository"
	"github.com/rayhanbri/metronest-server-new/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	// Database
	db, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied successfully")

	// Identity provider: Firebase in production, locally-signed tokens
	// when no service key is configured.
	var provider identity.Provider
	if cfg.FirebaseKey != "" {
		provider, err = identity.NewFirebaseProvider(context.Background(), cfg.FirebaseKey)
		if err != nil {
			log.Fatalf("Failed to init identity provider: %v", err)
		}
	} else {
		if cfg.IsProduction() {
			log.Fatal("FB_SERVICE_KEY is required in production")
		}
		log.Println("FB_SERVICE_KEY not set, using local JWT verifier")
		provider = identity.NewJWTProvider(cfg.IdentityJWTSecret)
	}

	processor := payment.NewStripeProcessor(cfg.StripeSecretKey)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo, propertyRepo, provider)
	propertySvc := service.NewPropertyService(propertyRepo, userRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	wishlistSvc := service.NewWishlistService(wishlistRepo)
	offerSvc := service.NewOfferService(offerRepo, propertyRepo, userRepo)

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	auth := middleware.Auth(provider)

	// Health
	healthH := handler.NewHealthHandler(db)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("MetroNest Backend Running")
	})
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// Users
	userH := handler.NewUserHandler(userSvc)
	app.Post("/users", middleware.RateLimit(10, time.Minute), userH.Register)
	app.Get("/users", auth, userH.List)
	app.Get("/users/role/:email", auth, userH.Role)
	app.Put("/users/role/:id", userH.SetRole)
	app.Put("/users/fraud/:id", userH.MarkFraud)
	app.Delete("/users/:id", userH.Delete)

	// Properties (static segments before :id)
	propertyH := handler.NewPropertyHandler(propertySvc)
	app.Post("/properties", middleware.RateLimit(20, time.Minute), propertyH.Create)
	app.Get("/all-properties", auth, propertyH.All)
	app.Get("/properties/verified", auth, propertyH.Verified)
	app.Get("/properties/advertised", auth, propertyH.Advertised)
	app.Get("/properties", auth, propertyH.ByAgent)
	app.Put("/properties/status/:id", propertyH.SetStatus)
	app.Patch("/properties/advertise/:id", propertyH.Advertise)
	app.Get("/properties/:id", auth, propertyH.Get)
	app.Put("/properties/:id", propertyH.Update)
	app.Delete("/properties/:id", propertyH.Delete)

	// Reviews
	reviewH := handler.NewReviewHandler(reviewSvc)
	app.Post("/reviews", reviewH.Create)
	app.Get("/reviews/latest", auth, reviewH.Latest)
	app.Get("/admin/reviews", auth, reviewH.All)
	app.Get("/reviews/:propertyId", auth, reviewH.ForProperty)
	app.Get("/my-reviews/:email", auth, reviewH.ByAuthor)
	app.Delete("/reviews/:id", reviewH.Delete)
	app.Delete("/admin/reviews/:id", reviewH.Delete)

	// Wishlist
	wishlistH := handler.NewWishlistHandler(wishlistSvc)
	app.Post("/wishlist", wishlistH.Add)
	app.Get("/wishlist", auth, wishlistH.ListFor)
	app.Get("/wishlist-item/:id", auth, wishlistH.GetItem)
	app.Delete("/wishlist/:id", wishlistH.Remove)

	// Offers
	offerH := handler.NewOfferHandler(offerSvc)
	app.Post("/offers", middleware.RateLimit(20, time.Minute), offerH.Create)
	app.Get("/offers/agent/:email", auth, offerH.ForAgent)
	app.Get("/offers/user", auth, offerH.ForBuyer)
	app.Put("/offers/accept/:id", offerH.Accept)
	app.Put("/offers/reject/:id", offerH.Reject)
	app.Put("/offers/mark-paid/:id", offerH.MarkPaid)
	app.Get("/offers/:id", auth, offerH.Get)
	app.Get("/sold-properties/:agentEmail", auth, offerH.SoldForAgent)

	// Payments
	paymentH := handler.NewPaymentHandler(processor)
	app.Post("/create-payment-intent", paymentH.CreateIntent)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Printf("MetroNest backend running on :%s (%s)", cfg.Port, cfg.Env)

	<-quit
	log.Println("Shutting down...")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	log.Println("Server stopped")
}
