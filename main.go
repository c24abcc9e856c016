// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"venue-cart/config"
	"venue-cart/controllers"
	"venue-cart/events"
	"venue-cart/middleware"
	"venue-cart/routes"
	"venue-cart/services"
	"venue-cart/store"
	"venue-cart/telemetry"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	shutdownTracer, err := telemetry.InitTracer(context.Background(), "venue-cart", cfg.OTLPEndpoint, cfg.Env)
	if err != nil {
		logger.Fatal("init tracer", zap.Error(err))
	}
	defer shutdownTracer(context.Background())

	// Connect to MongoDB
	client, err := store.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatal("connect store", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logger.Error("disconnect store", zap.Error(err))
		}
	}()
	st := store.NewMongoStore(client.Database(cfg.MongoDatabase))

	// Cart lifecycle events are optional; without a broker the engine
	// mutates carts silently.
	var publisher services.EventPublisher
	if cfg.KafkaBroker != "" {
		pub := events.NewPublisher(strings.Split(cfg.KafkaBroker, ","), cfg.KafkaTopic)
		defer pub.Close()
		publisher = pub
		logger.Info("cart events enabled", zap.String("broker", cfg.KafkaBroker), zap.String("topic", cfg.KafkaTopic))
	}

	cartService := services.NewCartService(st, publisher, logger)

	// Initialize controllers
	cartController := controllers.NewCartController(cartService, logger)
	orderController := controllers.NewOrderController(cartService, logger)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, cartController, orderController, middleware.NewAuthMiddleware([]byte(cfg.JWTSecret)))

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
