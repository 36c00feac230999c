// File: serene/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serene/config"
	"serene/database"
	bookingRepoPkg "serene/database/repository/booking"
	expertRepoPkg "serene/database/repository/expert"
	"serene/handlers"
	"serene/middleware"
	"serene/routes"
	"serene/services/availability"
	"serene/services/booking"
	"serene/services/expert"
	"serene/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	expertRepo := expertRepoPkg.NewMongoExpertRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	cacheClient := utils.GetCacheClient()

	// services.
	expertService := &expert.DefaultService{
		Repo: expertRepo,
	}
	availabilityService := &availability.DefaultService{
		ExpertRepo:  expertRepo,
		BookingRepo: bookingRepo,
		Cache:       cacheClient,
	}
	bookingService := &booking.DefaultService{
		ExpertRepo:  expertRepo,
		BookingRepo: bookingRepo,
		Cache:       cacheClient,
	}

	// handlers.
	expertHandler := handlers.NewExpertHandler(expertService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// routes.
	routes.RegisterExpertRoutes(router, expertHandler, availabilityHandler)
	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(cacheClient, database.MongoClient)

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
