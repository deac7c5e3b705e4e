package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akshayraj/perks-portal/api/access"
	"github.com/akshayraj/perks-portal/api/config"
	"github.com/akshayraj/perks-portal/api/controller"
	"github.com/akshayraj/perks-portal/api/dao"
	"github.com/akshayraj/perks-portal/api/db"
	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/router"
	"github.com/akshayraj/perks-portal/api/service"
	"github.com/akshayraj/perks-portal/api/upstream"
	"github.com/akshayraj/perks-portal/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize upstream clients
	provenClient := upstream.NewProvenClient(
		config.GetString("proven.baseURL"),
		config.GetString("proven.apiKey"),
	)
	bridgeClient := upstream.NewBridgeClient(config.GetString("bridge.baseURL"))

	// Initialize the access-resolution engine
	caches := access.NewCaches()
	whitelistFetcher := access.NewWhitelistFetcher(provenClient, caches, config.GetDuration("access.whitelistTTL"))
	portfolioFetcher := access.NewPortfolioFetcher(
		bridgeClient,
		caches,
		config.GetDuration("access.portfolioTTL"),
		config.GetInt("access.portfolioPageSize"),
		config.GetInt("access.portfolioMaxPages"),
	)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	notificationService := util.NewNotificationService()
	services, err := service.InitializeServices(db.PgPool, provenClient, caches, validationUtil, notificationService, eventBus)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	requestDAO := dao.NewAccessRequestDAO(db.PgPool)
	engine := access.NewEngine(whitelistFetcher, portfolioFetcher, requestDAO)
	resolver := access.NewResolver(
		engine,
		config.GetString("access.cookieName"),
		config.GetDuration("access.recheckInterval"),
		config.GetDuration("access.cookieMaxAge"),
		config.GetString("server.env") == "production",
	)

	// Initialize controllers
	controllers := controller.InitializeControllers(services, resolver, services.Provider)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engineRouter := router.SetupRouter(controllers, resolver, services.Provider, 100, time.Minute) // 100 requests per minute

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engineRouter,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
