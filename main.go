// File: courtcredits/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtcredits/config"
	"courtcredits/cron"
	"courtcredits/database"
	planRepo "courtcredits/database/repository/plan"
	"courtcredits/handlers"
	"courtcredits/middleware"
	"courtcredits/models"
	"courtcredits/routes"
	"courtcredits/services/actions"
	"courtcredits/services/booking"
	"courtcredits/services/catalog"
	"courtcredits/services/dispatch"
	"courtcredits/services/roster"
	"courtcredits/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	fallback := models.FallbackPolicy(config.AppConfig.CourtTypeFallback)
	catalogStore, err := catalog.Open(config.AppConfig.CatalogPath, fallback, logger)
	if err != nil {
		logger.Fatal("main: failed to load rate catalog", zap.String("path", config.AppConfig.CatalogPath), zap.Error(err))
	}
	logger.Info("rate catalog loaded", zap.Strings("locations", catalogStore.Current().Locations()))

	students, err := roster.Load(config.AppConfig.RosterPath)
	if err != nil {
		logger.Fatal("main: failed to load roster", zap.Error(err))
	}

	calendarTZ, err := time.LoadLocation(config.AppConfig.CalendarTimeZone)
	if err != nil {
		logger.Fatal("main: invalid calendar time zone", zap.String("tz", config.AppConfig.CalendarTimeZone), zap.Error(err))
	}

	database.InitDB()
	utils.InitCache()

	// repositories.
	plans := planRepo.NewMongoWeekPlanRepo()
	if err := plans.EnsureIndexes(); err != nil {
		logger.Fatal("main: failed to ensure week plan indexes", zap.Error(err))
	}

	// background workers.
	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	utils.StartHealthMonitor(rootCtx, utils.GetCacheClient(), database.MongoClient, 30*time.Second)

	queue := asynq.NewClient(cron.RedisOpt())
	defer queue.Close()
	stopWorker := cron.InitActionWorker(dispatch.NewLoggingDispatcher(logger), catalogStore, logger)

	// services.
	quoteService := booking.NewQuoteService(catalogStore, logger)
	actionService := &actions.DefaultActionService{
		Queue:    queue,
		Claims:   &utils.RedisClaimer{Client: utils.GetCacheClient(), Prefix: utils.PurchaseClaimPrefix},
		Quotes:   quoteService,
		Roster:   students,
		Location: calendarTZ,
		DedupTTL: config.AppConfig.PurchaseDedupTTL,
		Logger:   logger,
	}

	catalogHandler := handlers.NewCatalogHandler(quoteService, catalogStore)
	actionHandler := handlers.NewActionHandler(actionService)
	planHandler := handlers.NewPlanHandler(plans, quoteService, students, calendarTZ)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetLocationsHandler: catalogHandler.GetLocationsHandler,
		GetSlotsHandler:     catalogHandler.GetSlotsHandler,
		QuoteHandler:        catalogHandler.QuoteHandler,

		BuyCreditsHandler:     actionHandler.BuyCreditsHandler,
		BookCourtHandler:      actionHandler.BookCourtHandler,
		MessageStudentHandler: actionHandler.MessageStudentHandler,
		AddToCalendarHandler:  actionHandler.AddToCalendarHandler,

		GetStudentsHandler: planHandler.GetStudentsHandler,
		GetPlanHandler:     planHandler.GetPlanHandler,
		SavePlanHandler:    planHandler.SavePlanHandler,

		ReloadCatalogHandler: catalogHandler.ReloadCatalogHandler,
		HealthHandler:        handlers.HealthHandler,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

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
	stopWorker()
	stopBackground()
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
