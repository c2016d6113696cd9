package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/config"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/database"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/health"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/logger"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/middleware"
	natspkg "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/nats"
	nrpkg "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/newrelic"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/server"
	pkgws "github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/websocket"
	dispatchGateway "github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/gateway"
	dispatchHandler "github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/handler"
	dispatchHTTP "github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/handler/http"
	dispatchRepo "github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/repository"
	dispatchUsecase "github.com/Simphiwe396/swift-ride-delivery-sub000/services/dispatch/usecase"
	trackingGateway "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/gateway"
	trackingHandler "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/handler"
	trackingHTTP "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/handler/http"
	trackingNATS "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/handler/nats"
	trackingWS "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/handler/websocket"
	trackingRepo "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/repository"
	"github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/store"
	trackingUsecase "github.com/Simphiwe396/swift-ride-delivery-sub000/services/tracking/usecase"
)

func main() {
	appName := "swift-ride"
	configs := config.InitConfig(".env")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Authoritative driver state lives in process; Redis and Postgres
	// hold projections and trip records.
	driverStore := store.NewDriverStore()
	wsManager := pkgws.NewManager(configs.JWT)

	locationRepo := trackingRepo.NewLocationRepo(redisClient, configs)
	trackingGW := trackingGateway.NewTrackingGW(natsClient)
	trackingUC := trackingUsecase.NewTrackingUC(driverStore, locationRepo, trackingGW, wsManager, configs)

	tripRepo := dispatchRepo.NewTripRepository(configs, postgresClient)
	dispatchGW := dispatchGateway.NewDispatchGW(natsClient)
	dispatchUC := dispatchUsecase.NewDispatchUC(driverStore, tripRepo, dispatchGW, wsManager, configs)

	driverHandler := trackingHTTP.NewDriverHandler(trackingUC, configs)
	wsHandler := trackingWS.NewWebSocketHandler(trackingUC, dispatchUC, wsManager)
	tripEvents := trackingNATS.NewTripEventsHandler(natsClient, wsManager)
	trackingH := trackingHandler.NewHandler(driverHandler, wsHandler, tripEvents)

	tripHandler := dispatchHTTP.NewTripHandler(dispatchUC)
	dispatchH := dispatchHandler.NewHandler(tripHandler)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, map[string]health.Checker{
		"postgres": func(ctx context.Context) error { return postgresClient.PingContext(ctx) },
		"redis":    func(ctx context.Context) error { return redisClient.GetClient().Ping(ctx).Err() },
	})

	if err := trackingH.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to register tracking routes", logger.Err(err))
	}
	dispatchH.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		trackingH.Close()
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}
}
