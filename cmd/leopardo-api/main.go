// README: Entry point; loads config, wires services, starts HTTP server and background sweeper.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Castanheira1/leopardo-api/internal/auth"
	"github.com/Castanheira1/leopardo-api/internal/config"
	"github.com/Castanheira1/leopardo-api/internal/db"
	httptransport "github.com/Castanheira1/leopardo-api/internal/http"
	"github.com/Castanheira1/leopardo-api/internal/infra"
	"github.com/Castanheira1/leopardo-api/internal/modules/account"
	"github.com/Castanheira1/leopardo-api/internal/modules/booking"
	"github.com/Castanheira1/leopardo-api/internal/modules/reporting"
	"github.com/Castanheira1/leopardo-api/internal/modules/vehicle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(os.Getenv("LEOPARDO_ENV") == "development")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.MigrateUp(ctx, cfg.DB.DSN); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()

	uploader, err := infra.NewPhotoUploader(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile, cfg.Storage.MaxPhotoBytes)
	if err != nil {
		logger.Fatal("init object storage", zap.Error(err))
	}

	reportLoc, err := time.LoadLocation(cfg.Report.TimeZone)
	if err != nil {
		logger.Fatal("load report time zone", zap.Error(err))
	}

	sessions := auth.NewRedisSessionStore(redisClient)
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, sessions)

	accountStore := account.NewStore(dbPool)
	accountSvc := account.NewService(accountStore, sessions, cfg.Auth.DefaultPassword)

	vehicleStore := vehicle.NewStore(dbPool)
	vehicleSvc := vehicle.NewService(vehicleStore, uploader)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore)

	reportingStore := reporting.NewStore(dbPool)
	reportingSvc := reporting.NewService(reportingStore, reportLoc)

	sweeper := booking.NewSweeper(bookingSvc, cfg.Sweeper.Interval, cfg.Sweeper.PendingTTL, logger)
	go sweeper.Run(ctx)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Accounts:      accountSvc,
		Vehicles:      vehicleSvc,
		Booking:       bookingSvc,
		Reporting:     reportingSvc,
		Issuer:        issuer,
		Logger:        logger,
		MaxPhotoBytes: cfg.Storage.MaxPhotoBytes,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("serve", zap.Error(err))
	}
}
