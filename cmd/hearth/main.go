package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"hearth/config"
	chatrepo "hearth/internal/chat/repository"
	maintenancehttp "hearth/internal/maintenance/delivery/http"
	maintenancerepo "hearth/internal/maintenance/repository"
	maintenanceuc "hearth/internal/maintenance/usecase"
	"hearth/internal/notify"
	presencehttp "hearth/internal/presence/delivery/http"
	presencerepo "hearth/internal/presence/repository"
	presenceuc "hearth/internal/presence/usecase"
	propertyhttp "hearth/internal/property/delivery/http"
	propertyrepo "hearth/internal/property/repository"
	propertyuc "hearth/internal/property/usecase"
	"hearth/internal/scheduler"
	userrepo "hearth/internal/user/repository"
	"hearth/pkg/logger"
)

const (
	defaultPresenceSweepInterval  = 10 * time.Second
	defaultRetentionSweepInterval = 24 * time.Hour
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	db := bun.NewDB(sql.OpenDB(connector), pgdialect.New())
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to ping redis: %v", err)
	}

	nc, err := nats.Connect(cfg.NATS.URL,
		nats.Name(cfg.NATS.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	defer nc.Drain()

	users := userrepo.NewUserRepository(db, *lg)
	rooms := chatrepo.NewChatRoomRepository(db, *lg)
	properties := propertyrepo.NewPropertyRepository(db, *lg)
	requests := maintenancerepo.NewMaintenanceRepository(db, *lg)
	presences := presencerepo.NewPresenceRepository(rdb, *lg)

	dispatcher := notify.NewDispatcher(notify.NewNATSPublisher(nc, *lg), cfg.Notify, *lg)
	dispatcher.Run(ctx)

	presenceUC := presenceuc.NewPresenceUsecase(presences, rooms, dispatcher, cfg.Presence, *lg)
	propertyUC := propertyuc.NewPropertyUsecase(properties, rooms, users, dispatcher, cfg.Retention, *lg)
	maintenanceUC := maintenanceuc.NewMaintenanceUsecase(requests, properties, dispatcher, *lg)

	sched := scheduler.New(*lg)
	sched.Add(scheduler.Job{
		Name:     "presence_sweep",
		Interval: intervalOr(cfg.Presence.SweepInterval, defaultPresenceSweepInterval),
		Run:      presenceUC.Sweep,
	})
	sched.Add(scheduler.Job{
		Name:     "property_expire_sweep",
		Interval: intervalOr(cfg.Retention.SweepInterval, defaultRetentionSweepInterval),
		Run:      propertyUC.ExpireSweep,
	})
	sched.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	presencehttp.NewPresenceHandler(presenceUC, *lg).RegisterRoutes(e)
	propertyhttp.NewPropertyHandler(propertyUC, *lg).RegisterRoutes(e)
	maintenancehttp.NewMaintenanceHandler(maintenanceUC, *lg).RegisterRoutes(e)

	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			lg.Error("server stopped", "err", err)
			stop()
		}
	}()
	lg.Info("server started", "port", port, "environment", cfg.Server.Environment)

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown failed", "err", err)
	}

	sched.Wait()
	dispatcher.Wait()
	lg.Info("shutdown complete")
}

func intervalOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
