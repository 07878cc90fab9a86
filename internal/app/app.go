package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/quytai0402/KhachSan-sub000/internal/config"
	"github.com/quytai0402/KhachSan-sub000/internal/handler"
	"github.com/quytai0402/KhachSan-sub000/internal/lock"
	"github.com/quytai0402/KhachSan-sub000/internal/middleware"
	"github.com/quytai0402/KhachSan-sub000/internal/notification"
	"github.com/quytai0402/KhachSan-sub000/internal/pricing"
	"github.com/quytai0402/KhachSan-sub000/internal/repository"
	"github.com/quytai0402/KhachSan-sub000/internal/repository/memory"
	"github.com/quytai0402/KhachSan-sub000/internal/router"
	"github.com/quytai0402/KhachSan-sub000/internal/scheduler"
	"github.com/quytai0402/KhachSan-sub000/internal/service"
	"github.com/quytai0402/KhachSan-sub000/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type stores struct {
	reservations ports.ReservationRepo
	rooms        ports.RoomCatalog
	accounts     ports.AccountDirectory
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *notification.EventPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RoomBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	st, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*stores, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.log.Warn("using in-memory storage, reservations are lost on restart")
		return &stores{
			reservations: memory.NewReservationStore(),
			rooms:        memory.NewRoomCatalog(demoRooms()...),
			accounts:     memory.NewAccountDirectory(demoAccounts()...),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return &stores{
		reservations: repository.NewReservationRepo(a.db),
		rooms:        repository.NewRoomRepo(a.db),
		accounts:     repository.NewAccountRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initLocker() (ports.Locker, error) {
	if a.cfg.Redis.Addr == "" {
		a.log.Info("redis address is empty, using in-process locks")
		return lock.NewLocal(a.cfg.Lock.Wait), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return lock.NewRedis(client, a.cfg.Lock.TTL, a.cfg.Lock.Wait, a.log), nil
}

func (a *App) initNotifier() (ports.ReservationNotifier, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.StaffChatID, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram notifier: %w", err)
	}
	fanout := notification.Fanout{tg}

	if a.cfg.RabbitMQ.URL == "" {
		a.log.Info("rabbitmq url is empty, reservation events disabled")
		return fanout, nil
	}

	pub, err := notification.NewEventPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return nil, fmt.Errorf("init event publisher: %w", err)
	}
	a.publisher = pub

	return append(fanout, pub), nil
}

func (a *App) initServices(st *stores) error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	calc, err := pricing.NewCalculator(a.cfg.Booking.TaxRate, a.cfg.Booking.ServiceRate)
	if err != nil {
		return fmt.Errorf("init pricing: %w", err)
	}

	locker, err := a.initLocker()
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	n, err := a.initNotifier()
	if err != nil {
		return err
	}

	availabilityService := service.NewAvailabilityService(st.reservations, st.rooms, calc, a.cfg.Booking.MaxHorizonDays)
	reservationService := service.NewReservationService(
		st.reservations, st.rooms, st.accounts, availabilityService, locker, n, calc, a.log,
		service.ReservationOptions{
			CommitTimeout: a.cfg.Booking.CommitTimeout,
			Location:      loc,
		},
	)
	guestService := service.NewGuestService(st.reservations)

	if a.cfg.Scheduler.Enabled() {
		a.scheduler = scheduler.New(
			reservationService,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	h := handler.NewHandler(reservationService, availabilityService, guestService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("close rabbitmq connection", logger.String("error", err.Error()))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis client", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
