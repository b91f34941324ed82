package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AvishekRimal/student-planner/internal/auth"
	"github.com/AvishekRimal/student-planner/internal/cache"
	"github.com/AvishekRimal/student-planner/internal/config"
	"github.com/AvishekRimal/student-planner/internal/jobs"
	"github.com/AvishekRimal/student-planner/internal/notify"
	"github.com/AvishekRimal/student-planner/internal/repo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	cfg       config.Config
	logger    *zap.Logger
	db        *pgxpool.Pool
	redis     *redis.Client
	router    *gin.Engine
	scheduler *jobs.Scheduler
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{cfg: cfg, logger: logger}

	db, err := newPostgres(cfg.PG.DSN)
	if err != nil {
		return nil, err
	}
	a.db = db

	rdb, err := newRedis(cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}
	a.redis = rdb

	if err := runMigrations(cfg.PG.DSN, "./migrations"); err != nil {
		a.redis.Close()
		a.db.Close()
		return nil, err
	}

	taskRepo := repo.NewPGTaskRepo(db)
	noteRepo := repo.NewPGNoteRepo(db)
	userRepo := repo.NewPGUserRepo(db)
	statsCache := cache.NewStatsCache(rdb, cfg.Redis.StatsTTL.Duration())
	sessions := auth.NewStore(rdb, 24*time.Hour)

	a.router = newRouter(cfg, routerDeps{
		sessions:   sessions,
		tasks:      taskRepo,
		notes:      noteRepo,
		users:      userRepo,
		statsCache: statsCache,
	})

	if cfg.Jobs.Enabled {
		sched := jobs.NewScheduler(time.Local, logger)
		if _, err := sched.Register(cfg.Jobs.RecurrenceCron,
			jobs.NewRecurrenceJob(taskRepo, statsCache, logger)); err != nil {
			a.redis.Close()
			a.db.Close()
			return nil, fmt.Errorf("schedule recurrence job: %w", err)
		}
		if _, err := sched.Register(cfg.Jobs.ReminderCron,
			jobs.NewReminderJob(userRepo, taskRepo, newMailer(cfg, logger), logger)); err != nil {
			a.redis.Close()
			a.db.Close()
			return nil, fmt.Errorf("schedule reminder job: %w", err)
		}
		a.scheduler = sched
	}

	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// StartJobs launches the cron scheduler, if jobs are enabled.
func (a *App) StartJobs() {
	if a.scheduler != nil {
		a.scheduler.Start()
		a.logger.Info("background jobs scheduled",
			zap.String("recurrence", a.cfg.Jobs.RecurrenceCron),
			zap.String("reminder", a.cfg.Jobs.ReminderCron),
		)
	}
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	return nil
}

// newMailer picks the SMTP dispatcher when a host is configured, otherwise
// digests only go to the log.
func newMailer(cfg config.Config, logger *zap.Logger) notify.Dispatcher {
	if cfg.SMTP.Host == "" {
		return notify.NewLogMailer(logger)
	}
	return notify.NewSMTPMailer(cfg.SMTP)
}

func newPostgres(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(dsn string, migrationsDir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newRouter(cfg config.Config, deps routerDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, deps)
	return r
}
