package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/blacklist"
	"github.com/osse101/MinesocBot_Go/internal/concurrency"
	"github.com/osse101/MinesocBot_Go/internal/config"
	"github.com/osse101/MinesocBot_Go/internal/cooldown"
	"github.com/osse101/MinesocBot_Go/internal/database"
	"github.com/osse101/MinesocBot_Go/internal/discord"
	"github.com/osse101/MinesocBot_Go/internal/economy"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/eventlog"
	"github.com/osse101/MinesocBot_Go/internal/guildconfig"
	"github.com/osse101/MinesocBot_Go/internal/handler"
	"github.com/osse101/MinesocBot_Go/internal/leveling"
	"github.com/osse101/MinesocBot_Go/internal/profile"
	"github.com/osse101/MinesocBot_Go/internal/reminder"
	"github.com/osse101/MinesocBot_Go/internal/scheduler"
	"github.com/osse101/MinesocBot_Go/internal/server"
	"github.com/osse101/MinesocBot_Go/internal/tags"
	"github.com/osse101/MinesocBot_Go/internal/worker"
)

// App is the fully wired bot: gateway, HTTP surface and background jobs
type App struct {
	DB        *pgxpool.Pool
	Bus       event.Bus
	Publisher *event.ResilientPublisher
	Bot       *discord.Bot
	Server    *server.Server
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// New connects to the database, applies migrations and builds every service.
// Nothing talks to Discord until Run.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	ownerID, err := parseOptionalID(cfg.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidOwnerID, err)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	app, err := build(ctx, cfg, dbPool, ownerID)
	if err != nil {
		dbPool.Close()
		return nil, err
	}
	return app, nil
}

func build(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, ownerID int64) (*App, error) {
	if err := database.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)

	handler.InitValidator()

	bus, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		return nil, err
	}
	repos := InitializeRepositories(dbPool)

	registry := discord.NewDefaultRegistry()

	guildSvc := guildconfig.NewService(repos.GuildConfig, guildconfig.Config{
		DefaultPrefix: cfg.DefaultPrefix,
		CacheTTL:      guildconfig.DefaultCacheTTL,
		Commands:      registry.Names(),
	})
	blacklistSvc := blacklist.NewService(repos.Blacklist)
	cooldownSvc := cooldown.NewPostgresService(dbPool, cooldown.Config{})
	economySvc := economy.NewService(repos.Economy, cooldownSvc)

	catalog, err := profile.LoadCatalog(ctx, cfg.BackgroundsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	if _, err := CheckShopBackgrounds(ctx, economySvc, catalog); err != nil {
		return nil, err
	}
	renderer, err := profile.NewRenderer(catalog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateRenderer, err)
	}

	levelingSvc := leveling.NewService(repos.Levels, guildSvc, catalog, economySvc, publisher,
		concurrency.NewLockManager(), leveling.Config{
			Cooldown:        cfg.XPCooldown,
			XPMin:           cfg.XPMin,
			XPMax:           cfg.XPMax,
			LeaderboardSize: cfg.LeaderboardSize,
			CacheTTL:        cfg.LeaderboardCacheTTL,
		})

	parser, err := reminder.NewTimeParser()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateTimeParser, err)
	}
	reminderSvc := reminder.NewService(repos.Reminders, parser)
	eventLogSvc := eventlog.NewService(repos.EventLog)

	bot, err := discord.New(discord.Config{
		Token:              cfg.DiscordToken,
		AppID:              cfg.DiscordAppID,
		DevGuildID:         cfg.DevGuildID,
		ForceCommandUpdate: cfg.ForceCommandUpdate,
		StoreTimeout:       cfg.StoreTimeout,
	}, &discord.Services{
		Leveling:    levelingSvc,
		Guilds:      guildSvc,
		Guard:       guildconfig.NewGuard(guildSvc, blacklistSvc),
		Blacklist:   blacklistSvc,
		Economy:     economySvc,
		Reminders:   reminderSvc,
		Tags:        tags.NewService(repos.Tags),
		Renderer:    renderer,
		Backgrounds: catalog,
		Avatars:     discord.NewAvatarFetcher(nil, cfg.AvatarFetchTimeout),
		Registry:    registry,
		OwnerID:     ownerID,
	}, blacklist.NewGuildJoinGate(blacklistSvc, publisher))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateBot, err)
	}

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:        bus,
		Announcer:       discord.NewAnnouncer(bot.Session, cfg.AnnounceRate, cfg.AnnounceBurst),
		EventLogService: eventLogSvc,
	}); err != nil {
		return nil, err
	}

	pool := worker.NewPool(WorkerCount, WorkerQueueSize).WithJobTimeout(cfg.StoreTimeout * 4)
	sched := scheduler.New(pool)
	sched.Schedule(JobNameReminderDispatch, cfg.ReminderPollInterval,
		reminder.NewDispatchJob(repos.Reminders, discord.NewReminderDeliverer(bot.Session), reminder.DefaultDispatchBatch))
	sched.ScheduleImmediate(JobNameEventLogCleanup, EventLogCleanupInterval,
		eventlog.NewCleanupJob(eventLogSvc, cfg.EventLogRetention))
	sched.Schedule(JobNameStatusRotation, cfg.StatusRotateInterval, discord.NewStatusRotator(bot.Session))

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Deps{
		DB:       dbPool,
		Leveling: levelingSvc,
		EventLog: eventLogSvc,
	})

	return &App{
		DB:        dbPool,
		Bus:       bus,
		Publisher: publisher,
		Bot:       bot,
		Server:    srv,
		Pool:      pool,
		Scheduler: sched,
	}, nil
}

// Run starts the background jobs, the HTTP server and the gateway, then blocks
// until ctx is cancelled or the HTTP server fails. Everything is stopped before
// Run returns.
func (a *App) Run(ctx context.Context) error {
	a.Pool.Start()
	a.Scheduler.Start()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Server.Start(ctx)
	}()

	if err := a.Bot.Start(ctx); err != nil {
		a.shutdown()
		return fmt.Errorf("%s: %w", ErrMsgFailedStartBot, err)
	}
	slog.Info(LogMsgAppStarted)

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error(LogMsgServerFailed, "error", err)
			runErr = err
		}
	}

	a.shutdown()
	return runErr
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	GracefulShutdown(ctx, ShutdownComponents{
		Bot:                a.Bot,
		Server:             a.Server,
		Scheduler:          a.Scheduler,
		WorkerPool:         a.Pool,
		ResilientPublisher: a.Publisher,
	})
	a.DB.Close()
}

// parseOptionalID parses a snowflake setting; empty means unset
func parseOptionalID(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
