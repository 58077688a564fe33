package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/database/postgres"
	"github.com/osse101/MinesocBot_Go/internal/eventlog"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Levels      repository.Levels
	GuildConfig repository.GuildConfig
	Blacklist   repository.Blacklist
	Economy     repository.Economy
	Reminders   repository.Reminders
	Tags        repository.Tags
	EventLog    eventlog.Repository
}

// InitializeRepositories creates the Postgres repositories on one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Levels:      postgres.NewLevelsRepository(dbPool),
		GuildConfig: postgres.NewGuildConfigRepository(dbPool),
		Blacklist:   postgres.NewBlacklistRepository(dbPool),
		Economy:     postgres.NewEconomyRepository(dbPool),
		Reminders:   postgres.NewReminderRepository(dbPool),
		Tags:        postgres.NewTagRepository(dbPool),
		EventLog:    postgres.NewEventLogRepository(dbPool),
	}
}
