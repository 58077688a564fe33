package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesocBot_Go/internal/eventlog"
)

// EventLogRepository implements eventlog.Repository
type EventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *EventLogRepository) LogEvent(ctx context.Context, evt eventlog.Event) error {
	query := `
		INSERT INTO event_log (event_type, guild_id, user_id, payload, metadata)
		VALUES ($1, $2, $3, $4, $5)
	`

	var metadataJSON []byte
	if evt.Metadata != nil {
		var err error
		metadataJSON, err = json.Marshal(evt.Metadata)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", opEncodeEvent, err)
		}
	}

	_, err := r.db.Exec(ctx, query, evt.EventType, nullableInt64(evt.GuildID), nullableInt64(evt.UserID),
		[]byte(evt.Payload), metadataJSON)
	if err != nil {
		return wrap(opLogEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria
func (r *EventLogRepository) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, event_type, guild_id, user_id, payload, metadata, created_at
		FROM event_log
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.GuildID != nil {
		fmt.Fprintf(&queryBuilder, " AND guild_id = $%d", argNum)
		args = append(args, *filter.GuildID)
		argNum++
	}

	if filter.UserID != nil {
		fmt.Fprintf(&queryBuilder, " AND user_id = $%d", argNum)
		args = append(args, *filter.UserID)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, wrap(opQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM event_log
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, wrap(opCleanupEvents, err)
	}

	return result.RowsAffected(), nil
}

// scanEvents scans rows into Event structs
func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	var events []eventlog.Event

	for rows.Next() {
		var evt eventlog.Event
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&evt.GuildID,
			&evt.UserID,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, wrap(opScanRow, err)
		}
		evt.Payload = payloadJSON

		// Unmarshal metadata if present
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, fmt.Errorf("failed to %s: %w", opDecodeEvent, err)
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, wrap(opIterRows, err)
	}

	return events, nil
}
