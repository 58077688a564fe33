package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/eventlog"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// EventsParams are the inputs of the guild events endpoint
type EventsParams struct {
	GuildID string `validate:"required,snowflake"`
	Type    string `validate:"omitempty,oneof=level.up xp.awarded guild.blacklisted"`
	Limit   int    `validate:"min=1,max=100"`
}

// EventView is the API view of an audit log entry
type EventView struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	UserID    string          `json:"user_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// HandleGetGuildEvents serves the newest audit log entries of a guild
func HandleGetGuildEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := EventsParams{
			GuildID: pathParam(r, "guildID"),
			Type:    r.URL.Query().Get("type"),
			Limit:   queryInt(r, "limit", DefaultEventsLimit),
		}
		if !validateParams(w, r, params) {
			return
		}

		guildID := mustParseID(params.GuildID)
		filter := eventlog.EventFilter{GuildID: &guildID, Limit: params.Limit}
		if params.Type != "" {
			filter.EventType = &params.Type
		}

		events, err := svc.Recent(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetEventsFailed, "guild_id", guildID, "error", err)
			status, msg := statusForError(err, ErrMsgGetEventsFailed)
			respondError(w, status, msg)
			return
		}

		views := make([]EventView, 0, len(events))
		for _, e := range events {
			v := EventView{ID: e.ID, Type: e.EventType, Payload: e.Payload, CreatedAt: e.CreatedAt}
			if e.UserID != nil {
				v.UserID = formatID(*e.UserID)
			}
			views = append(views, v)
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
