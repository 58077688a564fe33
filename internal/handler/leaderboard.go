package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/leveling"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// LeaderboardParams are the inputs of the leaderboard endpoint
type LeaderboardParams struct {
	GuildID string `validate:"required,snowflake"`
	Limit   int    `validate:"min=1,max=50"`
}

// MemberParams are the inputs of the member endpoint
type MemberParams struct {
	GuildID string `validate:"required,snowflake"`
	UserID  string `validate:"required,snowflake"`
}

// LeaderboardResponse is the JSON body of the leaderboard endpoint
type LeaderboardResponse struct {
	GuildID string         `json:"guild_id"`
	Entries []RankedMember `json:"entries"`
}

// RankedMember is the API view of a ranked member
type RankedMember struct {
	Rank      int     `json:"rank"`
	UserID    string  `json:"user_id"`
	Level     int     `json:"level"`
	XP        int64   `json:"xp"`
	NextLevel int64   `json:"next_level_xp"`
	Progress  float64 `json:"progress"`
}

func toRankedMember(m domain.RankedMember) RankedMember {
	return RankedMember{
		Rank:      m.Rank,
		UserID:    formatID(m.UserID),
		Level:     m.Level,
		XP:        m.XP,
		NextLevel: leveling.XPRequired(m.Level + 1),
		Progress:  leveling.Progress(m.XP, m.Level),
	}
}

// HandleGetLeaderboard serves the top of a guild's ordering
func HandleGetLeaderboard(svc leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := LeaderboardParams{
			GuildID: pathParam(r, "guildID"),
			Limit:   queryInt(r, "limit", DefaultLeaderboardLimit),
		}
		if !validateParams(w, r, params) {
			return
		}

		guildID := mustParseID(params.GuildID)
		entries, err := svc.LeaderboardPage(r.Context(), guildID, params.Limit)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetLeaderboardFailed, "guild_id", guildID, "error", err)
			status, msg := statusForError(err, ErrMsgGetLeaderboardFailed)
			respondError(w, status, msg)
			return
		}

		resp := LeaderboardResponse{
			GuildID: params.GuildID,
			Entries: make([]RankedMember, 0, len(entries)),
		}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, toRankedMember(e))
		}

		logger.FromContext(r.Context()).Debug(LogMsgLeaderboardServed, "guild_id", guildID, "entries", len(resp.Entries))
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetMember serves one member's live rank. Members without XP are 404.
func HandleGetMember(svc leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := MemberParams{
			GuildID: pathParam(r, "guildID"),
			UserID:  pathParam(r, "userID"),
		}
		if !validateParams(w, r, params) {
			return
		}

		guildID, userID := mustParseID(params.GuildID), mustParseID(params.UserID)
		member, err := svc.MemberRank(r.Context(), guildID, userID)
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgMemberNotRanked)
			return
		}
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgGetMemberFailed, "guild_id", guildID, "user_id", userID, "error", err)
			status, msg := statusForError(err, ErrMsgGetMemberFailed)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, toRankedMember(*member))
	}
}
