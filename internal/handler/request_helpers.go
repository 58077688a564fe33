package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// validateParams validates a parameter struct. On failure the 400 response has
// already been written and the handler should return.
func validateParams(w http.ResponseWriter, r *http.Request, params any) bool {
	if err := GetValidator().ValidateStruct(params); err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgInvalidParams, "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// pathParam reads a chi URL parameter
func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// queryInt reads an integer query parameter. Missing values yield def;
// malformed values yield -1 so range validation rejects them.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

// mustParseID converts an id that already passed snowflake validation
func mustParseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}
