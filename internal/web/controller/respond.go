package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hubwiki/internal/history"
	"hubwiki/internal/remote"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// handleError maps backend and selection errors onto HTTP statuses: a
// missing page is distinguishable from a transient backend failure.
func handleError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, remote.ErrNotFound):
		respondError(w, http.StatusNotFound, "wiki page not found")
	case errors.Is(err, history.ErrIncompleteSelection):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, remote.ErrUpstream):
		logger.Warn("backend failure", zap.Error(err))
		respondError(w, http.StatusBadGateway, "wiki backend unavailable, try again")
	default:
		logger.Error("unhandled error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
