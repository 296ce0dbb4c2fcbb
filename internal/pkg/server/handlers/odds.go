package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Vodeneev/easybets/internal/pkg/models"
	"github.com/Vodeneev/easybets/internal/pkg/odds"
)

// OddsService is what the odds endpoints need from odds.Service.
type OddsService interface {
	List(ctx context.Context) ([]models.Match, string, error)
	Get(ctx context.Context, key string) (models.Match, string, error)
	Predictions(ctx context.Context) ([]models.Match, string, error)
}

// Odds serves the /api endpoints.
type Odds struct {
	svc OddsService
}

func NewOdds(svc OddsService) *Odds {
	return &Odds{svc: svc}
}

// HandleList handles /api/odds endpoint
func (h *Odds) HandleList(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.svc.List)
}

// HandlePredictions handles /api/predictions endpoint
func (h *Odds) HandlePredictions(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, h.svc.Predictions)
}

// HandleMatch handles /api/odds/{id}; id is a list index or part of the "Home vs Away" label.
func (h *Odds) HandleMatch(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["id"]

	m, source, err := h.svc.Get(r.Context(), key)
	if errors.Is(err, odds.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("Failed to get match", "key", key, "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("X-Source", source)
	writeJSON(w, http.StatusOK, m)
}

func (h *Odds) serveList(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]models.Match, string, error)) {
	startTime := time.Now()

	matches, source, err := list(r.Context())
	if err != nil {
		slog.Error("Failed to list matches", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}

	w.Header().Set("X-Source", source)
	w.Header().Set("X-Matches-Count", strconv.Itoa(len(matches)))

	slog.Info("Served matches", "path", r.URL.Path, "source", source, "count", len(matches),
		"duration", time.Since(startTime))

	writeJSON(w, http.StatusOK, matches)
}
