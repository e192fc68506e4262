// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rosterlab/tradescout/internal/domain/finder"
	"github.com/rosterlab/tradescout/internal/domain/matchmaking"
	"github.com/rosterlab/tradescout/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	GenerateTradeCandidates(ctx context.Context, userTeamID string, league *model.LeagueContext, assets map[string][]model.PricedAsset, objective model.Objective, mode model.FinderMode) finder.Result
	FindBestPartners(ctx context.Context, userTeamID string, goal model.PartnerGoal, targetPlayer string, league *model.LeagueContext, assets map[string][]model.PricedAsset, tendencies map[string]model.TendencyProfile, maxResults int) matchmaking.Result
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	candidatesHandler *CandidatesHandler
	partnersHandler   *PartnersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		candidatesHandler: NewCandidatesHandler(deps),
		partnersHandler:   NewPartnersHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/v1/candidates", MetricsMiddleware(RequestIDMiddleware(s.candidatesHandler.HandlePostCandidates), "candidates"))
	mux.HandleFunc("/v1/partners", MetricsMiddleware(RequestIDMiddleware(s.partnersHandler.HandlePostPartners), "partners"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
