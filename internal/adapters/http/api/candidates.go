package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rosterlab/tradescout/internal/domain/model"
)

// candidatesRequest mirrors the POST /v1/candidates schema.
type candidatesRequest struct {
	UserTeamID string                         `json:"user_team_id"`
	Objective  model.Objective                `json:"objective"`
	Mode       model.FinderMode               `json:"mode"`
	League     *model.LeagueContext           `json:"league"`
	Assets     map[string][]model.PricedAsset `json:"assets"`
}

func (r *candidatesRequest) validate() error {
	switch {
	case strings.TrimSpace(r.UserTeamID) == "":
		return errors.New("missing user_team_id")
	case r.League == nil:
		return errors.New("missing league")
	}
	switch r.Objective {
	case model.WinNow, model.Rebuild, model.Balanced:
	case "":
		r.Objective = model.Balanced
	default:
		return errors.New("invalid objective")
	}
	switch r.Mode {
	case model.ModeFast, model.ModeDeep:
	case "":
		r.Mode = model.ModeFast
	default:
		return errors.New("invalid mode")
	}
	return nil
}

// CandidatesHandler handles trade candidate generation requests.
type CandidatesHandler struct {
	deps Dependencies
}

// NewCandidatesHandler creates a new candidates handler.
func NewCandidatesHandler(deps Dependencies) *CandidatesHandler {
	return &CandidatesHandler{deps: deps}
}

// HandlePostCandidates handles POST /v1/candidates requests.
func (h *CandidatesHandler) HandlePostCandidates(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_candidates"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req candidatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res := h.deps.GenerateTradeCandidates(r.Context(), req.UserTeamID, req.League, req.Assets, req.Objective, req.Mode)
	writeJSON(w, http.StatusOK, res)
}
