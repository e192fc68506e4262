package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rosterlab/tradescout/internal/domain/matchmaking"
	"github.com/rosterlab/tradescout/internal/domain/model"
)

// partnersRequest mirrors the POST /v1/partners schema.
type partnersRequest struct {
	UserTeamID   string                           `json:"user_team_id"`
	Goal         model.PartnerGoal                `json:"goal"`
	TargetPlayer string                           `json:"target_player,omitempty"`
	League       *model.LeagueContext             `json:"league"`
	Assets       map[string][]model.PricedAsset   `json:"assets"`
	Tendencies   map[string]model.TendencyProfile `json:"tendencies,omitempty"`
	MaxResults   int                              `json:"max_results,omitempty"`
}

func (r *partnersRequest) validate() error {
	switch {
	case strings.TrimSpace(r.UserTeamID) == "":
		return errors.New("missing user_team_id")
	case r.League == nil:
		return errors.New("missing league")
	case !matchmaking.KnownGoal(r.Goal):
		return errors.New("unknown goal")
	case r.Goal == model.GoalSpecificPlayer && strings.TrimSpace(r.TargetPlayer) == "":
		return errors.New("goal SPECIFIC_PLAYER requires target_player")
	case r.MaxResults < 0:
		return errors.New("max_results must not be negative")
	}
	return nil
}

// PartnersHandler handles partner matchmaking requests.
type PartnersHandler struct {
	deps Dependencies
}

// NewPartnersHandler creates a new partners handler.
func NewPartnersHandler(deps Dependencies) *PartnersHandler {
	return &PartnersHandler{deps: deps}
}

// HandlePostPartners handles POST /v1/partners requests.
func (h *PartnersHandler) HandlePostPartners(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_partners"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req partnersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res := h.deps.FindBestPartners(r.Context(), req.UserTeamID, req.Goal, req.TargetPlayer, req.League, req.Assets, req.Tendencies, req.MaxResults)
	writeJSON(w, http.StatusOK, res)
}
