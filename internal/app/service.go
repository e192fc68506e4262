// Package app provides the core business service that implements the
// dependencies required by the HTTP API: trade candidate generation and
// partner matchmaking over request-scoped league snapshots.
package app

import (
	"context"
	"time"

	"github.com/rosterlab/tradescout/internal/domain/finder"
	"github.com/rosterlab/tradescout/internal/domain/matchmaking"
	"github.com/rosterlab/tradescout/internal/domain/model"
	"github.com/rosterlab/tradescout/pkg/logger"
	"github.com/rosterlab/tradescout/pkg/metrics"
)

// Service wires the finder and matchmaker behind one facade. It holds no
// request state, so a single Service serves concurrent requests without
// coordination.
type Service struct {
	finder  *finder.Finder
	matcher *matchmaking.Matcher
	log     logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithFinderOptions forwards options to the finder.
func WithFinderOptions(opts ...finder.Option) Option {
	return func(s *Service) {
		s.finder = finder.New(opts...)
	}
}

// WithMatcherOptions forwards options to the matchmaker.
func WithMatcherOptions(opts ...matchmaking.Option) Option {
	return func(s *Service) {
		s.matcher = matchmaking.New(opts...)
	}
}

// New creates a Service with default engine configuration, then applies
// options.
func New(opts ...Option) *Service {
	s := &Service{
		finder:  finder.New(),
		matcher: matchmaking.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("app")
	}
	return s
}

// GenerateTradeCandidates runs the finder pipeline for one requesting team.
func (s *Service) GenerateTradeCandidates(ctx context.Context, userTeamID string, league *model.LeagueContext, assets map[string][]model.PricedAsset, objective model.Objective, mode model.FinderMode) finder.Result {
	start := time.Now()
	res := s.finder.GenerateTradeCandidates(userTeamID, league, assets, objective, mode)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	metrics.RecordFinderRun(res.PartnersEvaluated, res.RawCandidatesGenerated, res.PrunedTo, elapsed)
	s.log.Info(ctx, "finder run complete",
		logger.String("team", userTeamID),
		logger.String("objective", string(objective)),
		logger.String("mode", string(mode)),
		logger.Int("partners", res.PartnersEvaluated),
		logger.Int("raw", res.RawCandidatesGenerated),
		logger.Int("returned", res.PrunedTo),
	)
	return res
}

// FindBestPartners ranks trading partners for a declared goal.
func (s *Service) FindBestPartners(ctx context.Context, userTeamID string, goal model.PartnerGoal, targetPlayer string, league *model.LeagueContext, assets map[string][]model.PricedAsset, tendencies map[string]model.TendencyProfile, maxResults int) matchmaking.Result {
	start := time.Now()
	res := s.matcher.FindBestPartners(userTeamID, goal, targetPlayer, league, assets, tendencies, maxResults)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	metrics.RecordMatchRun(res.Stats.PartnersEvaluated, elapsed)
	s.log.Info(ctx, "matchmaking run complete",
		logger.String("team", userTeamID),
		logger.String("goal", string(goal)),
		logger.Int("ranked", res.Stats.PartnersEvaluated),
		logger.Int("returned", len(res.Partners)),
	)
	return res
}
