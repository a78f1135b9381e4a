// Package service wires scoring, formation selection, balancing and pitch
// placement into the request-level operations used by the CLI.
package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/domain/archetype"
	"github.com/okian/lineup/internal/domain/balance"
	"github.com/okian/lineup/internal/domain/dedupe"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/pitch"
	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/scoring"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Headcount bounds for one balancing request.
const (
	MinHeadcount = 10
	MaxHeadcount = 24
)

// Service is the main application service. It is safe for concurrent use.
type Service struct {
	logger  logger.Logger
	metrics *metrics.Manager

	archetypes *archetype.Catalog
	formations *formation.Catalog

	specialistMargin float64
	specialistRatio  float64
	maxSwaps         int
	tolerance        float64
	policy           balance.OpenSlotPolicy

	scorer   *scoring.Scorer
	balancer *balance.Balancer

	requests      atomic.Int64
	balanced      atomic.Int64
	rejected      atomic.Int64
	playersScored atomic.Int64
}

// New creates a new service instance with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		logger:           logger.Nop(),
		metrics:          metrics.Global(),
		archetypes:       archetype.Default(),
		formations:       formation.Default(),
		specialistMargin: scoring.DefaultSpecialistMargin,
		maxSwaps:         balance.DefaultMaxSwapIterations,
		tolerance:        balance.DefaultTolerance,
		policy:           balance.LeaveOpen,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.scorer = scoring.NewScorer(
		scoring.WithCatalog(s.archetypes),
		scoring.WithSpecialistMargin(s.specialistMargin),
		scoring.WithSpecialistRatio(s.specialistRatio),
	)
	s.balancer = balance.New(
		balance.WithMaxSwapIterations(s.maxSwaps),
		balance.WithTolerance(s.tolerance),
		balance.WithOpenSlotPolicy(s.policy),
	)
	return s
}

// Request is one balancing request. Zero Headcount means the number of
// distinct players; empty formation names let the engine choose.
type Request struct {
	Players    []model.Player
	Headcount  int
	FormationA string
	FormationB string
}

// Result is the outcome of a successful Balance call.
type Result struct {
	RunID      string
	Assignment balance.Assignment
	Formations [2]formation.Formation
	Sheets     [2]types.TeamSheet
	// Duplicates lists repeated player ids that were skipped, in input order.
	Duplicates []string
}

// Balance scores the pool and splits it into two positioned teams.
func (s *Service) Balance(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := s.logger.With(logger.String("run_id", runID))
	s.requests.Add(1)

	res, err := s.balance(ctx, runID, req)
	if err != nil {
		s.rejected.Add(1)
		s.metrics.RecordRejected(errorType(err))
		log.Warn(ctx, "balance rejected", logger.Error(err), logger.Int("players", len(req.Players)))
		return nil, err
	}

	a := res.Assignment
	outcome := metrics.BalanceOutcome{
		Result:         metrics.ResultUnbalanced,
		DurationMs:     float64(time.Since(start).Microseconds()) / 1000,
		Gap:            a.Gap,
		SwapIterations: a.SwapIterations,
		Unplaced:       len(a.Unplaced),
		OpenSlots:      len(a.Teams[balance.TeamA].Open) + len(a.Teams[balance.TeamB].Open),
	}
	if a.Balanced {
		outcome.Result = metrics.ResultBalanced
		s.balanced.Add(1)
	}
	s.metrics.RecordBalance(outcome)

	log.Info(ctx, "balance completed",
		logger.String("formation_a", res.Formations[balance.TeamA].Name),
		logger.String("formation_b", res.Formations[balance.TeamB].Name),
		logger.Float64("score_a", a.Teams[balance.TeamA].Score),
		logger.Float64("score_b", a.Teams[balance.TeamB].Score),
		logger.Float64("gap", a.Gap),
		logger.Bool("balanced", a.Balanced),
		logger.Int("swaps", a.SwapIterations),
		logger.Int("unplaced", len(a.Unplaced)),
		logger.Int("duplicates", len(res.Duplicates)),
		logger.Duration("took", time.Since(start)),
	)
	if !a.Balanced {
		log.Warn(ctx, "teams outside balance tolerance",
			logger.Float64("gap", a.Gap), logger.Float64("tolerance", s.tolerance))
	}
	return res, nil
}

func (s *Service) balance(ctx context.Context, runID string, req Request) (*Result, error) {
	if len(req.Players) == 0 {
		return nil, ErrEmptyPool
	}

	seen := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(len(req.Players)))
	var (
		players    []model.Player
		duplicates []string
	)
	for i, p := range req.Players {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: player %d has no id", ErrInvalidPlayer, i)
		}
		if seen.SeenAndRecord(ctx, p.ID) {
			duplicates = append(duplicates, p.ID)
			continue
		}
		players = append(players, p)
	}

	headcount := req.Headcount
	if headcount == 0 {
		headcount = len(players)
	}
	if headcount < MinHeadcount || headcount > MaxHeadcount {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidHeadcount, headcount, MinHeadcount, MaxHeadcount)
	}
	if len(players) > MaxHeadcount {
		return nil, fmt.Errorf("%w: pool of %d exceeds %d", ErrInvalidHeadcount, len(players), MaxHeadcount)
	}

	sizes := [2]int{(headcount + 1) / 2, headcount / 2}
	fs, err := s.pickFormations(sizes, req.FormationA, req.FormationB)
	if err != nil {
		return nil, err
	}

	cands := make([]balance.Candidate, len(players))
	for i, p := range players {
		cands[i] = balance.Candidate{Player: p, Zones: s.scorer.Zones(p.Stats)}
	}
	s.playersScored.Add(int64(len(cands)))
	s.metrics.RecordPlayersScored(len(cands))

	a, err := s.balancer.Balance(ctx, cands, fs[balance.TeamA], fs[balance.TeamB])
	if err != nil {
		s.metrics.RecordError("balance")
		return nil, err
	}

	res := &Result{RunID: runID, Assignment: a, Formations: fs, Duplicates: duplicates}
	for i := range a.Teams {
		res.Sheets[i] = Sheet(a.Teams[i])
	}
	return res, nil
}

// pickFormations resolves overrides and fills the rest from the catalog.
// With equal team sizes a single override applies to both sides.
func (s *Service) pickFormations(sizes [2]int, nameA, nameB string) ([2]formation.Formation, error) {
	var out [2]formation.Formation
	if sizes[0] == sizes[1] {
		switch {
		case nameB == "":
			nameB = nameA
		case nameA == "":
			nameA = nameB
		}
	}
	for i, name := range []string{nameA, nameB} {
		if name == "" {
			f, err := s.formations.Select(sizes[i])
			if err != nil {
				return out, err
			}
			out[i] = f
			continue
		}
		f, err := s.formations.ByName(name)
		if err != nil {
			return out, fmt.Errorf("%w: %q", ErrUnknownFormation, name)
		}
		if f.Size() > sizes[i] {
			return out, fmt.Errorf("%w: %s needs %d players, team %s has %d",
				ErrFormationMismatch, f.Name, f.Size(), balance.Team(i), sizes[i])
		}
		out[i] = f
	}
	return out, nil
}

// Sheet renders a roster as a team sheet with pitch coordinates. Lines are in
// pitch order and open slots keep their place in the formation.
func Sheet(r balance.Roster) types.TeamSheet {
	f := r.Formation
	sheet := types.TeamSheet{
		Team:      r.Team.String(),
		Formation: f.Name,
		Score:     r.Score,
		Players:   []types.LineupEntry{},
	}
	for _, p := range position.All() {
		for _, slot := range r.Lines[p] {
			c := pitch.Place(p, slot.SlotIndex, f.Count(p), &f)
			sheet.Players = append(sheet.Players, types.LineupEntry{
				PlayerID:    slot.PlayerID,
				Name:        slot.Name,
				Position:    p.String(),
				SlotIndex:   slot.SlotIndex,
				Score:       slot.Score,
				X:           c.X,
				Y:           c.Y,
				Placeholder: slot.Placeholder,
			})
		}
	}
	for _, o := range r.Open {
		sheet.Open = append(sheet.Open, types.OpenSlot{Position: o.Position.String(), SlotIndex: o.SlotIndex})
	}
	return sheet
}

// Profile scores one player against every position.
func (s *Service) Profile(_ context.Context, p model.Player) scoring.Profile {
	s.playersScored.Add(1)
	s.metrics.RecordPlayersScored(1)
	return s.scorer.Profile(p.Stats)
}

// RankForPosition orders players by their fit at pos, best first. Ties keep
// input order; a repeated id keeps its best score.
func (s *Service) RankForPosition(ctx context.Context, players []model.Player, pos position.Position) ([]types.Entry, error) {
	if !pos.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPosition, pos)
	}
	board := repository.NewTreapStore(repository.WithCapacity(len(players)))
	for _, p := range players {
		if _, err := board.Put(ctx, p.ID, p.DisplayName(), s.scorer.Zones(p.Stats).Get(pos)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlayer, err)
		}
	}
	s.playersScored.Add(int64(len(players)))
	s.metrics.RecordPlayersScored(len(players))

	out := board.All(ctx)
	s.logger.Debug(ctx, "ranked players", logger.String("position", pos.String()), logger.Int("players", len(out)))
	return out, nil
}

// Formations lists the catalog. A positive size returns the candidates the
// selector would consider for a team of that size.
func (s *Service) Formations(_ context.Context, size int) ([]formation.Formation, error) {
	if size <= 0 {
		return s.formations.All(), nil
	}
	return s.formations.Candidates(size)
}

// Archetypes returns the catalog the service scores against.
func (s *Service) Archetypes() *archetype.Catalog {
	return s.archetypes
}

// GetStats returns service statistics.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"requests":          s.requests.Load(),
		"balanced":          s.balanced.Load(),
		"rejected":          s.rejected.Load(),
		"players_scored":    s.playersScored.Load(),
		"archetypes":        len(s.archetypes.All()),
		"formations":        len(s.formations.All()),
		"max_swaps":         s.maxSwaps,
		"balance_tolerance": s.tolerance,
		"open_slot_policy":  s.policy.String(),
	}
}
