package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/lineup/internal/adapters/pool"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/scoring"
	"github.com/okian/lineup/internal/domain/stats"
	"github.com/okian/lineup/internal/report"
)

type scoreFlags struct {
	player   string
	position string
}

// profileOutput is one player in `score --format json`.
type profileOutput struct {
	PlayerID   string             `json:"player_id"`
	Name       string             `json:"name"`
	Best       string             `json:"best"`
	BestScore  float64            `json:"best_score"`
	Specialist bool               `json:"specialist"`
	Zones      map[string]float64 `json:"zones"`
	Archetypes map[string]string  `json:"archetypes"`
	Categories map[string]float64 `json:"categories"`
}

func (a *app) scoreCmd() *cobra.Command {
	var f scoreFlags
	cmd := &cobra.Command{
		Use:   "score <pool.yaml>",
		Short: "Show position fit profiles or a per-position ranking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScore(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.player, "player", "", "only profile the player with this id")
	cmd.Flags().StringVar(&f.position, "position", "", "rank the pool at this position (GK, CB, FB, DM, CM, WM, AM, WR, ST)")
	return cmd
}

func (a *app) runScore(cmd *cobra.Command, path string, f scoreFlags) error {
	p, err := pool.Load(path)
	if err != nil {
		return err
	}
	a.warn(p.Warnings)
	ctx := cmd.Context()

	if f.position != "" {
		pos, ok := position.Parse(f.position)
		if !ok {
			return fmt.Errorf("unknown position %q", f.position)
		}
		entries, err := a.svc.RankForPosition(ctx, p.Players, pos)
		if err != nil {
			return err
		}
		if a.format == formatJSON {
			return a.writeJSON(entries)
		}
		report.PrintRanking(a.out, pos, entries)
		return nil
	}

	players := p.Players
	if f.player != "" {
		players = nil
		for _, pl := range p.Players {
			if strings.EqualFold(pl.ID, strings.TrimSpace(f.player)) {
				players = append(players, pl)
				break
			}
		}
		if len(players) == 0 {
			return fmt.Errorf("player %q not in pool", f.player)
		}
	}

	var out []profileOutput
	for _, pl := range players {
		pr := a.svc.Profile(ctx, pl)
		if a.format == formatJSON {
			out = append(out, toProfileOutput(pl, pr))
			continue
		}
		report.PrintProfile(a.out, pl, pr)
	}
	if a.format == formatJSON {
		return a.writeJSON(out)
	}
	return nil
}

func toProfileOutput(p model.Player, pr scoring.Profile) profileOutput {
	out := profileOutput{
		PlayerID:   p.ID,
		Name:       p.DisplayName(),
		Best:       pr.Best.String(),
		BestScore:  pr.BestScore,
		Specialist: pr.Specialist,
		Zones:      make(map[string]float64, position.Count),
		Archetypes: make(map[string]string, position.Count),
		Categories: make(map[string]float64, stats.NumCategories),
	}
	for _, pos := range position.All() {
		out.Zones[pos.String()] = pr.Zones.Get(pos)
		if id := pr.Archetypes[pos]; id != "" {
			out.Archetypes[pos.String()] = id
		}
	}
	for _, c := range stats.Categories() {
		out.Categories[c.String()] = pr.Categories[c]
	}
	return out
}
