package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/lineup/internal/adapters/pool"
	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/internal/report"
	"github.com/okian/lineup/pkg/metrics"
)

type balanceFlags struct {
	headcount  int
	formationA string
	formationB string
	metrics    bool
}

// balanceOutput is the JSON document written by `balance --format json`.
type balanceOutput struct {
	RunID          string             `json:"run_id"`
	Fingerprint    string             `json:"fingerprint"`
	Gap            float64            `json:"gap"`
	Balanced       bool               `json:"balanced"`
	SwapIterations int                `json:"swap_iterations"`
	Teams          [2]types.TeamSheet `json:"teams"`
	Unplaced       []string           `json:"unplaced,omitempty"`
	Duplicates     []string           `json:"duplicates,omitempty"`
}

func (a *app) balanceCmd() *cobra.Command {
	var f balanceFlags
	cmd := &cobra.Command{
		Use:   "balance <pool.yaml>",
		Short: "Split a player pool into two balanced teams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBalance(cmd, args[0], f)
		},
	}
	cmd.Flags().IntVar(&f.headcount, "headcount", 0, "players taking part (default: pool size)")
	cmd.Flags().StringVar(&f.formationA, "formation-a", "", "formation for team A (default: chosen by size)")
	cmd.Flags().StringVar(&f.formationB, "formation-b", "", "formation for team B (default: chosen by size)")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print engine metrics after the result")
	return cmd
}

func (a *app) runBalance(cmd *cobra.Command, path string, f balanceFlags) error {
	p, err := pool.Load(path)
	if err != nil {
		return err
	}
	a.warn(p.Warnings)

	res, err := a.svc.Balance(cmd.Context(), service.Request{
		Players:    p.Players,
		Headcount:  f.headcount,
		FormationA: f.formationA,
		FormationB: f.formationB,
	})
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}

	asg := res.Assignment
	if a.format == formatJSON {
		out := balanceOutput{
			RunID:          res.RunID,
			Fingerprint:    asg.Fingerprint,
			Gap:            asg.Gap,
			Balanced:       asg.Balanced,
			SwapIterations: asg.SwapIterations,
			Teams:          res.Sheets,
			Duplicates:     res.Duplicates,
		}
		for _, u := range asg.Unplaced {
			out.Unplaced = append(out.Unplaced, u.ID)
		}
		if err := a.writeJSON(out); err != nil {
			return err
		}
	} else {
		report.PrintSummary(a.out, report.Summary{
			RunID:      res.RunID,
			Formations: [2]string{res.Sheets[0].Formation, res.Sheets[1].Formation},
			Scores:     [2]float64{res.Sheets[0].Score, res.Sheets[1].Score},
			Gap:        asg.Gap,
			Balanced:   asg.Balanced,
			Swaps:      asg.SwapIterations,
			Unplaced:   asg.Unplaced,
			Duplicates: res.Duplicates,
		})
		for _, sheet := range res.Sheets {
			report.PrintTeamSheet(a.out, sheet)
		}
	}

	if !f.metrics {
		return nil
	}
	if a.format == formatJSON {
		return metrics.WriteText(a.errOut)
	}
	samples, err := metrics.Global().Samples()
	if err != nil {
		return err
	}
	report.PrintSamples(a.out, samples)
	return nil
}
