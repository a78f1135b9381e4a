// Package report renders engine results as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/scoring"
	"github.com/okian/lineup/internal/domain/stats"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/metrics"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// Summary is the headline of one balancing run.
type Summary struct {
	RunID      string
	Formations [2]string
	Scores     [2]float64
	Gap        float64
	Balanced   bool
	Swaps      int
	Unplaced   []model.Player
	Duplicates []string
}

// PrintSummary prints a one-line summary header for the run, followed by any
// unplaced or duplicate players.
func PrintSummary(w io.Writer, s Summary) {
	verdict := "balanced"
	if !s.Balanced {
		verdict = "UNBALANCED"
	}
	fmt.Fprintf(w, "\nRun: %s  |  A %s %.1f  vs  B %s %.1f  |  Gap: %.2f (%s)  |  Swaps: %d\n\n",
		shortID(s.RunID), s.Formations[0], s.Scores[0], s.Formations[1], s.Scores[1], s.Gap, verdict, s.Swaps)
	if len(s.Unplaced) > 0 {
		names := make([]string, len(s.Unplaced))
		for i, p := range s.Unplaced {
			names[i] = p.DisplayName()
		}
		fmt.Fprintf(w, "Unplaced: %s\n", strings.Join(names, ", "))
	}
	if len(s.Duplicates) > 0 {
		fmt.Fprintf(w, "Skipped duplicates: %s\n", strings.Join(s.Duplicates, ", "))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PrintTeamSheet prints one team's lineup in pitch order. Open slots are
// listed after the table.
func PrintTeamSheet(w io.Writer, sheet types.TeamSheet) {
	fmt.Fprintf(w, "Team %s  (%s)  score %.1f\n", sheet.Team, sheet.Formation, sheet.Score)
	table := newTable(w)
	table.Header("POS", "#", "PLAYER", "FIT", "X", "Y")
	for _, e := range sheet.Players {
		name := e.Name
		fit := fmt.Sprintf("%.1f", e.Score)
		if e.Placeholder {
			name = "(open)"
			fit = "-"
		}
		table.Append(
			e.Position,
			strconv.Itoa(e.SlotIndex+1),
			name,
			fit,
			fmt.Sprintf("%.2f", e.X),
			fmt.Sprintf("%.2f", e.Y),
		)
	}
	table.Render()
	if len(sheet.Open) > 0 {
		open := make([]string, len(sheet.Open))
		for i, o := range sheet.Open {
			open[i] = fmt.Sprintf("%s#%d", o.Position, o.SlotIndex+1)
		}
		fmt.Fprintf(w, "Open slots: %s\n", strings.Join(open, ", "))
	}
	fmt.Fprintln(w)
}

// PrintProfile prints a player's zone scores best first, with the matching
// archetype and the category averages.
func PrintProfile(w io.Writer, p model.Player, pr scoring.Profile) {
	tag := ""
	if pr.Specialist {
		tag = "  [specialist]"
	}
	fmt.Fprintf(w, "%s  best %s %.1f%s\n", p.DisplayName(), pr.Best, pr.BestScore, tag)

	table := newTable(w)
	table.Header("POS", "FIT", "REL", "ARCHETYPE")
	rel := pr.Zones.Relative()
	for _, ps := range pr.Zones.Ranked() {
		table.Append(
			ps.Position.String(),
			fmt.Sprintf("%.1f", ps.Score),
			fmt.Sprintf("%.0f", rel.Get(ps.Position)),
			pr.Archetypes[ps.Position],
		)
	}
	table.Render()

	cats := make([]string, 0, stats.NumCategories)
	for _, c := range stats.Categories() {
		cats = append(cats, fmt.Sprintf("%s %.0f", c, pr.Categories[c]))
	}
	fmt.Fprintf(w, "%s\n\n", strings.Join(cats, "  |  "))
}

// PrintRanking prints players ordered by fit at one position.
func PrintRanking(w io.Writer, pos position.Position, entries []types.Entry) {
	fmt.Fprintf(w, "%s (%s)\n", pos.Meta().Name, pos)
	table := newTable(w)
	table.Header("RANK", "PLAYER", "FIT")
	for _, e := range entries {
		table.Append(strconv.Itoa(e.Rank), e.Name, fmt.Sprintf("%.1f", e.Score))
	}
	table.Render()
}

// PrintFormations prints formations with their per-position slot counts.
func PrintFormations(w io.Writer, fs []formation.Formation) {
	header := []any{"NAME", "SIZE"}
	for _, p := range position.All() {
		header = append(header, p.String())
	}
	table := newTable(w)
	table.Header(header...)
	for _, f := range fs {
		row := []any{f.Name, strconv.Itoa(f.Size())}
		for _, p := range position.All() {
			cell := ""
			if n := f.Count(p); n > 0 {
				cell = strconv.Itoa(n)
			}
			row = append(row, cell)
		}
		table.Append(row...)
	}
	table.Render()
}

// PrintSamples prints flattened metric samples.
func PrintSamples(w io.Writer, samples []metrics.Sample) {
	table := newTable(w)
	table.Header("METRIC", "LABELS", "VALUE")
	for _, s := range samples {
		table.Append(s.Name, s.Labels, strconv.FormatFloat(s.Value, 'f', -1, 64))
	}
	table.Render()
}
