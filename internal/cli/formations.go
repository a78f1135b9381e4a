package cli

import (
	"github.com/spf13/cobra"

	"github.com/okian/lineup/internal/report"
)

// formationOutput is one formation in `formations --format json`.
type formationOutput struct {
	Name  string         `json:"name"`
	Size  int            `json:"size"`
	Slots map[string]int `json:"slots"`
}

func (a *app) formationsCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "formations",
		Short: "List the formation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs, err := a.svc.Formations(cmd.Context(), size)
			if err != nil {
				return err
			}
			if a.format == formatJSON {
				out := make([]formationOutput, 0, len(fs))
				for _, f := range fs {
					slots := make(map[string]int)
					for _, p := range f.Positions() {
						slots[p.String()] = f.Count(p)
					}
					out = append(out, formationOutput{Name: f.Name, Size: f.Size(), Slots: slots})
				}
				return a.writeJSON(out)
			}
			report.PrintFormations(a.out, fs)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "only formations the selector would consider for this team size")
	return cmd
}
