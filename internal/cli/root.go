// Package cli implements the lineup command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/pkg/logger"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// app carries the flags and dependencies shared by every subcommand.
type app struct {
	out        io.Writer
	errOut     io.Writer
	configPath string
	format     string

	svc *service.Service
	log logger.Logger
}

// NewRootCommand builds the command tree writing results to out and
// diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lineup",
		Short: "Football team balancing engine",
		Long: "Score players against position archetypes, pick formations and split a pool " +
			"into two balanced, positioned teams.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config (default $"+config.EnvFile+")")
	root.PersistentFlags().StringVar(&a.format, "format", formatTable, "output format: table or json")

	root.AddCommand(a.balanceCmd())
	root.AddCommand(a.scoreCmd())
	root.AddCommand(a.formationsCmd())
	return root
}

// Execute runs the root command against the process streams.
func Execute() {
	if err := NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the service.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch strings.ToLower(a.format) {
	case formatTable, formatJSON:
		a.format = strings.ToLower(a.format)
	default:
		return fmt.Errorf("unknown format %q (want table or json)", a.format)
	}

	cfg, err := config.LoadWithPath(cmd.Context(), a.configPath)
	if err != nil {
		return err
	}
	if err := logger.InitWith(logger.Options{
		Format: logger.Format(cfg.LogFormat),
		Level:  cfg.LogLevel,
		Writer: a.errOut,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.log = logger.Named("lineup")

	opts, err := service.ConfigOptions(cfg)
	if err != nil {
		return err
	}
	a.svc = service.New(append(opts, service.WithLogger(a.log))...)
	return nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) warn(msgs []string) {
	for _, m := range msgs {
		fmt.Fprintf(a.errOut, "warning: %s\n", m)
	}
}
