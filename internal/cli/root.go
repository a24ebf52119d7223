package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazyfill/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the values displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCmd builds the lazyfill command tree.
//
// The persistent pre-run loads --config (defaults when unset), picks the
// log level from it unless --verbose forces debug, and attaches both the
// config and a logger tagged with a fresh run id to the command context.
func NewRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "lazyfill",
		Short:        "lazyfill segments images from coloured strokes",
		Long:         `lazyfill grows user strokes into regions, either by watershed flooding over a heightmap or by min-cut partitioning of an intensity image.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			level := cfg.LogLevel()
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level).With("run", uuid.NewString()[:8])

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lazyfill %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newWatershedCmd())
	root.AddCommand(newMultiwayCmd())
	return root
}

// Execute runs the CLI with os.Args under ctx and reports failures on
// stderr. Cancellation is returned without a report.
func Execute(ctx context.Context) error {
	root := NewRootCmd()
	root.SilenceErrors = true
	root.SetErr(os.Stderr)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError(os.Stderr, "%v", err)
	}
	return err
}
