// Command hero previews the portfolio's typewriter role line in the terminal.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tonmoystark/portfolio/internal/content"
	"github.com/tonmoystark/portfolio/internal/typewriter"
)

type options struct {
	cfg  typewriter.Config
	fps  int
	name string
}

func newRootCmd() *cobra.Command {
	opts := options{cfg: typewriter.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "hero [roles...]",
		Short: "Preview the hero typewriter in the terminal",
		Long: `Runs the same typewriter that drives the portfolio's hero section and renders
it in the terminal. Roles default to the site's list. Press q to quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := args
			if len(roles) == 0 {
				roles = content.Roles
			}
			if opts.fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", opts.fps)
			}

			cycler := typewriter.New()
			if err := cycler.Start(roles, opts.cfg); err != nil {
				return err
			}
			defer cycler.Stop()

			m := newModel(cycler, opts.name, time.Second/time.Duration(opts.fps))
			_, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&opts.cfg.TypeDelay, "type-delay", opts.cfg.TypeDelay, "delay between typed characters")
	flags.DurationVar(&opts.cfg.DeleteDelay, "delete-delay", opts.cfg.DeleteDelay, "delay between deleted characters")
	flags.DurationVar(&opts.cfg.PauseDelay, "pause-delay", opts.cfg.PauseDelay, "pause on a fully typed role")
	flags.IntVar(&opts.fps, "fps", 30, "render frames per second")
	flags.StringVar(&opts.name, "name", content.OwnerName, "name shown under the role line")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
