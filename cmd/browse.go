package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/modelstore/internal/pubsub"
	"github.com/zjrosen/modelstore/internal/ui/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the environment interactively",
	Long: `Open an interactive browser over the loaded environment.

Stored objects are listed at the top level. Press enter to drill into a
node's children, esc to go back, r to reload the environment file, and q to
quit. With auto_reload enabled the browser refreshes itself whenever the
environment file changes on disk.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = env.close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events <-chan pubsub.Event[int]
	if cfg.AutoReload {
		if err := env.svc.StartWatching(500 * time.Millisecond); err != nil {
			return fmt.Errorf("watching environment file: %w", err)
		}
		events = env.svc.Subscribe(ctx)
	}

	program := tea.NewProgram(
		browse.New(env.svc, events),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
