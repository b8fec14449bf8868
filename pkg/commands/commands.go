package commands

import (
	"io"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/store"
)

var (
	output = &options.OutputOptions{}
	so     = &options.StoreOptions{}
)

func New() *cobra.Command {
	output = &options.OutputOptions{}
	so = &options.StoreOptions{}

	cmd := &cobra.Command{
		Use:   "habits",
		Short: base.Wrap80("Track daily habits and one-off tasks on the command line."),
		Long: base.Wrap80("Track daily habits and one-off tasks. Run `habits ui` for the interactive " +
			"dashboard, or use the habit, task and stats commands from scripts."),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.Out = cmd.OutOrStdout()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddStoreArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addHabit(topLevel)
	addTask(topLevel)
	addStats(topLevel)
	addRoute(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openStore loads the config and the state store behind it. The returned
// func releases the log file and the backend.
func openStore() (*app.Store, func(), error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := store.NewLogger(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.Open(cfg, logger)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	done := func() {
		if c, ok := kv.(io.Closer); ok {
			_ = c.Close()
		}
		_ = closer.Close()
	}
	return app.New(kv, app.WithLogger(logger)), done, nil
}
