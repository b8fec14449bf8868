package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/runner/stats"
	"tableflip.dev/habits/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	window := timeutil.DefaultWindow
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard", "report"},
		Short:   "Print completion rate, streaks and a daily completion chart",
		Example: `
habits stats
habits stats --last 2w
habits stats --last "1w 3d" --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := stats.Stats{Window: window, Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&window, "last", timeutil.DefaultWindow,
		"Length of the completion chart, for example 5d, 2w or \"1w 3d\". At most 30 days.")
	topLevel.AddCommand(cmd)
}
