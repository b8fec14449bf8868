package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui [path]",
		Short: "open the text-based user interface",
		Example: `
habits ui
habits ui /tasks
habits ui /habit/3
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i := ui.UI{Path: "/dashboard"}
			if len(args) == 1 {
				i.Path = args[0]
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
