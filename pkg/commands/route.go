package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/router"
)

func addRoute(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:    "route <path>",
		Short:  "Print the screen a UI path resolves to",
		Hidden: true,
		Example: `
habits route /habit/3
habits route /
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := router.Parse(args[0])
			if output.JSON {
				return printers.JSON(output.Writer(), map[string]interface{}{
					"screen": r.Screen,
					"id":     r.ID,
					"path":   r.Path(),
				})
			}
			_, err := fmt.Fprintf(output.Writer(), "%s -> %s (%s)\n", args[0], r, r.Path())
			return err
		},
	}
	topLevel.AddCommand(cmd)
}
