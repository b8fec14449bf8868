package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(habits completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(habits completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func habitCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, done, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer done()
	var ids []string
	for _, h := range s.Habits() {
		if id := h.ID.String(); strings.HasPrefix(id, toComplete) {
			ids = append(ids, id+"\t"+h.DisplayName())
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func taskCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, done, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer done()
	var ids []string
	for _, t := range s.Tasks() {
		if strings.HasPrefix(t.ID, toComplete) {
			ids = append(ids, t.ID+"\t"+t.Title)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
