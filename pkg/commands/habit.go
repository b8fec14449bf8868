package commands

import (
	"context"
	"io/ioutil"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/habit"
	"tableflip.dev/habits/pkg/runner/complete"
	"tableflip.dev/habits/pkg/runner/info"
	"tableflip.dev/habits/pkg/runner/track"
	"tableflip.dev/habits/pkg/snake"
)

func addHabit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits", "h"},
		Short:   "List, toggle and annotate habits",
		Example: `
habits habit list
habits habit toggle 3
habits habit note 3 after lunch works best
habits habit tag 3 morning
`,
	}

	addHabitList(cmd)
	addHabitShow(cmd)
	addHabitToggle(cmd)
	addHabitNext(cmd)
	addHabitNote(cmd)
	addHabitTag(cmd)

	topLevel.AddCommand(cmd)
}

func addHabitList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List today's habits",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := track.List{ShowID: io.ShowID, Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addHabitShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "show <id>",
		Short:             "Show streak, completion rate and history of a habit",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: habitCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := habit.ParseID(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := info.Habit{ID: id, Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addHabitToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "toggle [id]",
		Aliases:           []string{"done", "x"},
		Short:             "Mark a habit done or not done for today; without an id, pick one",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: habitCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			var id habit.ID
			if len(args) == 1 {
				id, err = habit.ParseID(args[0])
			} else {
				p := snake.Prompter{Stdin: ioutil.NopCloser(cmd.InOrStdin()), Stdout: snake.NopCloser(cmd.OutOrStdout())}
				id, err = p.Habit(s.Habits())
			}
			if err != nil {
				return output.HandleError(err)
			}
			r := complete.Habit{ID: id, Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addHabitNext(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Complete the first habit still open today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := complete.Next{Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addHabitNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "note <id> <text...>",
		Short:             "Replace the notes of a habit; no text clears them",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: habitCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := habit.ParseID(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := track.Note{ID: id, Notes: strings.Join(args[1:], " "), Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addHabitTag(topLevel *cobra.Command) {
	remove := false
	cmd := &cobra.Command{
		Use:               "tag <id> <tag>",
		Short:             "Add a tag to a habit, or remove it with --remove",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: habitCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := habit.ParseID(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := track.Tag{ID: id, Tag: args[1], Remove: remove, Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "Remove the tag instead of adding it.")
	topLevel.AddCommand(cmd)
}
