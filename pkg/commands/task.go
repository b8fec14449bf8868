package commands

import (
	"context"
	"io/ioutil"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/runner/add"
	"tableflip.dev/habits/pkg/runner/complete"
	"tableflip.dev/habits/pkg/runner/get"
	"tableflip.dev/habits/pkg/runner/info"
	"tableflip.dev/habits/pkg/runner/strike"
	"tableflip.dev/habits/pkg/snake"
	"tableflip.dev/habits/pkg/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Add, list, complete and delete tasks",
		Example: `
habits task list --filter pending
habits task add Buy milk --priority high --deadline 3/14 --tag errands
habits task toggle task-2
`,
	}

	addTaskList(cmd)
	addTaskAdd(cmd)
	addTaskShow(cmd)
	addTaskToggle(cmd)
	addTaskDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List tasks through a filter and an optional search",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := task.ParseFilter(fo.Filter)
			if err != nil {
				return output.HandleError(err)
			}
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := get.Get{
				ShowID:       io.ShowID,
				Filter:       f,
				Search:       fo.Search,
				Distribution: fo.Distribution,
				Store:        s,
				JSON:         output.JSON,
				Out:          output.Writer(),
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	_ = cmd.RegisterFlagCompletionFunc("filter", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range task.Filters() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	i := &options.InteractiveOptions{}
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a task",
		Example: `
habits task add Call the bank --priority high
habits task add -i
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			var in task.Input
			if i.Interactive {
				p := snake.Prompter{Stdin: ioutil.NopCloser(cmd.InOrStdin()), Stdout: snake.NopCloser(cmd.OutOrStdout())}
				in, err = p.Task(s.Now())
			} else {
				in, err = to.Input(strings.Join(args, " "), s.Now())
			}
			if err != nil {
				return output.HandleError(err)
			}
			r := add.Add{Store: s, Input: in, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	options.AddTaskArgs(cmd, to)
	options.InteractiveArgs(cmd, i)
	_ = cmd.RegisterFlagCompletionFunc("priority", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range task.Priorities() {
			names = append(names, string(p))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}

func addTaskShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "show <id>",
		Aliases:           []string{"info"},
		Short:             "Show every field of a task",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := info.Task{ID: args[0], Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addTaskToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "toggle <id>",
		Aliases:           []string{"complete", "done", "x"},
		Short:             "Mark a task completed or pending",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := complete.Task{ID: args[0], Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addTaskDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "delete <id>",
		Aliases:           []string{"rm", "strike"},
		Short:             "Delete a task",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := openStore()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()
			r := strike.Strike{ID: args[0], Store: s, JSON: output.JSON, Out: output.Writer()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}
