// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// StoreOptions override where state is persisted.
type StoreOptions struct {
	Path    string
	Backend string
}

// AddStoreArgs registers --path and --backend and binds them to viper so a
// flag wins over the config file and HABITS_* variables.
func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		`Storage location, default "~/.habits.db".`)
	cmd.PersistentFlags().StringVar(&o.Backend, "backend", "",
		"Storage backend. One of diskv, sqlite or memory.")
	_ = viper.BindPFlag("path", cmd.PersistentFlags().Lookup("path"))
	_ = viper.BindPFlag("backend", cmd.PersistentFlags().Lookup("backend"))
}
