/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pantrykit/apiserver/config"
	"github.com/pantrykit/apiserver/internal/logger"
	"github.com/pantrykit/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// initdbCmd creates the database file and applies every table definition.
// Schema application is idempotent, so running it against an existing
// database is safe; the server also applies the schema on startup.
var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database and apply the table definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		log := logger.New(logger.Options{
			ServiceName: "pantrykit",
			Level:       cfg.Log.Level,
			Format:      cfg.Log.Format,
		})

		st := store.New(cfg.Database.DBName, log)
		if err := st.Connect(cmd.Context()); err != nil {
			return fmt.Errorf("init database failed: %w", err)
		}
		defer func() {
			_ = st.Close()
		}()

		fmt.Fprintf(os.Stdout, "database ready at %s\n", cfg.Database.DBName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}
