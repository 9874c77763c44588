package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvarela/taskdeck/internal/config"
	"github.com/mvarela/taskdeck/internal/db"
)

var (
	cfgFile string
	dbFile  string
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Personal task organizer",
	Long: `taskdeck organizes tasks under areas and projects and labels them
with shared tags. Data lives in a local SQLite database.`,
	SilenceUsage: true,
}

// SetVersion wires build metadata into the version subcommand output.
func SetVersion(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", "", "database file path")

	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(todayCmd)
}

// openStore resolves the database location (flag, then config/env, then the
// XDG default) and opens it.
func openStore() (*db.DB, error) {
	path := dbFile
	if path == "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		path = cfg.Database.Path
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
