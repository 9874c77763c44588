package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List tasks scheduled for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		tasks, err := store.ListTodayTasks(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range tasks {
			fmt.Println(renderTask(t))
		}
		return nil
	},
}
