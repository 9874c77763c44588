package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvarela/taskdeck/internal/db"
)

var areaColor string

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Manage areas",
}

var areaAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an area",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p := db.CreateAreaParams{Name: args[0]}
		if cmd.Flags().Changed("color") {
			p.Color = &areaColor
		}

		area, err := store.CreateArea(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Println(renderArea(*area))
		return nil
	},
}

var areaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List areas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		areas, err := store.ListAreas(cmd.Context())
		if err != nil {
			return err
		}
		for _, a := range areas {
			fmt.Println(renderArea(a))
		}
		return nil
	},
}

var areaRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an area (its projects and tasks are kept, unfiled)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		return store.DeleteArea(cmd.Context(), id)
	},
}

func init() {
	areaAddCmd.Flags().StringVar(&areaColor, "color", "", "display color")
	areaCmd.AddCommand(areaAddCmd)
	areaCmd.AddCommand(areaListCmd)
	areaCmd.AddCommand(areaRmCmd)
}
