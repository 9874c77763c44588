package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvarela/taskdeck/internal/db"
)

var tagColor string

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p := db.CreateTagParams{Name: args[0]}
		if cmd.Flags().Changed("color") {
			p.Color = &tagColor
		}

		tag, err := store.CreateTag(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Println(renderTag(*tag))
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		tags, err := store.ListTags(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Println(renderTag(t))
		}
		return nil
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a tag (it is removed from every task)",
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

		return store.DeleteTag(cmd.Context(), id)
	},
}

func init() {
	tagAddCmd.Flags().StringVar(&tagColor, "color", "", "display color")
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagRmCmd)
}
