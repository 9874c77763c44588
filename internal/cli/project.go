package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvarela/taskdeck/internal/db"
	"github.com/mvarela/taskdeck/internal/models"
)

var (
	projectColor string
	projectDesc  string
	projectArea  int64
	projectUndo  bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p := db.CreateProjectParams{Name: args[0]}
		if cmd.Flags().Changed("color") {
			p.Color = &projectColor
		}
		if cmd.Flags().Changed("desc") {
			p.Description = &projectDesc
		}
		if cmd.Flags().Changed("area") {
			p.AreaID = &projectArea
		}

		project, err := store.CreateProject(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Println(renderProject(*project))
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var projects []models.Project
		if cmd.Flags().Changed("area") {
			projects, err = store.ListProjectsByArea(cmd.Context(), projectArea)
		} else {
			projects, err = store.ListProjects(cmd.Context())
		}
		if err != nil {
			return err
		}
		for _, p := range projects {
			fmt.Println(renderProject(p))
		}
		return nil
	},
}

var projectDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a project completed",
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

		completed := !projectUndo
		project, err := store.UpdateProject(cmd.Context(), id, db.UpdateProjectParams{IsCompleted: &completed})
		if err != nil {
			return err
		}
		fmt.Println(renderProject(*project))
		return nil
	},
}

var projectRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a project (its tasks are kept, unfiled)",
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

		return store.DeleteProject(cmd.Context(), id)
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectColor, "color", "", "display color")
	projectAddCmd.Flags().StringVar(&projectDesc, "desc", "", "description")
	projectAddCmd.Flags().Int64Var(&projectArea, "area", 0, "area id to file under")
	projectListCmd.Flags().Int64Var(&projectArea, "area", 0, "only projects in this area")
	projectDoneCmd.Flags().BoolVar(&projectUndo, "undo", false, "mark as not completed")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDoneCmd)
	projectCmd.AddCommand(projectRmCmd)
}
