package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvarela/taskdeck/internal/db"
	"github.com/mvarela/taskdeck/internal/models"
)

var (
	taskNotes     string
	taskProject   int64
	taskArea      int64
	taskTags      []int64
	taskDue       string
	taskDeadline  string
	taskScheduled string
	taskPriority  string
	taskTitle     string
	taskUndo      bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p := db.CreateTaskParams{Title: args[0]}
		if cmd.Flags().Changed("notes") {
			p.Notes = &taskNotes
		}
		if cmd.Flags().Changed("project") {
			p.ProjectID = &taskProject
		}
		if cmd.Flags().Changed("area") {
			p.AreaID = &taskArea
		}
		if cmd.Flags().Changed("tag") {
			p.TagIDs = taskTags
		}
		if cmd.Flags().Changed("priority") {
			pr := models.Priority(taskPriority)
			p.Priority = &pr
		}
		if cmd.Flags().Changed("due") {
			t, err := parseDate(taskDue)
			if err != nil {
				return err
			}
			p.DueDate = &t
		}
		if cmd.Flags().Changed("deadline") {
			t, err := parseDate(taskDeadline)
			if err != nil {
				return err
			}
			p.DeadlineDate = &t
		}
		if cmd.Flags().Changed("scheduled") {
			t, err := parseDate(taskScheduled)
			if err != nil {
				return err
			}
			p.ScheduledDate = &t
		}

		task, err := store.CreateTask(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Println(renderTask(*task))
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var tasks []models.Task
		switch {
		case cmd.Flags().Changed("area"):
			tasks, err = store.ListTasksByArea(cmd.Context(), taskArea)
		case cmd.Flags().Changed("project"):
			tasks, err = store.ListTasksByProject(cmd.Context(), taskProject)
		default:
			tasks, err = store.ListTasks(cmd.Context())
		}
		if err != nil {
			return err
		}
		for _, t := range tasks {
			fmt.Println(renderTask(t))
		}
		return nil
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of a task; only the flags given are changed",
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

		p := db.UpdateTaskParams{}
		if cmd.Flags().Changed("title") {
			p.Title = &taskTitle
		}
		if cmd.Flags().Changed("notes") {
			p.Notes = models.Set(taskNotes)
		}
		if cmd.Flags().Changed("project") {
			if taskProject == 0 {
				p.ProjectID = models.Clear[int64]()
			} else {
				p.ProjectID = models.Set(taskProject)
			}
		}
		if cmd.Flags().Changed("area") {
			if taskArea == 0 {
				p.AreaID = models.Clear[int64]()
			} else {
				p.AreaID = models.Set(taskArea)
			}
		}
		if cmd.Flags().Changed("tag") {
			p.TagIDs = taskTags
			if p.TagIDs == nil {
				p.TagIDs = []int64{}
			}
		}
		if cmd.Flags().Changed("priority") {
			if taskPriority == "" {
				p.Priority = models.Clear[models.Priority]()
			} else {
				p.Priority = models.Set(models.Priority(taskPriority))
			}
		}
		if cmd.Flags().Changed("due") {
			f, err := dateField(taskDue)
			if err != nil {
				return err
			}
			p.DueDate = f
		}
		if cmd.Flags().Changed("deadline") {
			f, err := dateField(taskDeadline)
			if err != nil {
				return err
			}
			p.DeadlineDate = f
		}
		if cmd.Flags().Changed("scheduled") {
			f, err := dateField(taskScheduled)
			if err != nil {
				return err
			}
			p.ScheduledDate = f
		}

		task, err := store.UpdateTask(cmd.Context(), id, p)
		if err != nil {
			return err
		}
		fmt.Println(renderTask(*task))
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
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

		completed := !taskUndo
		task, err := store.UpdateTask(cmd.Context(), id, db.UpdateTaskParams{IsCompleted: &completed})
		if err != nil {
			return err
		}
		fmt.Println(renderTask(*task))
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
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

		return store.DeleteTask(cmd.Context(), id)
	},
}

// dateField maps a date flag value to an update field; an empty value clears
// the date.
func dateField(s string) (models.Field[time.Time], error) {
	if s == "" {
		return models.Clear[time.Time](), nil
	}
	t, err := parseDate(s)
	if err != nil {
		return models.Field[time.Time]{}, err
	}
	return models.Set(t), nil
}

func init() {
	for _, c := range []*cobra.Command{taskAddCmd, taskEditCmd} {
		c.Flags().StringVar(&taskNotes, "notes", "", "notes")
		c.Flags().Int64Var(&taskProject, "project", 0, "project id")
		c.Flags().Int64Var(&taskArea, "area", 0, "area id")
		c.Flags().Int64SliceVar(&taskTags, "tag", nil, "tag id (repeatable)")
		c.Flags().StringVar(&taskDue, "due", "", "due date (YYYY-MM-DD)")
		c.Flags().StringVar(&taskDeadline, "deadline", "", "deadline date (YYYY-MM-DD)")
		c.Flags().StringVar(&taskScheduled, "scheduled", "", "scheduled date (YYYY-MM-DD)")
		c.Flags().StringVar(&taskPriority, "priority", "", "priority: low, medium, or high")
	}
	taskEditCmd.Flags().StringVar(&taskTitle, "title", "", "title")
	taskListCmd.Flags().Int64Var(&taskArea, "area", 0, "only tasks in this area")
	taskListCmd.Flags().Int64Var(&taskProject, "project", 0, "only tasks in this project")
	taskDoneCmd.Flags().BoolVar(&taskUndo, "undo", false, "mark as not completed")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
}
