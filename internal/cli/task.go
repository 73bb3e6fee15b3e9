package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/tasks"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `help:"Task description."`
	Priority    string `help:"low, medium or high." default:"medium"`
	Estimate    string `help:"Estimated pomodoros (1-20)." default:"1"`
	Due         string `help:"Due date (YYYY-MM-DD)."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	task, err := a.Tasks.Create(bg, tasks.Input{
		Title:              c.Title,
		Description:        c.Description,
		Priority:           c.Priority,
		EstimatedPomodoros: c.Estimate,
		DueDate:            c.Due,
	})
	if err != nil {
		return err
	}
	ctx.printf("Added task %s: %s (%s, %d pomodoros)\n", task.ID, task.Title, task.Priority, task.EstimatedPomodoros)
	return nil
}

type TaskCompleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskCompleteCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	task, err := a.Tasks.Complete(bg, c.ID)
	if err != nil {
		return err
	}
	ctx.println(okStyle.Render("✓"), "Completed task", task.Title)
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	open, err := a.Tasks.Open(bg)
	if err != nil {
		return err
	}
	if len(open) == 0 {
		ctx.println("No open tasks")
		return nil
	}

	ctx.println(titleStyle.Render("Open tasks"))
	for _, t := range open {
		due := ""
		if t.DueDate != nil {
			due = mutedStyle.Render(" due " + t.DueDate.Format(constants.DateFormat))
		}
		ctx.printf("  [%-6s] %s %s%s\n", t.Priority, t.Title,
			mutedStyle.Render(fmt.Sprintf("%d/%d", t.CompletedPomodoros, t.EstimatedPomodoros)), due)
		ctx.printf("           %s\n", mutedStyle.Render(t.ID))
	}
	return nil
}
