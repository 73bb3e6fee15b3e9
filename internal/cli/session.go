package cli

import (
	"context"

	"github.com/julianstephens/pomolit/internal/models"
)

type SessionStartCmd struct {
	Type string `help:"Session type." enum:"work,break,long_break" default:"work"`
	Task string `help:"ID of the task this session works on."`
}

func (c *SessionStartCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}

	var taskID *string
	if c.Task != "" {
		taskID = &c.Task
	}
	sess, err := a.Pomodoro.Start(bg, models.SessionType(c.Type), taskID)
	if err != nil {
		return err
	}
	ctx.printf("Started %s session %s (%d min)\n", sess.Type, sess.ID, sess.Duration)
	return nil
}

type SessionCompleteCmd struct {
	ID string `arg:"" help:"Session ID."`
}

func (c *SessionCompleteCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	sess, err := a.Pomodoro.Complete(bg, c.ID)
	if err != nil {
		return err
	}
	ctx.println(okStyle.Render("✓"), "Completed", string(sess.Type), "session", sess.ID)
	return nil
}
