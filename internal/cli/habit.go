package cli

import (
	"context"
	"strconv"

	"github.com/julianstephens/pomolit/internal/habits"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Habit description."`
	Frequency   string `help:"daily, weekly or custom." default:"daily"`
	Color       string `help:"Display color." default:"primary"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	h, err := a.Habits.Create(bg, habits.Input{
		Name:        c.Name,
		Description: c.Description,
		Frequency:   c.Frequency,
		Color:       c.Color,
	})
	if err != nil {
		return err
	}
	ctx.printf("Added habit %s: %s (%s)\n", h.ID, h.Name, h.Frequency)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	list, err := a.Habits.List(bg)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ctx.println("No habits yet")
		return nil
	}

	ctx.println(titleStyle.Render("Habits"))
	for _, st := range list {
		ctx.printf("  %s %s %s\n", check(st.CompletedToday), labelStyle.Render(st.Habit.Name),
			warnStyle.Render(streakLabel(st.Streak)))
		ctx.printf("    %s\n", mutedStyle.Render(st.Habit.ID))
	}
	return nil
}

func streakLabel(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	logged, err := a.Habits.Toggle(bg, c.ID)
	if err != nil {
		return err
	}
	if logged {
		ctx.println(okStyle.Render("✓"), "Marked done for today")
	} else {
		ctx.println("Unmarked for today")
	}
	return nil
}
