package cli

import (
	"context"

	"github.com/julianstephens/pomolit/internal/constants"
)

type AchievementsListCmd struct{}

func (c *AchievementsListCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	list, err := a.Achievements.List(bg)
	if err != nil {
		return err
	}

	ctx.println(titleStyle.Render("Achievements"))
	for _, ach := range list {
		when := mutedStyle.Render("locked")
		if ach.Unlocked() {
			when = okStyle.Render(ach.UnlockedAt.In(a.Location()).Format(constants.DateFormat))
		}
		ctx.printf("  %s %s %s\n", check(ach.Unlocked()), labelStyle.Render(ach.Name), when)
		ctx.printf("    %s\n", mutedStyle.Render(ach.Description))
	}
	return nil
}

type AchievementsEvaluateCmd struct{}

func (c *AchievementsEvaluateCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	unlocked, err := a.Achievements.Evaluate(bg)
	if err != nil {
		return err
	}
	if len(unlocked) == 0 {
		ctx.println("No new achievements")
		return nil
	}
	for _, ach := range unlocked {
		ctx.println(okStyle.Render("★"), "Unlocked", ach.Name, mutedStyle.Render(ach.Description))
	}
	return nil
}
