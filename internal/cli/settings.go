package cli

import (
	"context"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/settings"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	cur := a.Settings.Current()

	ctx.println(titleStyle.Render("Settings"))
	ctx.println(labelStyle.Render("Work"), cur.WorkDuration, "min")
	ctx.println(labelStyle.Render("Break"), cur.BreakDuration, "min")
	ctx.println(labelStyle.Render("Long break"), cur.LongBreakDuration, "min")
	terms := warnStyle.Render("not accepted")
	if cur.TermsAccepted {
		terms = okStyle.Render("accepted")
		if cur.TermsAcceptedAt != nil {
			terms += mutedStyle.Render(" " + cur.TermsAcceptedAt.In(a.Location()).Format(constants.DateFormat))
		}
	}
	ctx.println(labelStyle.Render("Terms"), terms)
	return nil
}

// SettingsSetCmd updates timer lengths. Omitted flags keep their current
// value; out-of-range values are clamped.
type SettingsSetCmd struct {
	Work      int `help:"Work session minutes (5-60)."`
	Break     int `help:"Short break minutes (1-30)."`
	LongBreak int `help:"Long break minutes (5-60)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}

	cur := a.Settings.Current()
	d := settings.Durations{Work: cur.WorkDuration, Break: cur.BreakDuration, LongBreak: cur.LongBreakDuration}
	if c.Work != 0 {
		d.Work = c.Work
	}
	if c.Break != 0 {
		d.Break = c.Break
	}
	if c.LongBreak != 0 {
		d.LongBreak = c.LongBreak
	}

	updated, err := a.Settings.Update(bg, d)
	if err != nil {
		return err
	}
	ctx.printf("%s Work %d min, break %d min, long break %d min\n", okStyle.Render("✓"),
		updated.WorkDuration, updated.BreakDuration, updated.LongBreakDuration)
	return nil
}

type SettingsAcceptTermsCmd struct{}

func (c *SettingsAcceptTermsCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	if err := a.Settings.AcceptTerms(bg, a.Now()); err != nil {
		return err
	}
	ctx.println(okStyle.Render("✓"), "Terms of use accepted")
	return nil
}
