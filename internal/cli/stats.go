package cli

import (
	"context"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/models"
)

type StatsTodayCmd struct{}

func (c *StatsTodayCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	snap, err := a.Reports.Today(bg, a.Now())
	if err != nil {
		return err
	}

	ctx.println(titleStyle.Render("Today " + snap.Date))
	ctx.println(labelStyle.Render("Pomodoros"), snap.Sessions)
	ctx.println(labelStyle.Render("Focus minutes"), snap.Minutes)
	ctx.println(labelStyle.Render("Tasks completed"), snap.CompletedTasks)
	if len(snap.ActiveTasks) > 0 {
		ctx.println(mutedStyle.Render("In progress"))
		for _, t := range snap.ActiveTasks {
			ctx.printf("  %s (%d/%d)\n", t.Title, t.CompletedPomodoros, t.EstimatedPomodoros)
		}
	}
	if len(snap.PendingTasks) > 0 {
		ctx.println(mutedStyle.Render("Up next"))
		for _, t := range snap.PendingTasks {
			ctx.printf("  %s [%s]\n", t.Title, t.Priority)
		}
	}
	return nil
}

type StatsWeekCmd struct {
	Days int `help:"Number of days to show." default:"7"`
}

func (c *StatsWeekCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}
	stats, err := a.Reports.Daily(bg, a.Now(), c.Days)
	if err != nil {
		return err
	}

	ctx.println(titleStyle.Render("Daily"))
	for _, d := range stats.Daily {
		ctx.printf("  %s  %3d pomodoros  %4d min  %3d tasks\n", d.Date, d.Sessions, d.Minutes, d.Tasks)
	}
	ctx.println(mutedStyle.Render("All time"))
	ctx.printf("  %d pomodoros, %d min, %d tasks\n", stats.Totals.Sessions, stats.Totals.Minutes, stats.Totals.Tasks)
	return nil
}

type StatsReportCmd struct {
	Calendar bool `help:"Use the calendar week and month instead of the trailing 7 and 30 days."`
}

func (c *StatsReportCmd) Run(ctx *Context) error {
	bg := context.Background()
	a, err := ctx.App(bg)
	if err != nil {
		return err
	}

	var rep models.Report
	if c.Calendar {
		rep, err = a.Reports.CalendarRollups(bg, a.Now())
	} else {
		rep, err = a.Reports.Rollups(bg, a.Now())
	}
	if err != nil {
		return err
	}

	c.print(ctx, "Week", rep.Week)
	c.print(ctx, "Month", rep.Month)
	return nil
}

func (c *StatsReportCmd) print(ctx *Context, name string, r models.Rollup) {
	ctx.printf("%s %s\n", titleStyle.Render(name),
		mutedStyle.Render(r.Start.Format(constants.DateFormat)+" to "+r.End.AddDate(0, 0, -1).Format(constants.DateFormat)))
	ctx.println(labelStyle.Render("  Pomodoros"), r.Pomodoros)
	ctx.println(labelStyle.Render("  Focus minutes"), r.Minutes)
	ctx.println(labelStyle.Render("  Tasks completed"), r.Tasks)
}
