package models

import "time"

// Snapshot is the dashboard view of the current day
type Snapshot struct {
	Date           string `json:"date"`
	Sessions       int    `json:"sessions"`
	Minutes        int    `json:"minutes"`
	CompletedTasks int    `json:"completed_tasks"`
	ActiveTasks    []Task `json:"active_tasks"`
	PendingTasks   []Task `json:"pending_tasks"`
}

// DayStat is one entry of a daily series
type DayStat struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	Minutes  int    `json:"minutes"`
	Tasks    int    `json:"tasks"`
}

// Totals are all-time counters
type Totals struct {
	Sessions int `json:"sessions"`
	Minutes  int `json:"minutes"`
	Tasks    int `json:"tasks"`
}

type Statistics struct {
	Daily  []DayStat `json:"daily"`
	Totals Totals    `json:"totals"`
}

// Rollup summarizes one window
type Rollup struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Pomodoros int       `json:"pomodoros"`
	Minutes   int       `json:"minutes"`
	Tasks     int       `json:"tasks"`
}

type Report struct {
	Week  Rollup `json:"week"`
	Month Rollup `json:"month"`
}
