// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/mission"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions captures the date flag.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		// Let the year be the same.
		t, err = time.Parse(layoutISOShort, o.OnString)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		// Assume a bare month/day in the past means next year.
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}

// AtOptions captures the time-slot flag.
type AtOptions struct {
	AtString string
}

func AddAtArgs(cmd *cobra.Command, o *AtOptions) {
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Specify a time slot, example: --at="04:30 PM".`)
}

func (o *AtOptions) GetAt() (dates.ClockTime, error) {
	if o.AtString == "" {
		return "", nil
	}
	return dates.ParseClock(o.AtString)
}

// TaskOptions captures the add-task flags.
type TaskOptions struct {
	Description string
	Category    string
	Repeat      string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the task.")
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Task category: meds, food, play, school, or sleep.")
	cmd.Flags().StringVar(&o.Repeat, "repeat", "",
		"Repeat rule: once, daily, or custom.")
}

func (o *TaskOptions) GetCategory() mission.Category {
	if o.Category == "" {
		return ""
	}
	return mission.ParseCategory(o.Category)
}

func (o *TaskOptions) GetRepeat() mission.Repeat {
	if o.Repeat == "" {
		return ""
	}
	return mission.ParseRepeat(o.Repeat)
}

// IDOptions captures a task identifier argument.
type IDOptions struct {
	ID string
}

// ChildOptions captures the add-child flags.
type ChildOptions struct {
	Name   string
	DOB    string
	Gender string
}

func AddChildArgs(cmd *cobra.Command, o *ChildOptions) {
	cmd.Flags().StringVar(&o.DOB, "dob", "",
		"Date of birth, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.Gender, "gender", "boy",
		"One of boy, girl, or other.")
}

// ShowOptions captures display flags.
type ShowOptions struct {
	ShowID bool
	Month  bool
}

func AddShowArgs(cmd *cobra.Command, o *ShowOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show task ids.")
	cmd.Flags().BoolVar(&o.Month, "month", false,
		"Show the month calendar instead of the day timeline.")
}

// OutputOptions switches command output to JSON.
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
