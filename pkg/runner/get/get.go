package get

import (
	"context"
	"time"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/printers"
)

type Get struct {
	ShowID bool
	On     *time.Time
	Month  bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	day := dates.Today()
	anchor := time.Now()
	if n.On != nil {
		day = dates.ToDayKey(*n.On)
		anchor = *n.On
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Month {
		busy := map[int]bool{}
		for _, m := range n.Service.Missions.All() {
			if t, err := m.Date.Time(); err == nil &&
				t.Month() == anchor.Month() && t.Year() == anchor.Year() {
				busy[t.Day()] = true
			}
		}
		pp.Month(anchor, n.Service.Holidays, busy)
		return nil
	}

	pp.Day(day, n.Service.HolidayFor(day))
	pp.Timeline(n.Service.Timeline(ctx, day)...)
	return nil
}
