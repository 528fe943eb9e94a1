package add

import (
	"context"
	"time"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/mission"
	"tableflip.dev/alpha/pkg/printers"
)

type Add struct {
	Title       string
	Description string
	On          *time.Time
	At          dates.ClockTime
	Category    mission.Category
	Repeat      mission.Repeat

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	partial := mission.Mission{
		Title:       n.Title,
		Description: n.Description,
		Time:        n.At,
		Category:    n.Category,
		Repeat:      n.Repeat,
	}
	if n.On != nil {
		partial.Date = dates.ToDayKey(*n.On)
	}

	m, err := n.Service.AddMission(ctx, partial)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Day(m.Date, n.Service.HolidayFor(m.Date))
	pp.Timeline(n.Service.Timeline(ctx, m.Date)...)
	return nil
}
