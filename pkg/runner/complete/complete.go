package complete

import (
	"context"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/printers"
)

type Complete struct {
	ID string

	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if err := n.Service.Complete(ctx, n.ID); err != nil {
		return err
	}
	m, _ := n.Service.Missions.Get(n.ID)
	pp := printers.PrettyPrint{}
	pp.Day(m.Date, n.Service.HolidayFor(m.Date))
	pp.Timeline(n.Service.Timeline(ctx, m.Date)...)
	return nil
}
