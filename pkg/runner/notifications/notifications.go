package notifications

import (
	"context"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/printers"
)

type Notifications struct {
	Service *app.Service
}

func (n *Notifications) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Notifications")
	pp.NewLine()
	pp.Notifications(n.Service.Notifications(ctx))
	return nil
}
