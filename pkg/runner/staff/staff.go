package staff

import (
	"context"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/printers"
)

type Staff struct {
	Service *app.Service
}

func (n *Staff) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Household Staff")
	pp.Staff(n.Service.Staff(ctx))
	return nil
}
