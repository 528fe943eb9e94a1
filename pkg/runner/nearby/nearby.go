package nearby

import (
	"context"
	"errors"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/printers"
)

type Nearby struct {
	Query string

	Service *app.Service
}

func (n *Nearby) Do(ctx context.Context) error {
	result, err := n.Service.FindNearby(ctx, n.Query)
	if err != nil {
		return err
	}
	if result == nil {
		return errors.New("nearby: search failed, try again later")
	}
	pp := printers.PrettyPrint{}
	pp.Nearby(result.Text, result.Links)
	return nil
}
