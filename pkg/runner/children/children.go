package children

import (
	"context"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/child"
	"tableflip.dev/alpha/pkg/printers"
)

type Children struct {
	// Name being set means add a profile; otherwise list the roster.
	Name   string
	DOB    string
	Gender string

	Service *app.Service
}

func (n *Children) Do(ctx context.Context) error {
	if n.Name != "" {
		c := child.Child{
			Name:        n.Name,
			DateOfBirth: n.DOB,
			Gender:      child.ParseGender(n.Gender),
		}
		if _, err := n.Service.AddChild(ctx, c); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.Title("Children")
	pp.Children(n.Service.Roster)
	return nil
}
