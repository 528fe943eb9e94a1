package guide

import (
	"context"
	"fmt"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/alpha/pkg/app"
	"tableflip.dev/alpha/pkg/printers"
)

type Guide struct {
	Query     string
	Summarize string // article id

	Service *app.Service
}

func (n *Guide) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	if n.Summarize != "" {
		for _, a := range n.Service.Guide(ctx) {
			if a.ID == n.Summarize {
				fmt.Println(wordwrap.String(n.Service.Summarize(ctx, a), 80))
				return nil
			}
		}
		return fmt.Errorf("guide: no article with id %q", n.Summarize)
	}

	if n.Query != "" {
		pp.Title("Guide Search")
		pp.Articles(n.Service.SearchGuide(ctx, n.Query))
		return nil
	}

	pp.Title("Parenting Guide")
	pp.Articles(n.Service.Guide(ctx))
	return nil
}
