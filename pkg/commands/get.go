package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/commands/options"
	"tableflip.dev/alpha/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	so := &options.ShowOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "timeline"},
		Short:   "Show the timeline for a day",
		Example: `
alpha get
alpha get --on="2026-3-3" --show-ids
alpha get --month
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s := get.Get{
				ShowID:  so.ShowID,
				On:      on,
				Month:   so.Month,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowArgs(cmd, so)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
