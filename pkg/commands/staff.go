package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/runner/staff"
)

func addStaff(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "List household staff",
		Example: `
alpha staff
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			s := staff.Staff{Service: svc}
			return output.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
