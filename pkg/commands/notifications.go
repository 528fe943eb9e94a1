package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/runner/notifications"
)

func addNotifications(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"feed"},
		Short:   "Show the activity feed",
		Example: `
alpha notifications
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			s := notifications.Notifications{Service: svc}
			return output.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
