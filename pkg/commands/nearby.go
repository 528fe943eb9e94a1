package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/runner/nearby"
)

func addNearby(topLevel *cobra.Command) {
	var query string

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Find child-friendly activities near you",
		Example: `
alpha nearby swim classes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a query")
			}
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			s := nearby.Nearby{Query: query, Service: svc}
			return output.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
