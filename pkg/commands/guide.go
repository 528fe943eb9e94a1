package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/runner/guide"
)

func addGuide(topLevel *cobra.Command) {
	var summarize string

	cmd := &cobra.Command{
		Use:   "guide [query]",
		Short: "Browse or search the parenting guide",
		Example: `
alpha guide
alpha guide sleep training
alpha guide --summarize=1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			s := guide.Guide{
				Query:     strings.Join(args, " "),
				Summarize: summarize,
				Service:   svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	cmd.Flags().StringVar(&summarize, "summarize", "",
		"Summarize the article with the given id.")
	topLevel.AddCommand(cmd)
}
