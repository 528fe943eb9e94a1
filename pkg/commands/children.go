package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/commands/options"
	"tableflip.dev/alpha/pkg/runner/children"
)

func addChildren(topLevel *cobra.Command) {
	co := &options.ChildOptions{}

	cmd := &cobra.Command{
		Use:     "children [name]",
		Aliases: []string{"child", "kids"},
		Short:   "List children, or add one by name",
		Example: `
alpha children
alpha children Meera --dob=2023-09-12 --gender=girl
`,
		Args: func(_ *cobra.Command, args []string) error {
			co.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			s := children.Children{
				Name:    co.Name,
				DOB:     co.DOB,
				Gender:  co.Gender,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddChildArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
