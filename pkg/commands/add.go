package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/commands/options"
	"tableflip.dev/alpha/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ao := &options.AtOptions{}
	to := &options.TaskOptions{}

	var title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a task for the selected child",
		Example: `
alpha add Medicine --at="04:00 PM" --category=meds
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
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
			at, err := ao.GetAt()
			if err != nil {
				return output.HandleError(err)
			}
			s := add.Add{
				Title:       title,
				Description: to.Description,
				On:          on,
				At:          at,
				Category:    to.GetCategory(),
				Repeat:      to.GetRepeat(),
				Service:     svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddAtArgs(cmd, ao)
	options.AddTaskArgs(cmd, to)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
