package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/alpha/pkg/runner/chat"
)

func addChat(topLevel *cobra.Command) {
	var prompt string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask AlphaBot a parenting question",
		Example: `
alpha chat how do I get my toddler to nap
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a prompt")
			}
			prompt = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			s := chat.Chat{Prompt: prompt, Service: svc}
			return output.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
