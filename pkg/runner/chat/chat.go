package chat

import (
	"context"
	"fmt"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/alpha/pkg/app"
)

type Chat struct {
	Prompt string

	Service *app.Service
}

func (n *Chat) Do(ctx context.Context) error {
	reply := n.Service.Chat(ctx, n.Prompt)
	fmt.Println(wordwrap.String(reply.Text, 80))
	return nil
}
