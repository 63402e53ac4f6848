package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/study"
	bt "github.com/fwojciec/study/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(a *app) *cobra.Command {
	var flags scopeFlags
	cmd := &cobra.Command{
		Use:   "chat (--lecture|--topic|--subject) ID",
		Short: "Chat with the tutor",
		Long: `Open an interactive tutor chat.

Type /mode tutor, /mode practice or /mode exam to switch how the tutor
answers. Ctrl+C cancels a pending answer, or quits when idle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := flags.conversation(time.Now())
			if err != nil {
				return err
			}
			client, err := a.newClient()
			if err != nil {
				return err
			}

			m := bt.New(client.Ask, &conv, study.DefaultTheme())
			if err := bt.Run(cmd.Context(), m); err != nil {
				return fmt.Errorf("TUI: %w", err)
			}

			if err := flags.save(conv); err != nil {
				return err
			}
			if flags.convo != "" && len(conv.Messages) > 0 {
				fmt.Fprintf(a.stderr, "Conversation saved to %s\n", flags.convo)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
