package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/study"
	studyjson "github.com/fwojciec/study/json"
	studylipgloss "github.com/fwojciec/study/lipgloss"
	"github.com/fwojciec/study/markdown"
	"github.com/spf13/cobra"
)

// scopeFlags selects what a question is asked against.
type scopeFlags struct {
	lecture string
	topic   string
	subject string
	mode    string
	convo   string
}

func (f *scopeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.lecture, "lecture", "", "ask about a lecture")
	fs.StringVar(&f.topic, "topic", "", "ask about a topic")
	fs.StringVar(&f.subject, "subject", "", "ask about a subject")
	fs.StringVar(&f.mode, "mode", "", "tutor|practice|exam (default tutor)")
	fs.StringVar(&f.convo, "conversation", "", "conversation file to continue and save")
	cmd.MarkFlagsMutuallyExclusive("lecture", "topic", "subject")
	cmd.MarkFlagsOneRequired("lecture", "topic", "subject")
}

func (f *scopeFlags) target() (study.Scope, string) {
	switch {
	case f.lecture != "":
		return study.ScopeLecture, f.lecture
	case f.topic != "":
		return study.ScopeTopic, f.topic
	default:
		return study.ScopeSubject, f.subject
	}
}

// conversation loads the conversation file when it exists, otherwise starts
// a new one. A loaded conversation must match the requested target.
func (f *scopeFlags) conversation(now time.Time) (study.Conversation, error) {
	scope, id := f.target()
	if f.convo != "" {
		conv, err := studyjson.LoadConversation(f.convo)
		switch {
		case err == nil:
			if conv.Scope != scope || conv.TargetID != id {
				return study.Conversation{}, fmt.Errorf("%s belongs to %s %s: %w", f.convo, conv.Scope, conv.TargetID, study.ErrValidation)
			}
			if f.mode != "" {
				conv.Mode = study.Mode(f.mode)
			}
			return conv, nil
		case !errors.Is(err, os.ErrNotExist):
			return study.Conversation{}, fmt.Errorf("load conversation: %w", err)
		}
	}
	return study.Conversation{
		ID:        fmt.Sprintf("%d", now.UnixNano()),
		Scope:     scope,
		TargetID:  id,
		Mode:      study.Mode(f.mode),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (f *scopeFlags) save(conv study.Conversation) error {
	if f.convo == "" || len(conv.Messages) == 0 {
		return nil
	}
	if err := studyjson.SaveConversation(f.convo, conv); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}
	return nil
}

func newAskCmd(a *app) *cobra.Command {
	var flags scopeFlags
	cmd := &cobra.Command{
		Use:   "ask (--lecture|--topic|--subject) ID [QUESTION...]",
		Short: "Ask the tutor one question",
		Long: `Ask the tutor one question and print the answer.

The question is read from stdin when not given as arguments. With
--conversation, earlier turns are sent as history and the new turn is saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				data, err := io.ReadAll(a.stdin)
				if err != nil {
					return fmt.Errorf("read question: %w", err)
				}
				question = strings.TrimSpace(string(data))
			}

			conv, err := flags.conversation(time.Now())
			if err != nil {
				return err
			}
			req := conv.Request(question)
			if err := req.Validate(); err != nil {
				return err
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}
			answer, err := client.Ask(cmd.Context(), req)
			if err != nil {
				return err
			}
			conv.Record(question, answer, time.Now())
			if err := flags.save(conv); err != nil {
				return err
			}

			blocks := markdown.Parse(answer.Response)
			fmt.Fprintln(a.stdout, studylipgloss.Render(blocks, a.width(), study.DefaultTheme(), a.profile()))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
