package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fwojciec/study"
	studyjson "github.com/fwojciec/study/json"
	studylipgloss "github.com/fwojciec/study/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newClassesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List your classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			classes, err := client.Classes(cmd.Context())
			if err != nil {
				return err
			}
			if len(classes) == 0 {
				fmt.Fprintln(a.stdout, "No classes yet.")
				return nil
			}
			t := study.Table{Header: textRow("Class", "Code", "Role", "Subjects", "ID")}
			for _, c := range classes {
				t.Rows = append(t.Rows, textRow(c.Name, c.Code, c.Role, strconv.Itoa(c.SubjectCount), c.ID))
			}
			a.printTable(t)
			return nil
		},
	}
}

func newSubjectsCmd(a *app, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List the subjects of a class",
		Long: `List the subjects of a class. The class comes from --class, or from the
class configuration key (STUDY_CLASS) when the flag is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Class == "" {
				return fmt.Errorf("no class selected (use --class or STUDY_CLASS; see study classes): %w", study.ErrValidation)
			}
			client, err := a.newClient()
			if err != nil {
				return err
			}
			subjects, err := client.Subjects(cmd.Context(), a.cfg.Class)
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Fprintln(a.stdout, "No subjects yet.")
				return nil
			}
			t := study.Table{Header: textRow("Subject", "Topics", "ID")}
			for _, s := range subjects {
				t.Rows = append(t.Rows, textRow(s.Name, strconv.Itoa(s.TopicCount), s.ID))
			}
			a.printTable(t)
			return nil
		},
	}
	cmd.Flags().String("class", "", "class ID")
	_ = v.BindPFlag("class", cmd.Flags().Lookup("class"))
	return cmd
}

func newTopicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topics SUBJECT_ID",
		Short: "List the topics of a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			topics, err := client.Topics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(topics) == 0 {
				fmt.Fprintln(a.stdout, "No topics yet.")
				return nil
			}
			t := study.Table{Header: textRow("Topic", "Lectures", "ID")}
			for _, tp := range topics {
				t.Rows = append(t.Rows, textRow(tp.Name, strconv.Itoa(tp.LectureCount), tp.ID))
			}
			a.printTable(t)
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account and its classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := studyjson.LoadCredentials(a.cfg.CredentialsFile)
			if errors.Is(err, study.ErrNotAuthenticated) {
				fmt.Fprintln(a.stdout, "Not logged in.")
				return nil
			}
			if err != nil {
				return err
			}
			client, err := a.newClient()
			if err != nil {
				return err
			}
			acct, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			if !acct.Authenticated {
				fmt.Fprintln(a.stdout, "Not logged in.")
				return nil
			}

			who := creds.Email
			if who == "" {
				who = acct.UserID
			}
			fmt.Fprintf(a.stdout, "Logged in as %s.\n", who)
			if len(acct.Classes) == 0 {
				fmt.Fprintln(a.stdout, "No classes yet.")
				return nil
			}
			t := study.Table{Header: textRow("Class", "Code", "Role", "ID")}
			for _, m := range acct.Classes {
				t.Rows = append(t.Rows, textRow(m.ClassName, m.ClassCode, m.Role, m.ClassID))
			}
			a.printTable(t)
			return nil
		},
	}
}

// textRow builds table cells of plain text. Empty strings become empty
// cells.
func textRow(texts ...string) [][]study.Span {
	row := make([][]study.Span, len(texts))
	for i, s := range texts {
		if s != "" {
			row[i] = []study.Span{study.Plain{Text: s}}
		}
	}
	return row
}

func (a *app) printTable(t study.Table) {
	fmt.Fprintln(a.stdout, studylipgloss.Render([]study.Block{t}, a.width(), study.DefaultTheme(), a.profile()))
}
