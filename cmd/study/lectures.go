package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/study"
	studylipgloss "github.com/fwojciec/study/lipgloss"
	"github.com/fwojciec/study/markdown"
	"github.com/spf13/cobra"
)

func newLecturesCmd(a *app) *cobra.Command {
	var topic string
	cmd := &cobra.Command{
		Use:   "lectures",
		Short: "List lectures",
		Long: `List all lectures, newest first. With --topic, list the lectures of
one topic in recording order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			var lectures []study.LectureSummary
			if topic != "" {
				lectures, err = client.TopicLectures(cmd.Context(), topic)
			} else {
				lectures, err = client.Lectures(cmd.Context())
			}
			if err != nil {
				return err
			}
			if len(lectures) == 0 {
				fmt.Fprintln(a.stdout, "No lectures yet.")
				return nil
			}
			a.printTable(lectureTable(lectures))
			return nil
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "only lectures of this topic")
	return cmd
}

func lectureTable(lectures []study.LectureSummary) study.Table {
	t := study.Table{Header: textRow("Title", "Recorded", "Length", "ID")}
	for _, l := range lectures {
		t.Rows = append(t.Rows, textRow(l.Title, l.RecordingDate, formatDuration(l.DurationSeconds), l.ID))
	}
	return t
}

// formatDuration renders seconds as 1h02m or 45m; zero is unknown.
func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", max(m, 1))
}

func newLectureCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "lecture ID",
		Short: "Show a lecture transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			lecture, err := client.Lecture(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(a.stdout, lecture.Text())
				return nil
			}
			blocks := []study.Block{
				study.Heading{Level: 1, Text: []study.Span{study.Plain{Text: lecture.Title}}},
				study.Blank{},
			}
			blocks = append(blocks, markdown.Parse(strings.TrimSpace(lecture.Text()))...)
			fmt.Fprintln(a.stdout, studylipgloss.Render(blocks, a.width(), study.DefaultTheme(), a.profile()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the transcript without formatting")
	return cmd
}
