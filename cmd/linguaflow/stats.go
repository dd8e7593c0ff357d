package main

import (
	"fmt"
	"io"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	var userID string

	command := &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics report of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.usecases.Statistics.Report(cmd.Context(), userID)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	command.Flags().StringVar(&userID, "user", "", "user id")
	_ = command.MarkFlagRequired("user")
	return command
}

func printReport(out io.Writer, r *entity.StatisticsResponse) {
	title := color.New(color.Bold)
	title.Fprintln(out, "Vocabulary")
	fmt.Fprintf(out, "  total words:        %d\n", r.TotalWords)
	fmt.Fprintf(out, "  words today:        %d\n", r.WordsToday)
	fmt.Fprintf(out, "  words this week:    %d\n", r.WordsThisWeek)
	fmt.Fprintf(out, "  max words in a day: %d\n", r.MaxWordsInOneDay)

	title.Fprintln(out, "Streaks")
	fmt.Fprintf(out, "  current: %d\n", r.CurrentStreak)
	fmt.Fprintf(out, "  longest: %d\n", r.LongestStreak)
	fmt.Fprintf(out, "  missed days (last 7): %d\n", r.MissedDays)

	title.Fprintln(out, "Last 7 days")
	for _, d := range r.Activity {
		fmt.Fprintf(out, "  %s %s %d\n", d.Day, d.Date, d.Count)
	}

	title.Fprintln(out, "Comparisons")
	fmt.Fprintf(out, "  week:  %d vs %d (%s)\n", r.WeekComparison.Current, r.WeekComparison.Previous, formatChange(r.WeekComparison.PercentChange))
	fmt.Fprintf(out, "  month: %d vs %d (%s)\n", r.MonthComparison.Current, r.MonthComparison.Previous, formatChange(r.MonthComparison.PercentChange))

	title.Fprintln(out, "AI chat")
	if r.ChatMinutesFailed {
		color.New(color.FgYellow).Fprintln(out, "  chat history unavailable")
	} else {
		fmt.Fprintf(out, "  minutes: %.1f\n", r.AIChatMinutes)
	}

	if r.FutureDatedWords > 0 {
		color.New(color.FgYellow).Fprintf(out, "%d future dated words ignored\n", r.FutureDatedWords)
	}
}

func formatChange(change int) string {
	if change > 0 {
		return color.GreenString("+%d%%", change)
	}
	if change < 0 {
		return color.RedString("%d%%", change)
	}
	return "0%"
}
