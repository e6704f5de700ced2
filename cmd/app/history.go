package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/report"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
)

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded countdowns, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
				rows, err := a.db.ListCountdowns(ctx, limit)
				if err != nil {
					return err
				}
				writeHistory(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", config.DefaultHistoryLimit, "number of entries to show, 0 for all")
	return cmd
}

func writeHistory(w io.Writer, rows []models.Countdown) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No countdowns recorded yet.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "STARTED", "DURATION", "ELAPSED", "OUTCOME")
	for _, c := range rows {
		t.Row(
			strconv.FormatInt(c.ID, 10),
			c.StartedAt.Local().Format("2006-01-02 15:04"),
			timer.Format(c.Seconds),
			timer.Format(int(c.Elapsed().Seconds())),
			string(c.Outcome),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func newReportCmd(flags *globalFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF report of the countdown history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, cmd *cobra.Command, a *app) error {
				rows, err := a.db.ListCountdowns(ctx, 0)
				if err != nil {
					return err
				}
				now := time.Now()
				path := out
				if path == "" {
					path = defaultReportPath(now)
				}
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return fmt.Errorf("create report dir: %w", err)
				}
				if err := report.WritePDFFile(path, rows, now); err != nil {
					return err
				}
				a.log.Infow("report written", "path", path, "countdowns", len(rows))
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output PDF path")
	return cmd
}

func defaultReportPath(now time.Time) string {
	name := fmt.Sprintf("%s-report-%s.pdf", config.AppName, now.Format("2006-01-02"))
	return filepath.Join(util.ReportsDir(config.AppName), name)
}
