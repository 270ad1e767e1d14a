package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/forever/internal/elapsed"
	"github.com/Makepad-fr/forever/internal/ui"
)

func sinceCmd(o *options) *cobra.Command {
	var (
		at     string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "since",
		Short: "Print how long it has been, once",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			ui.SetTheme(cfg.Theme)

			now := time.Now()
			if at != "" {
				now, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return usageError{fmt.Errorf("--at: %w", err)}
				}
			}

			b := elapsed.Compute(cfg.Start, now)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(b)
			}
			printSince(cmd.OutOrStdout(), cfg.Start, now, b)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "measure up to this RFC 3339 instant instead of now")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the breakdown as JSON")
	return cmd
}

func printSince(w io.Writer, start, now time.Time, b elapsed.Breakdown) {
	t := ui.Current()
	lines := []string{t.Title.Render("Together for"), ""}

	if b.IsZero() {
		lines = append(lines, t.Accent.Render("not yet, it begins "+humanize.RelTime(start, now, "ago", "from now")))
	} else {
		lines = append(lines, t.Number.Render(describe(b)))
	}
	lines = append(lines, t.Muted.Render(fmt.Sprintf("since %s (%s)",
		start.Format("January 2, 2006 at 15:04"),
		humanize.RelTime(start, now, "ago", "from now"))))

	if !now.Before(start) {
		prev, next := elapsed.NextAnniversary(start, now)
		done := int(now.Sub(prev) / time.Second)
		total := int(next.Sub(prev) / time.Second)
		lines = append(lines, "",
			t.Label.Render(fmt.Sprintf("next anniversary %s, %s",
				next.Format("January 2, 2006"),
				humanize.RelTime(next, now, "ago", "from now"))),
			t.Accent.Render(ui.ProgressBar(done, total, 28)),
		)
	}
	fmt.Fprintln(w, ui.Panel(lines))
}

// describe spells out the non-zero parts of b, largest first.
func describe(b elapsed.Breakdown) string {
	parts := []struct {
		n    int
		unit string
	}{
		{b.Years, "year"},
		{b.Months, "month"},
		{b.Days, "day"},
		{b.Hours, "hour"},
		{b.Minutes, "minute"},
		{b.Seconds, "second"},
	}
	var words []string
	for _, p := range parts {
		if p.n > 0 {
			words = append(words, english.Plural(p.n, p.unit, ""))
		}
	}
	return english.WordSeries(words, "and")
}
