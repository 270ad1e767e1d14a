package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/forever/internal/counter"
	"github.com/Makepad-fr/forever/internal/logger"
	"github.com/Makepad-fr/forever/internal/ui"
)

func watchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Count up in the terminal until interrupted",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			ui.SetTheme(cfg.Theme)

			defer startLogging(cmd.ErrOrStderr(), cfg.Debug)()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			e := counter.New(cfg.Start, counter.RealClock{})
			logger.L().Info("watch.start", "start", cfg.Start)

			err = counter.Run(ctx, e, newLine(out))
			fmt.Fprintln(out)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}
}

// line redraws one terminal line each time the last field arrives.
type line struct {
	w      io.Writer
	values counter.Values
}

func newLine(w io.Writer) *line {
	return &line{w: w, values: counter.Values{}}
}

func (l *line) Show(f counter.Field, v int) {
	l.values[f] = v
	if f == counter.Fields[len(counter.Fields)-1] {
		fmt.Fprint(l.w, "\r"+l.render())
	}
}

func (l *line) render() string {
	t := ui.Current()
	parts := make([]string, 0, len(counter.Fields))
	for _, f := range counter.Fields {
		parts = append(parts, t.Number.Render(fmt.Sprintf("%d", l.values[f]))+" "+t.Label.Render(string(f)))
	}
	return t.Heart.Render(t.HeartGlyph) + " " + strings.Join(parts, "  ")
}
