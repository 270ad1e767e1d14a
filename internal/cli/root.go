package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/forever/internal/config"
	"github.com/Makepad-fr/forever/internal/logger"
	"github.com/Makepad-fr/forever/internal/music"
	"github.com/Makepad-fr/forever/internal/tui"
	"github.com/Makepad-fr/forever/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks mistakes in how the command was called.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	start      string
	timezone   string
	song       string
	theme      string
	debug      bool
	noColor    bool
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cmd := newRootCmd()
	return exitCode(cmd, cmd.Execute())
}

func exitCode(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitOK
	}
	ui.Fail(cmd.ErrOrStderr(), err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Run 'forever --help' for usage.")
		return ExitUsage
	}
	return ExitError
}

func newRootCmd() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:           "forever",
		Short:         "forever - how long we have been together",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			ui.SetColorForcing(false, o.noColor)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}

			defer startLogging(cmd.ErrOrStderr(), cfg.Debug)()
			log := logger.L()
			log.Info("forever.start", "start", cfg.Start, "theme", cfg.Theme, "song", cfg.Song)

			ui.SetTheme(cfg.Theme)
			player := music.NewPlayer(log)
			defer func() { _ = player.Close() }()

			return tui.Run(tui.Deps{
				Config: cfg,
				Player: player,
				Pick:   music.Pick,
				Logger: log,
			})
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/forever/forever.yaml)")
	f.StringVar(&o.start, "start", "", "when it all began, YYYY-MM-DD [HH:MM[:SS]] or RFC 3339")
	f.StringVar(&o.timezone, "timezone", "", "IANA zone the start date is in (default local)")
	f.StringVar(&o.song, "song", "", "audio file to play (mp3, wav or flac)")
	f.StringVar(&o.theme, "theme", "", "colour theme: rose, neon or mono")
	f.BoolVar(&o.debug, "debug", false, "verbose logging to the log file")
	f.BoolVar(&o.noColor, "no-color", false, "disable colours")

	cmd.AddCommand(sinceCmd(&o), watchCmd(&o), versionCmd())
	return cmd
}

// load reads the config file then applies the environment and the flags.
func (o *options) load() (config.Config, error) {
	path, required := o.configPath, o.configPath != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := config.LoadWith(path, required, config.Env{
		Start:    o.start,
		Timezone: o.timezone,
		Song:     o.song,
		Theme:    o.theme,
		Debug:    o.debug,
	})
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, config.ErrInvalidStart),
		errors.Is(err, config.ErrInvalidTimezone),
		errors.Is(err, config.ErrInvalidTheme),
		errors.Is(err, config.ErrInvalidHearts):
		return config.Config{}, usageError{err}
	}
	return config.Config{}, err
}

// startLogging points the logger at its file and, with debug, says where
// that is. The returned func closes the file.
func startLogging(w io.Writer, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{Debug: debug})
	if debug {
		if logger.IsReady() == nil {
			fmt.Fprintln(w, "debug log: "+logger.Path())
		} else {
			ui.Fail(w, fmt.Sprintf("debug log unavailable: %v", err))
		}
	}
	return func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}
