package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/forever/internal/model"
)

const (
	appDir         = "forever"
	configFileName = "forever.yaml"

	// DefaultStart is used when no start date is configured.
	DefaultStart = "2025-06-26 23:59:00"
)

var (
	ErrInvalidStart    = errors.New("invalid start date")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidHearts   = errors.New("invalid hearts count")
)

// Themes lists the accepted theme names.
var Themes = []string{"rose", "neon", "mono"}

// startLayouts are tried in order; RFC 3339 carries its own offset.
var startLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Config is the resolved runtime configuration.
type Config struct {
	Start        time.Time
	Title        string
	Subtitle     string
	Message      string
	LoveLabel    string
	LoveMessages []string
	Gallery      []model.Photo
	Song         string
	Theme        string
	Hearts       int
	Debug        bool
}

// File mirrors forever.yaml.
type File struct {
	Start        string        `yaml:"start"`
	Timezone     string        `yaml:"timezone"`
	Title        string        `yaml:"title"`
	Subtitle     string        `yaml:"subtitle"`
	Message      string        `yaml:"message"`
	LoveLabel    string        `yaml:"love_label"`
	LoveMessages []string      `yaml:"love_messages"`
	Gallery      []model.Photo `yaml:"gallery"`
	Song         string        `yaml:"song"`
	Theme        string        `yaml:"theme"`
	Hearts       int           `yaml:"hearts"`
	Debug        bool          `yaml:"debug"`
}

// Env holds the environment overrides.
type Env struct {
	Start    string `env:"FOREVER_START"`
	Timezone string `env:"FOREVER_TIMEZONE"`
	Song     string `env:"FOREVER_SONG"`
	Theme    string `env:"FOREVER_THEME"`
	Hearts   int    `env:"FOREVER_HEARTS"`
	Debug    bool   `env:"FOREVER_DEBUG"`
}

// Defaults returns the built-in page content.
func Defaults() File {
	return File{
		Start:     DefaultStart,
		Title:     "Happy Valentine's Day",
		Subtitle:  "Every second with you is my favourite",
		Message:   "From the first minute until this one, you have been my favourite story.",
		LoveLabel: "Press Enter if you love me",
		LoveMessages: []string{
			"I Love You More!",
			"You Are My World",
			"Forever & Always",
			"My Heart Is Yours",
			"You Complete Me",
		},
		Gallery: []model.Photo{
			{Title: "First Date", Caption: "where it all started"},
			{Title: "Late Walks", Caption: "talking until sunrise"},
			{Title: "Our Song", Caption: "on repeat, always"},
			{Title: "Adventures", Caption: "every road with you"},
			{Title: "Home", Caption: "wherever you are"},
		},
		Theme:  "rose",
		Hearts: 20,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/forever/forever.yaml or its platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// Load reads the file at path over the defaults, applies environment
// overrides and resolves the result. A missing file is fine unless required
// is set.
func Load(path string, required bool) (Config, error) {
	return LoadWith(path, required, Env{})
}

// LoadWith is Load with command line overrides applied after the
// environment.
func LoadWith(path string, required bool, flags Env) (Config, error) {
	f := Defaults()
	if path != "" {
		if err := readFile(path, &f); err != nil {
			if !errors.Is(err, os.ErrNotExist) || required {
				return Config{}, err
			}
		}
	}
	var e Env
	if err := env.Parse(&e); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	f.apply(e)
	f.apply(flags)
	return f.Resolve()
}

func readFile(path string, f *File) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (f *File) apply(e Env) {
	if e.Start != "" {
		f.Start = e.Start
	}
	if e.Timezone != "" {
		f.Timezone = e.Timezone
	}
	if e.Song != "" {
		f.Song = e.Song
	}
	if e.Theme != "" {
		f.Theme = e.Theme
	}
	if e.Hearts != 0 {
		f.Hearts = e.Hearts
	}
	if e.Debug {
		f.Debug = true
	}
}

// Resolve validates f and turns it into a Config.
func (f File) Resolve() (Config, error) {
	loc := time.Local
	if tz := strings.TrimSpace(f.Timezone); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, tz, err)
		}
		loc = l
	}
	start, err := ParseStart(f.Start, loc)
	if err != nil {
		return Config{}, err
	}

	theme := strings.ToLower(strings.TrimSpace(f.Theme))
	if theme == "" {
		theme = "rose"
	}
	if !slices.Contains(Themes, theme) {
		return Config{}, fmt.Errorf("%w %q (want one of %s)", ErrInvalidTheme, f.Theme, strings.Join(Themes, ", "))
	}

	if f.Hearts < 0 || f.Hearts > 500 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidHearts, f.Hearts)
	}

	return Config{
		Start:        start,
		Title:        f.Title,
		Subtitle:     f.Subtitle,
		Message:      f.Message,
		LoveLabel:    f.LoveLabel,
		LoveMessages: f.LoveMessages,
		Gallery:      f.Gallery,
		Song:         expandHome(strings.TrimSpace(f.Song)),
		Theme:        theme,
		Hearts:       f.Hearts,
		Debug:        f.Debug,
	}, nil
}

// ParseStart parses a start date in one of the accepted layouts, in loc
// unless the value carries its own offset.
func ParseStart(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidStart)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q (use YYYY-MM-DD [HH:MM[:SS]])", ErrInvalidStart, s)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
