package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "forever.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.June, 26, 23, 59, 0, 0, time.Local)
	if !cfg.Start.Equal(want) {
		t.Fatalf("start = %s, want %s", cfg.Start, want)
	}
	if cfg.Theme != "rose" || cfg.Hearts != 20 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.LoveMessages) != 5 || len(cfg.Gallery) == 0 {
		t.Fatalf("default content missing: %+v", cfg)
	}
}

func TestLoadRequiredMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
start: "2023-01-15 18:30"
timezone: "Europe/Paris"
title: "Us"
theme: NEON
hearts: 35
gallery:
  - title: Paris
    caption: the bridge
`)
	cfg, err := Load(p, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	paris, _ := time.LoadLocation("Europe/Paris")
	want := time.Date(2023, time.January, 15, 18, 30, 0, 0, paris)
	if !cfg.Start.Equal(want) {
		t.Fatalf("start = %s, want %s", cfg.Start, want)
	}
	if cfg.Title != "Us" || cfg.Theme != "neon" || cfg.Hearts != 35 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Gallery) != 1 || cfg.Gallery[0].Caption != "the bridge" {
		t.Fatalf("gallery = %+v", cfg.Gallery)
	}
	if cfg.Subtitle == "" {
		t.Fatalf("unset keys should keep defaults")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	p := writeConfig(t, "start: \"2023-01-15\"\ntheme: neon\n")
	t.Setenv("FOREVER_START", "2024-02-29 12:00:00")
	t.Setenv("FOREVER_TIMEZONE", "UTC")
	t.Setenv("FOREVER_THEME", "mono")
	t.Setenv("FOREVER_HEARTS", "5")
	t.Setenv("FOREVER_DEBUG", "true")

	cfg, err := Load(p, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	if !cfg.Start.Equal(want) {
		t.Fatalf("start = %s, want %s", cfg.Start, want)
	}
	if cfg.Theme != "mono" || cfg.Hearts != 5 || !cfg.Debug {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadWithFlagsBeatEnv(t *testing.T) {
	t.Setenv("FOREVER_THEME", "mono")
	t.Setenv("FOREVER_SONG", "/env/song.mp3")

	cfg, err := LoadWith("", false, Env{Theme: "neon", Start: "2020-05-01", Timezone: "UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "neon" {
		t.Fatalf("theme = %q, want neon", cfg.Theme)
	}
	if cfg.Song != "/env/song.mp3" {
		t.Fatalf("song = %q, want the env value", cfg.Song)
	}
	if want := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC); !cfg.Start.Equal(want) {
		t.Fatalf("start = %s, want %s", cfg.Start, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"bad start", "start: yesterday\n", ErrInvalidStart},
		{"bad timezone", "timezone: Mars/Olympus\n", ErrInvalidTimezone},
		{"bad theme", "theme: plaid\n", ErrInvalidTheme},
		{"bad hearts", "hearts: -3\n", ErrInvalidHearts},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.body), true)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	p := writeConfig(t, "start: [unclosed\n")
	_, err := Load(p, false)
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Fatalf("parse error reported as missing file: %v", err)
	}
}

func TestParseStart(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-26 23:59:00", time.Date(2025, 6, 26, 23, 59, 0, 0, loc)},
		{"2025-06-26 23:59", time.Date(2025, 6, 26, 23, 59, 0, 0, loc)},
		{"2025-06-26T23:59:00", time.Date(2025, 6, 26, 23, 59, 0, 0, loc)},
		{"2025-06-26", time.Date(2025, 6, 26, 0, 0, 0, 0, loc)},
		{"2025-06-26T23:59:00Z", time.Date(2025, 6, 26, 23, 59, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseStart(c.in, loc)
		if err != nil {
			t.Errorf("ParseStart(%q): %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseStart(%q) = %s, want %s", c.in, got, c.want)
		}
	}
	if _, err := ParseStart("  ", loc); !errors.Is(err, ErrInvalidStart) {
		t.Errorf("blank start: %v", err)
	}
}
