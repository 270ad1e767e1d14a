package music

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var (
	ErrNoTrack           = errors.New("no track loaded")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Extensions lists the audio formats Open understands.
var Extensions = []string{".mp3", ".wav", ".flac"}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Track is a decoded audio file.
type Track struct {
	Path   string
	Format beep.Format

	file     *os.File
	streamer beep.StreamSeekCloser
}

// Open decodes the audio file at path.
func Open(path string) (*Track, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}
	s, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &Track{Path: path, Format: format, file: f, streamer: s}, nil
}

// Name is the file name without its extension.
func (t *Track) Name() string {
	base := filepath.Base(t.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.streamer.Len())
}

func (t *Track) Position() time.Duration {
	return t.Format.SampleRate.D(t.streamer.Position())
}

// Seek moves to d, clamped to the track.
func (t *Track) Seek(d time.Duration) error {
	n := t.Format.SampleRate.N(d)
	n = min(max(n, 0), t.streamer.Len())
	if err := t.streamer.Seek(n); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	return nil
}

// AtEnd reports whether every sample has been played.
func (t *Track) AtEnd() bool {
	return t.streamer.Position() >= t.streamer.Len()
}

func (t *Track) Close() error {
	err := t.streamer.Close()
	if cerr := t.file.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) && err == nil {
		err = cerr
	}
	return err
}
