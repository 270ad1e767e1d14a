package music

import (
	"errors"
	"strings"

	"github.com/ncruces/zenity"
)

// Pick asks for a track with the native file dialog. A cancelled dialog
// returns "" and no error.
func Pick() (string, error) {
	patterns := make([]string, 0, len(Extensions))
	for _, ext := range Extensions {
		patterns = append(patterns, "*"+ext)
	}
	path, err := zenity.SelectFile(
		zenity.Title("Choose our song"),
		zenity.FileFilters{
			{Name: "Audio (" + strings.Join(patterns, " ") + ")", Patterns: patterns},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
