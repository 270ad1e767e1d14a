package model

// Photo is one card in the gallery strip.
// Kept minimal on purpose; the terminal only shows text.
type Photo struct {
	Title   string `yaml:"title" json:"title"`
	Caption string `yaml:"caption" json:"caption"`
}
