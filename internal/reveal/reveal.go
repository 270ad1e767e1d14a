// Package reveal tells which page sections are on screen.
//
// Sections are line ranges in the rendered page; the viewport is the range of
// lines currently shown. An Observer reports sections whose visible share
// crosses its threshold.
package reveal

// Section is a block of lines in the page.
type Section struct {
	ID     string
	Top    int
	Height int
}

// Bottom is the first line after the section.
func (s Section) Bottom() int { return s.Top + s.Height }

// Ratio is the share of s inside the viewport [top, top+height).
func Ratio(s Section, top, height int) float64 {
	if s.Height <= 0 || height <= 0 {
		return 0
	}
	lo := max(s.Top, top)
	hi := min(s.Bottom(), top+height)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(s.Height)
}

// Mode decides how often an observer reports a section.
type Mode int

const (
	// Once reports a section the first time it becomes visible and never again.
	Once Mode = iota
	// Edge reports a section every time it goes from hidden to visible.
	Edge
)

// Options configure an Observer.
type Options struct {
	// Threshold is the visible share required, in (0, 1].
	Threshold float64
	// BottomMargin shrinks the viewport from the bottom, in lines.
	BottomMargin int
	Mode         Mode
}

// Observer tracks a set of sections against a moving viewport.
type Observer struct {
	opt      Options
	sections []Section
	visible  map[string]bool
	fired    map[string]bool
}

func NewObserver(opt Options) *Observer {
	if opt.Threshold <= 0 {
		opt.Threshold = 0.01
	}
	if opt.Threshold > 1 {
		opt.Threshold = 1
	}
	return &Observer{
		opt:     opt,
		visible: map[string]bool{},
		fired:   map[string]bool{},
	}
}

// Observe adds s, or updates its position if a section with the same ID is
// already observed. Layout changes call this again with the new geometry.
func (o *Observer) Observe(s Section) {
	for i := range o.sections {
		if o.sections[i].ID == s.ID {
			o.sections[i] = s
			return
		}
	}
	o.sections = append(o.sections, s)
}

// Fired reports whether id has been reported at least once.
func (o *Observer) Fired(id string) bool { return o.fired[id] }

// Check evaluates every section against the viewport [top, top+height) and
// returns the IDs that became visible, in observation order.
func (o *Observer) Check(top, height int) []string {
	height -= o.opt.BottomMargin
	var out []string
	for _, s := range o.sections {
		now := Ratio(s, top, height) >= o.opt.Threshold
		was := o.visible[s.ID]
		o.visible[s.ID] = now
		if !now || was {
			continue
		}
		if o.opt.Mode == Once && o.fired[s.ID] {
			continue
		}
		o.fired[s.ID] = true
		out = append(out, s.ID)
	}
	if o.opt.Mode == Once {
		o.dropFired()
	}
	return out
}

// fired sections of a Once observer are never reported again
func (o *Observer) dropFired() {
	kept := o.sections[:0]
	for _, s := range o.sections {
		if !o.fired[s.ID] {
			kept = append(kept, s)
		}
	}
	o.sections = kept
}
