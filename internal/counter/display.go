package counter

import "github.com/Makepad-fr/forever/internal/elapsed"

// Field identifies one of the six counter outputs.
type Field string

const (
	Years   Field = "years"
	Months  Field = "months"
	Days    Field = "days"
	Hours   Field = "hours"
	Minutes Field = "minutes"
	Seconds Field = "seconds"
)

// Fields lists every counter output in display order.
var Fields = []Field{Years, Months, Days, Hours, Minutes, Seconds}

// Display receives integer values for the counter outputs.
type Display interface {
	Show(f Field, value int)
}

// DisplayFunc adapts a plain function to Display.
type DisplayFunc func(f Field, value int)

func (fn DisplayFunc) Show(f Field, value int) { fn(f, value) }

// Values is an in-memory Display, also handy for rendering.
type Values map[Field]int

func (v Values) Show(f Field, value int) { v[f] = value }

// Value returns the value of f in b.
func Value(b elapsed.Breakdown, f Field) int {
	switch f {
	case Years:
		return b.Years
	case Months:
		return b.Months
	case Days:
		return b.Days
	case Hours:
		return b.Hours
	case Minutes:
		return b.Minutes
	case Seconds:
		return b.Seconds
	}
	return 0
}

// Write pushes all six fields of b to d.
func Write(d Display, b elapsed.Breakdown) {
	for _, f := range Fields {
		d.Show(f, Value(b, f))
	}
}
