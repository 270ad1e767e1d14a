package reveal

import (
	"slices"
	"testing"
)

func TestRatio(t *testing.T) {
	s := Section{ID: "counter", Top: 10, Height: 10}
	cases := []struct {
		top, height int
		want        float64
	}{
		{0, 5, 0},
		{0, 10, 0},
		{0, 13, 0.3},
		{12, 4, 0.4},
		{5, 30, 1},
		{19, 10, 0.1},
		{20, 10, 0},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := Ratio(s, c.top, c.height); got != c.want {
			t.Errorf("Ratio(top=%d, height=%d) = %v, want %v", c.top, c.height, got, c.want)
		}
	}
	if got := Ratio(Section{ID: "empty"}, 0, 10); got != 0 {
		t.Errorf("empty section ratio = %v", got)
	}
}

func TestObserverOnce(t *testing.T) {
	o := NewObserver(Options{Threshold: 0.3})
	o.Observe(Section{ID: "counter", Top: 10, Height: 10})

	if got := o.Check(0, 12); len(got) != 0 {
		t.Fatalf("20%% visible fired: %v", got)
	}
	if got := o.Check(0, 13); !slices.Equal(got, []string{"counter"}) {
		t.Fatalf("30%% visible: got %v", got)
	}
	if !o.Fired("counter") {
		t.Fatalf("Fired should report counter")
	}

	// scroll away and back: never again
	o.Check(40, 10)
	o.Observe(Section{ID: "counter", Top: 10, Height: 10})
	if got := o.Check(10, 10); len(got) != 0 {
		t.Fatalf("second intersection fired again: %v", got)
	}
}

func TestObserverEdge(t *testing.T) {
	o := NewObserver(Options{Threshold: 0.5, Mode: Edge})
	o.Observe(Section{ID: "hero", Top: 0, Height: 10})
	o.Observe(Section{ID: "counter", Top: 10, Height: 10})

	if got := o.Check(0, 10); !slices.Equal(got, []string{"hero"}) {
		t.Fatalf("initial: %v", got)
	}
	if got := o.Check(1, 10); len(got) != 0 {
		t.Fatalf("no crossing expected: %v", got)
	}
	if got := o.Check(10, 10); !slices.Equal(got, []string{"counter"}) {
		t.Fatalf("scrolled down: %v", got)
	}
	if got := o.Check(0, 10); !slices.Equal(got, []string{"hero"}) {
		t.Fatalf("scrolled back up: %v", got)
	}
}

func TestObserverBottomMargin(t *testing.T) {
	o := NewObserver(Options{Threshold: 0.15, BottomMargin: 2})
	o.Observe(Section{ID: "message", Top: 10, Height: 10})

	// 2 of 10 lines are on screen but both sit in the margin
	if got := o.Check(0, 12); len(got) != 0 {
		t.Fatalf("margin ignored: %v", got)
	}
	if got := o.Check(0, 14); !slices.Equal(got, []string{"message"}) {
		t.Fatalf("got %v", got)
	}
}
