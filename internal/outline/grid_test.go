package outline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBuildSingleCell(t *testing.T) {
	g := NewGrid(1, 1)
	if err := g.Build([]byte{1}); err != nil {
		t.Fatal(err)
	}
	if cols, rows := g.Size(); cols != 4 || rows != 5 {
		t.Fatalf("Size() = %d, %d, want 4, 5", cols, rows)
	}

	want := map[[2]int]Direction{
		{1, 1}: Right,
		{1, 3}: Left,
		{1, 2}: Up,
		{2, 2}: Down,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 4; x++ {
			if got := g.At(x, y).Direction(); got != want[[2]int{x, y}] {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
	if got := g.At(-1, 0); got != 0 {
		t.Errorf("At(-1, 0) = %v, want empty", got)
	}
}

func TestClassifyRing(t *testing.T) {
	_, _, data := raster(t, "###", "#.#", "###")
	g := NewGrid(3, 3)
	if err := g.Build(data); err != nil {
		t.Fatal(err)
	}
	if err := g.Classify(); err != nil {
		t.Fatal(err)
	}

	inner := map[[2]int]bool{
		{2, 3}: true, // top of the hole
		{2, 5}: true, // bottom of the hole
		{2, 4}: true,
		{3, 4}: true,
	}
	cols, rows := g.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			a := g.At(x, y)
			if a.Direction() == None {
				continue
			}
			if !a.Visited() {
				t.Errorf("arrow %v at %d,%d not visited", a, x, y)
			}
			if a.Seen() {
				t.Errorf("arrow %v at %d,%d seen before tracing", a, x, y)
			}
			if a.Inner() != inner[[2]int{x, y}] {
				t.Errorf("arrow at %d,%d: Inner() = %v, want %v", x, y, a.Inner(), inner[[2]int{x, y}])
			}
		}
	}
}

func TestPassOrder(t *testing.T) {
	g := NewGrid(2, 2)
	if err := g.Classify(); !errors.Is(err, ErrPassOrder) {
		t.Errorf("Classify() on empty grid error = %v, want ErrPassOrder", err)
	}
	if _, err := g.Trace(nil); !errors.Is(err, ErrPassOrder) {
		t.Errorf("Trace() on empty grid error = %v, want ErrPassOrder", err)
	}

	if err := g.Build([]byte{1, 0, 0, 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Trace(nil); !errors.Is(err, ErrPassOrder) {
		t.Errorf("Trace() on built grid error = %v, want ErrPassOrder", err)
	}
	if err := g.Build([]byte{1, 0, 0, 1}); !errors.Is(err, ErrStaleState) {
		t.Errorf("second Build() error = %v, want ErrStaleState", err)
	}
	if err := g.Build([]byte{1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Build() short data error = %v, want ErrInvalidInput", err)
	}

	g.Reset()
	if err := g.Build([]byte{1, 0, 0, 1}); err != nil {
		t.Errorf("Build() after Reset error = %v", err)
	}
}

func TestTraceAppends(t *testing.T) {
	g := NewGrid(1, 1)
	if err := g.Build([]byte{1}); err != nil {
		t.Fatal(err)
	}
	if err := g.Classify(); err != nil {
		t.Fatal(err)
	}
	prefix := []Segment{{None, 7, 7}}
	got, err := g.Trace(prefix)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 || got[0] != prefix[0] || got[1] != (Segment{None, 0, 0}) {
		t.Errorf("Trace() = %v, want the prefix followed by one loop", got)
	}
}

func TestTraceOpenLoop(t *testing.T) {
	g := NewGrid(2, 2)
	g.place(1, 1, Right)
	g.state = stateClassified

	got, err := g.Trace(nil)
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("Trace() error = %v, want ErrInvariantViolation", err)
	}
	if len(got) != 0 {
		t.Errorf("Trace() returned partial loop %v", got)
	}
}

func TestJunctionRedirect(t *testing.T) {
	g := NewGrid(3, 3)
	g.place(2, 3, Right)
	g.place(3, 3, Left)
	g.place(3, 2, Up)
	g.cells[g.index(3, 3)] |= arrowInner
	g.cells[g.index(3, 2)] |= arrowInner

	j, err := g.next(g.index(2, 3), Right, false)
	if err != nil {
		t.Fatal(err)
	}
	if want := g.index(3, 2); j != want {
		x, y := g.coords(j)
		t.Errorf("next() reached %d,%d, want 3,2", x, y)
	}
	if g.At(3, 3).Seen() {
		t.Error("redirect arrow marked seen")
	}

	// Nothing follows in inner mode; the outer retry would bounce back.
	g.cells[g.index(3, 2)] = 0
	g.cells[g.index(2, 3)] |= arrowInner
	if _, err := g.next(g.index(2, 3), Right, false); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("next() error = %v, want ErrInvariantViolation", err)
	}
}

func TestDump(t *testing.T) {
	g := NewGrid(1, 1)
	data := []byte{1}
	if err := g.Build(data); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := g.Dump(&buf, data, false); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"∙   ∙   ∙   ∙   ",
		"  ∙   →   ∙   ",
		"∙   ↑ # ↓   ∙   ",
		"  ∙   ←   ∙   ",
		"∙   ∙   ∙   ∙   ",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpInner(t *testing.T) {
	_, _, data := raster(t, "###", "#.#", "###")
	o, err := NewOutliner(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.FindPaths(data); err != nil {
		t.Fatal(err)
	}

	var plain, coloured bytes.Buffer
	if err := o.Dump(&plain, false); err != nil {
		t.Fatal(err)
	}
	if err := o.Dump(&coloured, true); err != nil {
		t.Fatal(err)
	}
	for _, glyph := range []string{"⇐", "⇒", "⇓", "⇑"} {
		if !strings.Contains(plain.String(), glyph) {
			t.Errorf("plain dump has no inner arrow %s", glyph)
		}
	}
	if !strings.Contains(coloured.String(), ansiRed+"←"+ansiReset) {
		t.Error("coloured dump has no red inner arrow")
	}
	if strings.Contains(coloured.String(), "⇐") {
		t.Error("coloured dump uses double arrows")
	}
}
