package bitmap

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/bitmap-outline-mcp/internal/outline"
)

func TestParse(t *testing.T) {
	b, err := Parse([]string{"#.X", "1 *", "_0x"})
	if err != nil {
		t.Fatal(err)
	}
	if b.Width != 3 || b.Height != 3 {
		t.Fatalf("size = %d×%d, want 3×3", b.Width, b.Height)
	}
	want := []byte{1, 0, 1, 1, 0, 1, 0, 0, 1}
	if diff := cmp.Diff(want, b.Data); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"#.#", "#.#", "..#"}, b.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"ragged", []string{"##", "#"}, ErrInvalidSize},
		{"bad character", []string{"#?"}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.rows); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	b, err := Parse(nil)
	if err != nil || b.Width != 0 || b.Height != 0 {
		t.Errorf("Parse(nil) = %v, %v, want empty bitmap", b, err)
	}
}

func TestFromValues(t *testing.T) {
	b, err := FromValues(2, 2, []int{1, 0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "#.\n.#" {
		t.Errorf("String() = %q", got)
	}
	if !b.At(1, 1) || b.At(1, 0) || b.At(5, 5) {
		t.Error("At() returned wrong cells")
	}

	if _, err := FromValues(2, 2, []int{1, 0, 0}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("short values error = %v, want ErrInvalidSize", err)
	}
	if _, err := FromValues(2, 1, []int{1, 2}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("value 2 error = %v, want ErrInvalidValue", err)
	}
	if _, err := FromValues(-1, 1, nil); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative width error = %v, want ErrInvalidSize", err)
	}
}

func TestSetCount(t *testing.T) {
	b, err := New(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(0, 0, true)
	b.Set(2, 1, true)
	b.Set(9, 9, true)
	if got := b.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	b.Set(0, 0, false)
	if got := b.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

// createTwoColourImage draws the foreground cells of rows in black on white.
func createTwoColourImage(rows []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	rows := []string{"###.", "#.#.", "###."}
	b, err := FromImage(createTwoColourImage(rows), color.White)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows, b.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}

	// Inverting the background inverts the raster.
	b, err = FromImage(createTwoColourImage(rows), color.Black)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"...#", ".#.#", "...#"}, b.Rows()); diff != "" {
		t.Errorf("inverted Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImageNotBinary(t *testing.T) {
	img := createTwoColourImage([]string{"#..", "..#"})
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	if _, err := FromImage(img, color.White); !errors.Is(err, ErrNotBinary) {
		t.Errorf("FromImage() error = %v, want ErrNotBinary", err)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := createTwoColourImage([]string{"....", ".##.", ".#..", "...."})
	sub := img.SubImage(image.Rect(1, 1, 3, 3))
	b, err := FromImage(sub, color.White)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"##", "#."}, b.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Components
	}{
		{"empty", []string{"...", "..."}, Components{}},
		{"single", []string{"#"}, Components{Regions: 1}},
		{"ring", []string{"###", "#.#", "###"}, Components{Regions: 1, Holes: 1}},
		{"checkerboard", []string{"#.", ".#"}, Components{Regions: 2}},
		{"notch open at the corner", []string{"###", "#.#", "##."}, Components{Regions: 1}},
		{"diagonal hole cells", []string{"####", "#.##", "##.#", "####"}, Components{Regions: 1, Holes: 1}},
		{"island in a hole", []string{
			"#####",
			"#...#",
			"#.#.#",
			"#...#",
			"#####",
		}, Components{Regions: 2, Holes: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.rows)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.Components(); got != tt.want {
				t.Errorf("Components() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Components and the outliner must agree on connectivity.
func TestComponentsMatchOutline(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 300; n++ {
		w, h := 1+rng.Intn(10), 1+rng.Intn(10)
		b, err := New(w, h)
		if err != nil {
			t.Fatal(err)
		}
		density := 0.2 + 0.6*rng.Float64()
		for i := range b.Data {
			if rng.Float64() < density {
				b.Data[i] = 1
			}
		}

		segs, err := outline.Outline(w, h, b.Data)
		if err != nil {
			t.Fatalf("raster %d:\n%s\n%v", n, b, err)
		}
		var got Components
		for _, l := range outline.Loops(segs) {
			if l.Hole() {
				got.Holes++
			} else {
				got.Regions++
			}
		}
		if want := b.Components(); got != want {
			t.Errorf("raster %d:\n%s\nloops give %+v, components %+v", n, b, got, want)
		}
	}
}

func TestFromPixels(t *testing.T) {
	pixels := [][]string{
		{"#fff", "#000", "#000000"},
		{"#ffffff", "#000", "#fff"},
	}
	b, err := FromPixels(pixels, "")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{".##", ".#."}, b.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}

	b, err = FromPixels(pixels, "#000")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"#..", "#.#"}, b.Rows()); diff != "" {
		t.Errorf("inverted Rows() mismatch (-want +got):\n%s", diff)
	}

	b, err = FromPixels(nil, "")
	if err != nil || b.Width != 0 || b.Height != 0 {
		t.Errorf("FromPixels(nil) = %v, %v, want empty bitmap", b, err)
	}
}

func TestFromPixelsErrors(t *testing.T) {
	tests := []struct {
		name       string
		pixels     [][]string
		background string
		want       error
	}{
		{"ragged", [][]string{{"#fff", "#000"}, {"#fff"}}, "", ErrInvalidSize},
		{"bad pixel", [][]string{{"#fff", "black"}}, "", ErrInvalidValue},
		{"bad background", [][]string{{"#fff"}}, "white", ErrInvalidValue},
		{"three colours", [][]string{{"#fff", "#000", "#f00"}}, "", ErrNotBinary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromPixels(tt.pixels, tt.background); !errors.Is(err, tt.want) {
				t.Errorf("FromPixels() error = %v, want %v", err, tt.want)
			}
		})
	}
}
