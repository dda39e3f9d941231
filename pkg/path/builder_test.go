package path

import (
	"image"
	"image/color"
	"testing"

	"bezplot/pkg/graphics"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/vector"
)

func TestPolyline(t *testing.T) {
	p := NewBuilder().Polyline([]graphics.Point{{X: 0, Y: 0}}).Build()
	if !p.IsEmpty() {
		t.Errorf("single point polyline produced %d segments", len(p.Segments))
	}

	p = NewBuilder().Polyline([]graphics.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 4}}).Build()
	want := []graphics.PathSegment{
		{Op: graphics.PathOpMoveTo, Point: graphics.Pt(0, 0)},
		{Op: graphics.PathOpLineTo, Point: graphics.Pt(1, 2)},
		{Op: graphics.PathOpLineTo, Point: graphics.Pt(3, 4)},
	}
	if d := cmp.Diff(want, p.Segments); d != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", d)
	}
}

func TestDiamond(t *testing.T) {
	c := graphics.Pt(10, 10)
	want := [4]graphics.Point{{X: 10, Y: 6}, {X: 14, Y: 10}, {X: 10, Y: 14}, {X: 6, Y: 10}}
	if got := DiamondVertices(c, 4); got != want {
		t.Errorf("DiamondVertices = %v, want %v", got, want)
	}

	lines := NewBuilder().Diamond(c, 4).Build().Lines()
	if len(lines) != 4 {
		t.Fatalf("diamond has %d edges, want 4", len(lines))
	}
	for i, l := range lines {
		if l[0] != want[i] || l[1] != want[(i+1)%4] {
			t.Errorf("edge %d = %v", i, l)
		}
	}
}

func TestToVectorFillsDiamond(t *testing.T) {
	p := NewBuilder().Diamond(graphics.Pt(16, 16), 8).Build()

	r := vector.NewRasterizer(32, 32)
	ToVector(p, r)
	dst := image.NewAlpha(image.Rect(0, 0, 32, 32))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Opaque), image.Point{})

	if a := dst.AlphaAt(16, 16).A; a != 0xff {
		t.Errorf("centre alpha = %d, want 255", a)
	}
	if a := dst.AlphaAt(1, 1).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}
