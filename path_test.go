// seehuhn.de/go/laser - vector graphics for laser projectors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package laser

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

func square(x, y, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x + size, Y: y}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x + size, Y: y + size}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y + size}}) &&
			yield(path.CmdClose, nil)
	}
}

func circle(cx, cy, r float64) path.Path {
	k := kappa * r
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: cx + r, Y: cy}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx + r, Y: cy + k}, {X: cx + k, Y: cy + r}, {X: cx, Y: cy + r}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx - k, Y: cy + r}, {X: cx - r, Y: cy + k}, {X: cx - r, Y: cy}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx - r, Y: cy - k}, {X: cx - k, Y: cy - r}, {X: cx, Y: cy - r}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx + k, Y: cy - r}, {X: cx + r, Y: cy - k}, {X: cx + r, Y: cy}}) &&
			yield(path.CmdClose, nil)
	}
}

// darkRuns counts the maximal runs of dark samples.
func darkRuns(samples []Sample) int {
	n := 0
	for i, s := range samples {
		if !s.Lit() && (i == 0 || samples[i-1].Lit()) {
			n++
		}
	}
	return n
}

func TestRenderPathSquare(t *testing.T) {
	r, _ := newTestRasterizer(t)
	r.RenderPath(square(100, 100, 200), 255)

	got := r.Frame().Samples()
	if n := darkRuns(got); n != 1 {
		t.Errorf("closed square drawn with %d dark runs, want 1", n)
	}
	if pos := r.Position(); pos != (vec.Vec2{X: 100, Y: 100}) {
		t.Errorf("beam ends at %v", pos)
	}
	last := got[len(got)-1]
	if !last.Lit() || last.X != 100 || last.Y != 100 {
		t.Errorf("last sample = %v", last)
	}
}

func TestRenderPathSubpaths(t *testing.T) {
	r, _ := newTestRasterizer(t)
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 10, Y: 10}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 50, Y: 10}}) &&
			yield(path.CmdMoveTo, []vec.Vec2{{X: 200, Y: 200}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 250, Y: 200}})
	}
	r.RenderPath(p, 255)
	if n := darkRuns(r.Frame().Samples()); n != 2 {
		t.Errorf("two open subpaths drawn with %d dark runs, want 2", n)
	}
}

func TestRenderPathDot(t *testing.T) {
	r, _ := newTestRasterizer(t)
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 300, Y: 400}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 300, Y: 400}})
	}
	r.RenderPath(p, 255)

	lit := 0
	for _, s := range r.Frame().Samples() {
		if s.Lit() {
			lit++
			if s.X != 300 || s.Y != 400 {
				t.Errorf("lit sample at %v", s.Point())
			}
		}
	}
	if lit != CyclesToOn+CyclesToStableOn {
		t.Errorf("dot has %d lit samples", lit)
	}
}

func TestRenderPathMoveOnly(t *testing.T) {
	r, _ := newTestRasterizer(t)
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdMoveTo, []vec.Vec2{{X: 300, Y: 400}})
	}
	r.RenderPath(p, 255)
	if n := r.Frame().Len(); n != 0 {
		t.Errorf("bare MoveTo produced %d samples", n)
	}
}

func TestRenderPathCircle(t *testing.T) {
	r, _ := newTestRasterizer(t)
	const cx, cy, radius = 2000.0, 2000.0, 1000.0
	r.RenderPath(circle(cx, cy, radius), 255)

	got := r.Frame().Samples()
	lit := 0
	for _, s := range got {
		if !s.Lit() {
			continue
		}
		lit++
		d := s.Point().Sub(vec.Vec2{X: cx, Y: cy}).Length()
		// flattening, Bezier approximation and truncation errors
		if math.Abs(d-radius) > 3 {
			t.Fatalf("sample %v is %.2f from the centre", s.Point(), d)
		}
	}
	// the circumference takes at least 2πr/MaxStepOn samples
	if want := int(math.Floor(2 * math.Pi * radius / MaxStepOn)); lit < want {
		t.Errorf("only %d lit samples, want at least %d", lit, want)
	}
	if n := darkRuns(got); n != 1 {
		t.Errorf("circle drawn with %d dark runs, want 1", n)
	}
}

func TestFlattenQuadratic(t *testing.T) {
	r, _ := newTestRasterizer(t)
	var pts []vec.Vec2
	emit := func(from, to vec.Vec2) {
		if len(pts) == 0 {
			pts = append(pts, from)
		}
		pts = append(pts, to)
	}
	p0, p1, p2 := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 500, Y: 1000}, vec.Vec2{X: 1000, Y: 0}
	r.flattenQuadratic(p0, p1, p2, emit)

	if len(pts) < 3 {
		t.Fatalf("curve flattened into %d points", len(pts))
	}
	if pts[0] != p0 || pts[len(pts)-1] != p2 {
		t.Errorf("end points %v, %v", pts[0], pts[len(pts)-1])
	}

	// the curve is y = 2x(1 - x/1000) for this control polygon
	for i := 1; i < len(pts); i++ {
		mid := pts[i-1].Add(pts[i]).Mul(0.5)
		want := 2 * mid.X * (1 - mid.X/1000)
		if err := want - mid.Y; err > r.Flatness+1e-9 || err < 0 {
			t.Errorf("chord %d deviates by %g", i, err)
		}
	}
}
