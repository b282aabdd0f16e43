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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func horizontal(x0, x1 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1}})
	}
}

func seg(ax, ay, bx, by float64) segment {
	return segment{A: vec.Vec2{X: ax, Y: ay}, B: vec.Vec2{X: bx, Y: by}}
}

// dashes returns the dashed segments grouped by dash.
func (r *Rasterizer) dashes() [][]segment {
	var res [][]segment
	for i := range r.dashedSegsOffsets {
		res = append(res, r.getDashedSegments(i))
	}
	return res
}

func TestApplyDashPattern(t *testing.T) {
	cases := []struct {
		name  string
		p     path.Path
		dash  []float64
		phase float64
		want  [][]segment
	}{
		{
			name: "open_line",
			p:    horizontal(0, 40),
			dash: []float64{10, 5},
			want: [][]segment{
				{seg(0, 0, 10, 0)},
				{seg(15, 0, 25, 0)},
				{seg(30, 0, 40, 0)},
			},
		},
		{
			name: "odd_length",
			p:    horizontal(0, 40),
			dash: []float64{10},
			want: [][]segment{
				{seg(0, 0, 10, 0)},
				{seg(20, 0, 30, 0)},
			},
		},
		{
			name:  "phase_starts_in_gap",
			p:     horizontal(0, 40),
			dash:  []float64{10, 5},
			phase: 12,
			want: [][]segment{
				{seg(3, 0, 13, 0)},
				{seg(18, 0, 28, 0)},
				{seg(33, 0, 40, 0)},
			},
		},
		{
			name:  "negative_phase",
			p:     horizontal(0, 40),
			dash:  []float64{10, 5},
			phase: -3,
			want: [][]segment{
				{seg(3, 0, 13, 0)},
				{seg(18, 0, 28, 0)},
				{seg(33, 0, 40, 0)},
			},
		},
		{
			name: "closed_without_join",
			p:    square(0, 0, 40),
			dash: []float64{30, 10},
			want: [][]segment{
				{seg(0, 0, 30, 0)},
				{seg(40, 0, 40, 30)},
				{seg(40, 40, 10, 40)},
				{seg(0, 40, 0, 10)},
			},
		},
		{
			name:  "closed_with_join",
			p:     square(0, 0, 40),
			dash:  []float64{30, 10},
			phase: 5,
			want: [][]segment{
				{seg(35, 0, 40, 0), seg(40, 0, 40, 25)},
				{seg(40, 35, 40, 40), seg(40, 40, 15, 40)},
				{seg(5, 40, 0, 40), seg(0, 40, 0, 15)},
				{seg(0, 5, 0, 0), seg(0, 0, 25, 0)},
			},
		},
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestRasterizer(t)
			r.Dash = tc.dash
			r.DashPhase = tc.phase
			r.flattenPath(tc.p)
			r.applyDashPattern()

			if d := cmp.Diff(tc.want, r.dashes(), approx); d != "" {
				t.Errorf("dashes (-want +got):\n%s", d)
			}
		})
	}
}

func TestApplyDashPatternInvalid(t *testing.T) {
	for _, dash := range [][]float64{{0, 0}, {-1, 5}} {
		r, _ := newTestRasterizer(t)
		r.Dash = dash
		r.flattenPath(horizontal(0, 40))
		r.applyDashPattern()
		if len(r.dashedSegs) != 0 {
			t.Errorf("dash %v produced %d segments", dash, len(r.dashedSegs))
		}
	}
}

func TestRenderPathDashed(t *testing.T) {
	r, _ := newTestRasterizer(t)
	r.Dash = []float64{100, 100}
	r.RenderPath(horizontal(0, 1000), 255)

	// the first dash starts at the beam position, the other four are
	// reached by blank jumps
	if n := darkRuns(r.Frame().Samples()); n != 4 {
		t.Errorf("got %d dark runs, want 4", n)
	}
	for _, s := range r.Frame().Samples() {
		if s.Lit() && s.X%200 > 100 {
			t.Errorf("lit sample in a gap at x=%d", s.X)
		}
	}
}
