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

package testcases

import (
	"math"
	"regexp"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestScenes(t *testing.T) {
	seen := make(map[string]bool)
	for category, scenes := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, sc := range scenes {
			name := category + "_" + sc.Name
			if !validName.MatchString(sc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[name] = true

			if !(sc.Width > 0 && sc.Height > 0) {
				t.Errorf("%s: invalid size %gx%g", name, sc.Width, sc.Height)
			}
			if sc.Color == 0 {
				t.Errorf("%s: beam color not set", name)
			}

			n := 0
			for cmd, pts := range sc.Outline() {
				n++
				if n == 1 && cmd != path.CmdMoveTo {
					t.Errorf("%s: path starts with %v", name, cmd)
				}
				for _, p := range pts {
					if math.IsNaN(p.X) || math.IsNaN(p.Y) {
						t.Errorf("%s: NaN coordinate", name)
					}
				}
			}
			if n < 2 {
				t.Errorf("%s: path has only %d commands", name, n)
			}
		}
	}
}

func TestOutline(t *testing.T) {
	sc := Scene{
		Path: horizontalLine(-1, 0, 1),
		CTM:  matrix.Scale(2, 3).Translate(10, 20),
	}
	var got []vec.Vec2
	for _, pts := range sc.Outline() {
		got = append(got, pts...)
	}
	want := []vec.Vec2{{X: 8, Y: 20}, {X: 12, Y: 20}}
	if len(got) != len(want) {
		t.Fatalf("got %d points", len(got))
	}
	for i := range want {
		if got[i].Sub(want[i]).Length() > 1e-12 {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
