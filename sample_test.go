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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestDeviceCoord(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want uint16
	}{
		{0, 0},
		{12.9, 12},
		{-5, 0},
		{MaxCoord, MaxCoord},
		{MaxCoord + 100, MaxCoord},
		{math.NaN(), 0},
		{math.Inf(1), MaxCoord},
	} {
		if got := deviceCoord(tc.in); got != tc.want {
			t.Errorf("deviceCoord(%g) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestIntensity(t *testing.T) {
	for _, tc := range []struct {
		color uint8
		want  uint8
	}{
		{0, 0},
		{1, 0},
		{128, 63},
		{255, FullPower},
	} {
		if got := intensity(tc.color); got != tc.want {
			t.Errorf("intensity(%d) = %d, want %d", tc.color, got, tc.want)
		}
	}
}

func TestSampleRGB(t *testing.T) {
	s := newSample(vec.Vec2{X: 3.7, Y: 9000}, 255)
	if s.X != 3 || s.Y != MaxCoord {
		t.Errorf("position = %d, %d", s.X, s.Y)
	}
	r, g, b := s.RGB()
	if r != 0 || g != 0 || b != FullPower {
		t.Errorf("RGB() = %d, %d, %d", r, g, b)
	}
}

func TestInvert(t *testing.T) {
	m := matrix.Matrix{2, 1, -1, 3, 5, 7}
	inv, ok := invert(m)
	if !ok {
		t.Fatal("matrix reported singular")
	}
	for _, p := range []vec.Vec2{{}, {X: 1, Y: 2}, {X: -30, Y: 0.5}} {
		if q := apply(inv, apply(m, p)); q.Sub(p).Length() > 1e-12 {
			t.Errorf("round trip of %v gives %v", p, q)
		}
	}

	if _, ok := invert(matrix.Matrix{1, 2, 2, 4, 0, 0}); ok {
		t.Error("singular matrix inverted")
	}
}
