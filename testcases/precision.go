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
	"seehuhn.de/go/geom/path"
)

// clampCases contain geometry near or outside the drawing area, and tiny
// details below the device resolution.
var clampCases = []Scene{
	{
		Name:   "outside_right",
		Path:   horizontalLine(32, 32, 100),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "outside_negative",
		Path:   rectangle(-20, -20, 20, 20),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	{
		Name:   "border",
		Path:   rectangle(0, 0, 64, 64),
		Width:  64,
		Height: 64,
		Color:  255,
	},
	// the drawing area is wider than high, so the top of the device range
	// is never reached
	{
		Name:   "wide_area",
		Path:   rectangle(0, 0, 128, 32),
		Width:  128,
		Height: 32,
		Color:  255,
	},
	{
		Name:   "subunit_offset",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  4096,
		Height: 4096,
		Color:  255,
	},
	{
		Name:   "subunit_square",
		Path:   rectangle(100, 100, 100.5, 100.5),
		Width:  4096,
		Height: 4096,
		Color:  255,
	},
}

// offsetRectangle builds a rectangle shifted by a fraction of a unit.
func offsetRectangle(x1, y1, w, h, offset float64) path.Path {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}
