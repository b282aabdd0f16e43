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
	"seehuhn.de/go/geom/vec"
)

// Device limits.
const (
	// MaxCoord is the largest galvanometer coordinate accepted by the DAC.
	// Both axes use the range 0..MaxCoord.
	MaxCoord = 0xFFF

	// FullPower is the intensity value for a fully lit beam.
	FullPower = 0x7F
)

// Sample is a single galvanometer position together with the beam power
// to use while the mirrors are there.
type Sample struct {
	X, Y      uint16 // device coordinates, 0..MaxCoord
	Intensity uint8  // beam power, 0..FullPower
}

// RGB returns the three intensity channels as expected by the DAC.
// Only the blue channel carries beam power, red and green are unused.
func (s Sample) RGB() (r, g, b uint8) {
	return 0, 0, s.Intensity
}

// Lit reports whether the beam is on for this sample.
func (s Sample) Lit() bool {
	return s.Intensity > 0
}

// Point returns the sample position in device space.
func (s Sample) Point() vec.Vec2 {
	return vec.Vec2{X: float64(s.X), Y: float64(s.Y)}
}

// newSample converts a device-space point and an 8-bit input color into a
// sample.  Coordinates outside the device range are clamped.
func newSample(p vec.Vec2, color uint8) Sample {
	return Sample{
		X:         deviceCoord(p.X),
		Y:         deviceCoord(p.Y),
		Intensity: intensity(color),
	}
}

// deviceCoord truncates a device-space coordinate to the DAC range.
func deviceCoord(x float64) uint16 {
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= MaxCoord {
		return MaxCoord
	}
	return uint16(x)
}

// intensity scales an 8-bit color into the power range of the beam.
func intensity(color uint8) uint8 {
	return uint8(float64(color) / 255 * FullPower)
}
