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

	"seehuhn.de/go/geom/vec"
)

// Settle times and slew limits of the projector, in samples and device
// units per sample.
const (
	// CyclesToOn is the number of dwell samples after switching the beam on.
	CyclesToOn = 4

	// CyclesToOff is the number of dwell samples after switching the beam off.
	CyclesToOff = 4

	// CyclesToStableOn is the number of dwell samples after a lit move.
	CyclesToStableOn = 2

	// CyclesToStableOff is the number of dwell samples after a blank move.
	CyclesToStableOff = 1

	// MaxStepOn is the largest distance the mirrors may travel in one
	// sample while the beam is on.
	MaxStepOn = 5

	// MaxStepOff is the largest distance the mirrors may travel in one
	// sample while the beam is off.
	MaxStepOff = 10
)

// beam tracks the state of the laser: mirror position in device space and
// the color of the last emitted sample.  All samples go to out.
type beam struct {
	pos   vec.Vec2
	color uint8
	out   *FrameBuffer
}

func (b *beam) on() bool {
	return b.color > 0
}

// pause emits n samples at the current position.
func (b *beam) pause(n int) {
	s := newSample(b.pos, b.color)
	for range n {
		b.out.Append(s)
	}
}

// setOn switches the beam on (color > 0) or off (color == 0).  Nothing
// happens if the beam already is in the requested state; in particular the
// brightness of a lit beam is not changed.
func (b *beam) setOn(color uint8) {
	if b.on() == (color > 0) {
		return
	}
	b.color = color
	if color > 0 {
		b.pause(CyclesToOn)
	} else {
		b.pause(CyclesToOff)
	}
}

// setLevel changes the brightness of a lit beam without settle time.
// It has no effect on an unlit beam, and cannot switch the beam off.
func (b *beam) setLevel(color uint8) {
	if b.on() && color > 0 {
		b.color = color
	}
}

// setPosition moves the mirrors to target in steps no longer than the slew
// limit for the current beam state, then waits for the mirrors to settle.
func (b *beam) setPosition(target vec.Vec2) {
	maxStep := float64(MaxStepOff)
	if b.on() {
		maxStep = MaxStepOn
	}

	steps := int(math.Ceil(distance(b.pos, target) / maxStep))
	if steps > 0 {
		move := target.Sub(b.pos).Mul(1 / float64(steps))
		for i := range steps {
			p := b.pos.Add(move.Mul(float64(i)))
			b.out.Append(newSample(p, b.color))
		}
	}

	b.pos = target
	if b.on() {
		b.pause(CyclesToStableOn)
	} else {
		b.pause(CyclesToStableOff)
	}
}
