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

// Package laser converts vector drawings into the sample stream of a
// galvanometer laser projector.
//
// The mirrors of a projector can only travel a limited distance per sample,
// and the laser diode needs a few samples to settle whenever it is switched
// on or off.  A [Rasterizer] takes care of both: lines are subdivided into
// steps of at most [MaxStepOn] device units while the beam is lit, and
// [MaxStepOff] units while it is dark, and dwell samples are inserted at
// every transition.  Lines which do not start where the previous line ended
// are reached by a blank jump.
//
// Samples are collected in a fixed-size [FrameBuffer].  A frame which does
// not fit is truncated, and the number of lost samples is reported.
// [Rasterizer.RenderFrame] hands the frame to the output [Device] without
// ever blocking; a device which is busy misses the frame.
package laser

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
