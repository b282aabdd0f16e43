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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// getDashedSegments returns the segments for dash i as a slice into dashedSegs.
func (r *Rasterizer) getDashedSegments(i int) []segment {
	start := r.dashedSegsOffsets[i]
	end := len(r.dashedSegs)
	if i+1 < len(r.dashedSegsOffsets) {
		end = r.dashedSegsOffsets[i+1]
	}
	return r.dashedSegs[start:end]
}

// applyDashPattern splits the flattened subpaths into the "on" parts of the
// dash pattern.  Results are stored in r.dashedSegs and r.dashedSegsOffsets.
// For closed subpaths which start and end inside a dash, the two pieces are
// joined so that the beam is not blanked at the start point.
func (r *Rasterizer) applyDashPattern() {
	r.dashedSegs = r.dashedSegs[:0]
	r.dashedSegsOffsets = r.dashedSegsOffsets[:0]

	dash := r.Dash
	dashLen := len(dash)

	// odd-length patterns are repeated twice
	patternLen := 0.0
	for _, d := range dash {
		if d < 0 || math.IsNaN(d) {
			return
		}
		patternLen += d
	}
	if dashLen%2 == 1 {
		patternLen *= 2
	}
	if !(patternLen > 0) || math.IsInf(patternLen, 0) {
		return
	}

	phase := math.Mod(r.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	for spIdx := range r.segsOffsets {
		segments := r.getSubpathSegments(spIdx)
		closed := r.subpathClosed[spIdx]

		// find the dash containing the start of the subpath
		dashIdx := 0
		dist := phase
		for dist >= dash[dashIdx%dashLen] {
			dist -= dash[dashIdx%dashLen]
			dashIdx++
		}
		remaining := dash[dashIdx%dashLen] - dist
		isOn := dashIdx%2 == 0

		startedOn := isOn
		firstDashStart, firstDashEnd := -1, -1
		firstOffsetIdx := -1
		dashStartIdx := len(r.dashedSegs)

		// closeDash records the dash collected since dashStartIdx.
		closeDash := func() {
			if len(r.dashedSegs) == dashStartIdx {
				if firstDashStart < 0 {
					// an empty dash at the start cannot be joined
					startedOn = false
				}
				return
			}
			if firstDashStart < 0 {
				firstDashStart = dashStartIdx
				firstDashEnd = len(r.dashedSegs)
				firstOffsetIdx = len(r.dashedSegsOffsets)
			}
			r.dashedSegsOffsets = append(r.dashedSegsOffsets, dashStartIdx)
			dashStartIdx = len(r.dashedSegs)
		}

		for _, seg := range segments {
			segLen := seg.length()
			segDist := 0.0
			for segDist < segLen {
				from := lerp(seg, segDist/segLen)
				if remaining >= segLen-segDist {
					// dash continues past the end of this segment
					if isOn {
						r.dashedSegs = append(r.dashedSegs, segment{A: from, B: seg.B})
					}
					remaining -= segLen - segDist
					segDist = segLen
					continue
				}

				// dash ends within this segment
				segDist += remaining
				to := lerp(seg, segDist/segLen)
				if isOn {
					if to.Sub(from).Length() > zeroLengthThreshold {
						r.dashedSegs = append(r.dashedSegs, segment{A: from, B: to})
					}
					closeDash()
				}
				dashIdx++
				remaining = dash[dashIdx%dashLen]
				isOn = dashIdx%2 == 0
			}
		}

		if len(r.dashedSegs) == dashStartIdx {
			continue
		}
		if closed && startedOn && isOn && firstDashStart >= 0 {
			// The last dash runs into the first one.  Rotate the first dash
			// behind the last, so that both are drawn as one stroke.
			n := firstDashEnd - firstDashStart
			tail := r.dashedSegs[firstDashStart:]
			slices.Reverse(tail[:n])
			slices.Reverse(tail[n:])
			slices.Reverse(tail)

			offsets := r.dashedSegsOffsets
			offsets = slices.Delete(offsets, firstOffsetIdx, firstOffsetIdx+1)
			for i := firstOffsetIdx; i < len(offsets); i++ {
				offsets[i] -= n
			}
			r.dashedSegsOffsets = append(offsets, dashStartIdx-n)
			continue
		}
		r.dashedSegsOffsets = append(r.dashedSegsOffsets, dashStartIdx)
	}
}

// lerp returns the point at parameter t along seg.
func lerp(seg segment, t float64) vec.Vec2 {
	return seg.A.Add(seg.B.Sub(seg.A).Mul(t))
}
