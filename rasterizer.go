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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer converts lines and paths into the sample stream of a laser
// projector.  Samples are collected in a frame buffer until RenderFrame
// hands them to the output device.  Create one instance per projector and
// reuse it for all frames; internal buffers are never reallocated.
//
// A Rasterizer is not safe for concurrent use.  Use a Pump to hand frames
// to a device from a different goroutine.
type Rasterizer struct {
	// CTM transforms from user space to device space.  New sets this to a
	// uniform scaling which maps the configured drawing area onto the
	// device range.  Must be non-singular.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in device units.
	// Must be positive.
	Flatness float64

	// Tolerance is the largest gap, in device units along each axis,
	// between the beam position and the start of a line for which the
	// beam stays on.
	Tolerance float64

	// Dash specifies alternating on/off lengths in user-space units, used
	// by RenderPath.  Nil means solid.
	Dash []float64

	// DashPhase offsets into the dash pattern in user-space units.
	DashPhase float64

	// SampleRate is the output rate in samples per second.
	SampleRate uint

	beam   beam
	frame  *FrameBuffer
	sink   Sink
	logger *slog.Logger
	stats  Stats

	// Flattening buffers (reused across RenderPath calls)
	segs          []segment // all segments from all subpaths, contiguous
	segsOffsets   []int     // start index of each subpath in segs
	subpathClosed []bool    // whether each subpath is closed
	dots          []vec.Vec2

	// Dash pattern output buffers
	dashedSegs        []segment
	dashedSegsOffsets []int
}

// Stats holds cumulative counters for a Rasterizer.
type Stats struct {
	Frames      uint64 // non-empty frames passed to RenderFrame
	Delivered   uint64 // frames accepted by the device
	Busy        uint64 // frames dropped because the device was not ready
	Failed      uint64 // frames the device failed to accept
	Overruns    uint64 // frames which exceeded the buffer capacity
	LostSamples uint64 // samples dropped because of overruns
}

// New returns a Rasterizer for the given configuration, writing frames to
// the DAC with index cfg.Device of dev.
//
// The devices of dev are enumerated and described in the log.  Problems
// found during enumeration are reported but are not fatal.  If dev is nil,
// all frames are discarded.
func New(cfg Config, dev Device) (*Rasterizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = newNopLogger()
	}

	frame := NewFrameBuffer(cfg.Capacity, logger)
	r := &Rasterizer{
		CTM:        scaleMatrix(cfg.Width, cfg.Height),
		Flatness:   cfg.Flatness,
		Tolerance:  cfg.Tolerance,
		SampleRate: cfg.SampleRate,
		beam:       beam{out: frame},
		frame:      frame,
		sink:       discardSink{},
		logger:     logger,
	}

	if dev != nil {
		describeDevices(dev, logger)
		r.sink = DeviceSink(dev, cfg.Device)
	}
	return r, nil
}

// describeDevices enumerates the DACs of dev and logs their properties.
func describeDevices(dev Device, logger *slog.Logger) {
	n, err := dev.OpenDevices()
	if err != nil {
		logger.Info("cannot enumerate DACs", "error", err)
		return
	}
	logger.Info("found DACs", "count", n)
	for i := range n {
		kind := "IDN/Network"
		if dev.IsUSB(i) {
			kind = "USB"
		}
		name, err := dev.Name(i)
		if err != nil {
			logger.Info("unknown DAC", "index", i, "type", kind,
				"firmware", dev.FirmwareVersion(i), "error", err)
			continue
		}
		logger.Info("DAC", "index", i, "name", name, "type", kind,
			"firmware", dev.FirmwareVersion(i))
	}
}

// SetSink redirects finished frames to s, for example a Pump.
func (r *Rasterizer) SetSink(s Sink) {
	if s == nil {
		s = discardSink{}
	}
	r.sink = s
}

// RenderLine draws a line from p0 to p1, given in user space.  A color of 0
// moves the beam without drawing.
//
// If the beam is not already at p0, it is switched off, moved to p0 and
// switched on again before the line is drawn.
func (r *Rasterizer) RenderLine(p0, p1 vec.Vec2, color uint8) {
	d0 := apply(r.CTM, p0)
	d1 := apply(r.CTM, p1)
	if !finite(d0) || !finite(d1) {
		r.logger.Debug("line skipped, non-finite coordinates", "p0", p0, "p1", p1)
		return
	}

	b := &r.beam
	if !equalWithin(b.pos, d0, r.Tolerance) {
		b.setOn(0)
		b.setPosition(d0)
	}
	b.setOn(color)
	b.setLevel(color)
	b.setPosition(d1)
}

// RenderFrame sends the samples collected since the last call to the
// output device and starts a new frame.  Beam position and color carry
// over to the next frame.
func (r *Rasterizer) RenderFrame() FrameReport {
	rep := r.frame.Emit(r.sink, r.SampleRate)
	if rep.Samples == 0 {
		return rep
	}

	r.stats.Frames++
	switch {
	case rep.Delivered:
		r.stats.Delivered++
	case rep.Busy:
		r.stats.Busy++
	case rep.Err != nil:
		r.stats.Failed++
	}
	if rep.Lost > 0 {
		r.stats.Overruns++
		r.stats.LostSamples += uint64(rep.Lost)
	}
	return rep
}

// Frame gives access to the frame buffer.
func (r *Rasterizer) Frame() *FrameBuffer {
	return r.frame
}

// Buffered returns the number of samples in the current frame.
func (r *Rasterizer) Buffered() int {
	return r.frame.Len()
}

// Stats returns the cumulative frame statistics.
func (r *Rasterizer) Stats() Stats {
	return r.stats
}

// Position returns the current beam position in user space.
func (r *Rasterizer) Position() vec.Vec2 {
	return r.FromDevice(r.beam.pos)
}

// Color returns the color of the last emitted sample.  Zero means the beam
// is off.
func (r *Rasterizer) Color() uint8 {
	return r.beam.color
}

// ToDevice transforms a point from user space to device space.
func (r *Rasterizer) ToDevice(p vec.Vec2) vec.Vec2 {
	return apply(r.CTM, p)
}

// FromDevice transforms a point from device space back to user space.
func (r *Rasterizer) FromDevice(p vec.Vec2) vec.Vec2 {
	inv, ok := invert(r.CTM)
	if !ok {
		return vec.Vec2{}
	}
	return apply(inv, p)
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
