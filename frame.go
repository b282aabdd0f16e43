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
)

// DefaultFrameCapacity is the number of samples a frame buffer holds
// unless configured otherwise.
const DefaultFrameCapacity = 128 * 1024

// FrameBuffer collects the samples of one frame.  The storage is allocated
// once; samples appended after the buffer is full are counted and dropped.
//
// A FrameBuffer is not safe for concurrent use.
type FrameBuffer struct {
	samples  []Sample // len(samples) is the capacity
	count    int
	overflow int
	logger   *slog.Logger
}

// NewFrameBuffer allocates a frame buffer for the given number of samples.
// If capacity is not positive, DefaultFrameCapacity is used.  A nil logger
// disables the overrun warning.
func NewFrameBuffer(capacity int, logger *slog.Logger) *FrameBuffer {
	if capacity <= 0 {
		capacity = DefaultFrameCapacity
	}
	if logger == nil {
		logger = newNopLogger()
	}
	return &FrameBuffer{
		samples: make([]Sample, capacity),
		logger:  logger,
	}
}

// Append adds a sample to the current frame.  If the buffer is full, the
// sample is discarded and the overflow counter is incremented.
func (f *FrameBuffer) Append(s Sample) {
	if f.count >= len(f.samples) {
		f.overflow++
		return
	}
	f.samples[f.count] = s
	f.count++
}

// Samples returns the samples of the current frame.  The returned slice
// aliases the buffer and is only valid until the next call to Emit or Reset.
func (f *FrameBuffer) Samples() []Sample {
	return f.samples[:f.count]
}

// Len returns the number of samples in the current frame.
func (f *FrameBuffer) Len() int {
	return f.count
}

// Cap returns the maximum number of samples per frame.
func (f *FrameBuffer) Cap() int {
	return len(f.samples)
}

// Overflow returns the number of samples dropped from the current frame.
func (f *FrameBuffer) Overflow() int {
	return f.overflow
}

// Reset discards the current frame.
func (f *FrameBuffer) Reset() {
	f.count = 0
	f.overflow = 0
}

// FrameReport describes the outcome of a call to FrameBuffer.Emit.
type FrameReport struct {
	// Samples is the number of samples in the frame.
	Samples int

	// Lost is the number of samples dropped because the buffer was full.
	Lost int

	// Delivered is true if the sink accepted the frame.
	Delivered bool

	// Busy is true if the frame was dropped because the sink was not ready.
	Busy bool

	// Err is the error returned by the sink, if any.
	Err error
}

// Emit hands the current frame to sink and starts a new frame.
//
// If the frame is empty, the sink is not contacted.  Otherwise the frame is
// offered to the sink once, without blocking: a sink which is not ready
// simply misses this frame.  The buffer is reset in either case.
func (f *FrameBuffer) Emit(sink Sink, rate uint) FrameReport {
	if f.count == 0 {
		return FrameReport{}
	}
	defer f.Reset()

	rep := FrameReport{
		Samples: f.count,
		Lost:    f.overflow,
	}
	if f.overflow > 0 {
		f.logger.Warn("frame overrun", "lost", f.overflow, "capacity", len(f.samples))
	}

	if !sink.Ready() {
		rep.Busy = true
		f.logger.Debug("frame dropped, device busy", "samples", f.count)
		return rep
	}
	if err := sink.Write(rate, f.samples[:f.count]); err != nil {
		rep.Err = err
		f.logger.Debug("frame dropped, write failed", "samples", f.count, "error", err)
		return rep
	}
	rep.Delivered = true
	return rep
}
