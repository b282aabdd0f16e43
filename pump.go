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
	"context"
	"log/slog"
	"sync/atomic"
)

// pumpBuffers is the number of frame buffers owned by a Pump: one being
// filled by Write, one waiting, one being sent by Run.
const pumpBuffers = 3

// Pump passes finished frames from a rendering goroutine to a goroutine
// which talks to the device.  Pump implements Sink, so it can be installed
// with Rasterizer.SetSink.
//
// At most one frame is waiting at any time.  A frame which is still waiting
// when the next one arrives is superseded, so that the device always gets
// the most recent image and the renderer never blocks.
type Pump struct {
	dev    Device
	index  int
	logger *slog.Logger

	free    chan []Sample
	pending chan pumpFrame

	submitted  atomic.Uint64
	superseded atomic.Uint64
	delivered  atomic.Uint64
	busy       atomic.Uint64
	failed     atomic.Uint64
}

type pumpFrame struct {
	rate    uint
	samples []Sample
}

// PumpStats is a snapshot of the counters of a Pump.
type PumpStats struct {
	Submitted  uint64 // frames passed to Write
	Superseded uint64 // frames replaced by a newer frame before being sent
	Delivered  uint64 // frames accepted by the device
	Busy       uint64 // frames dropped because the device was not ready
	Failed     uint64 // frames the device failed to accept
}

// NewPump returns a Pump which sends frames to the DAC with the given index.
// Each of the internal buffers is allocated with room for capacity samples.
func NewPump(dev Device, index int, capacity int, logger *slog.Logger) *Pump {
	if capacity <= 0 {
		capacity = DefaultFrameCapacity
	}
	if logger == nil {
		logger = newNopLogger()
	}
	p := &Pump{
		dev:     dev,
		index:   index,
		logger:  logger,
		free:    make(chan []Sample, pumpBuffers),
		pending: make(chan pumpFrame, 1),
	}
	for range pumpBuffers {
		p.free <- make([]Sample, 0, capacity)
	}
	return p
}

// Ready implements Sink.  A Pump can always take a frame.
func (p *Pump) Ready() bool {
	return true
}

// Write implements Sink.  The samples are copied, and the copy is queued
// for the device.  Write never blocks.
func (p *Pump) Write(rate uint, samples []Sample) error {
	p.submitted.Add(1)

	var buf []Sample
	select {
	case buf = <-p.free:
	default:
		// All spare buffers are in use, so a frame must be waiting.
		// Reuse its buffer.
		select {
		case old := <-p.pending:
			p.superseded.Add(1)
			buf = old.samples
		case buf = <-p.free:
		}
	}
	f := pumpFrame{rate: rate, samples: append(buf[:0], samples...)}

	for {
		select {
		case p.pending <- f:
			return nil
		default:
		}
		select {
		case old := <-p.pending:
			p.superseded.Add(1)
			p.free <- old.samples
		default:
		}
	}
}

// Run sends queued frames to the device until ctx is cancelled.
func (p *Pump) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-p.pending:
			p.deliver(f)
			p.free <- f.samples[:0]
		}
	}
}

func (p *Pump) deliver(f pumpFrame) {
	st, err := p.dev.Status(p.index)
	if err != nil || st != StatusReady {
		p.busy.Add(1)
		p.logger.Debug("frame dropped, device busy", "samples", len(f.samples))
		return
	}
	err = p.dev.WriteFrame(p.index, f.rate, FlagSingleMode|FlagDontBlock, f.samples)
	if err != nil {
		p.failed.Add(1)
		p.logger.Debug("frame dropped, write failed", "samples", len(f.samples), "error", err)
		return
	}
	p.delivered.Add(1)
}

// Stats returns a snapshot of the pump counters.
func (p *Pump) Stats() PumpStats {
	return PumpStats{
		Submitted:  p.submitted.Load(),
		Superseded: p.superseded.Load(),
		Delivered:  p.delivered.Load(),
		Busy:       p.busy.Load(),
		Failed:     p.failed.Load(),
	}
}
