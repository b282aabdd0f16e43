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
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func frameOf(x uint16, n int) []Sample {
	return repeat(Sample{X: x, Intensity: FullPower}, n)
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timeout")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPumpKeepsNewestFrame(t *testing.T) {
	dev := &fakeDevice{names: []string{"a"}}
	p := NewPump(dev, 0, 16, nil)

	// without a running pump, every frame replaces the waiting one
	for x := range uint16(5) {
		src := frameOf(x, 3)
		if err := p.Write(1000+uint(x), src); err != nil {
			t.Fatal(err)
		}
		src[0].X = 99 // the pump must have taken a copy
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- p.Run(ctx) }()

	waitFor(t, func() bool { return dev.frameCount() == 1 })
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}

	if d := cmp.Diff(frameOf(4, 3), dev.frames[0]); d != "" {
		t.Errorf("delivered frame (-want +got):\n%s", d)
	}
	if dev.rates[0] != 1004 {
		t.Errorf("rate = %d", dev.rates[0])
	}
	if dev.flags[0] != FlagSingleMode|FlagDontBlock {
		t.Errorf("flags = %v", dev.flags[0])
	}

	want := PumpStats{Submitted: 5, Superseded: 4, Delivered: 1}
	if d := cmp.Diff(want, p.Stats()); d != "" {
		t.Errorf("stats (-want +got):\n%s", d)
	}
}

func TestPumpBusyAndFailing(t *testing.T) {
	dev := &fakeDevice{names: []string{"a"}, busy: true}
	p := NewPump(dev, 0, 4, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	if err := p.Write(1, frameOf(1, 1)); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return p.Stats().Busy == 1 })

	dev.mu.Lock()
	dev.busy = false
	dev.writeErr = errors.New("unplugged")
	dev.mu.Unlock()
	if err := p.Write(1, frameOf(2, 1)); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return p.Stats().Failed == 1 })
}

// The rasterizer writes through a pump while the pump sends frames from
// another goroutine.
func TestPumpWithRasterizer(t *testing.T) {
	dev := &fakeDevice{names: []string{"a"}}
	r, err := New(DefaultConfig(MaxCoord), nil)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPump(dev, 0, r.Frame().Cap(), nil)
	r.SetSink(p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- p.Run(ctx) }()

	for i := range 50 {
		x := float64(10 * (i % 20))
		r.RenderLine(vec.Vec2{X: x}, vec.Vec2{X: x + 10}, 255)
		if rep := r.RenderFrame(); !rep.Delivered {
			t.Fatalf("frame %d not accepted: %+v", i, rep)
		}
	}
	waitFor(t, func() bool {
		st := p.Stats()
		return st.Delivered+st.Superseded == 50
	})
	cancel()
	<-done

	if n := dev.frameCount(); n == 0 {
		t.Error("no frames delivered")
	}
}
