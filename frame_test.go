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
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestFrameBufferOverflow(t *testing.T) {
	var log bytes.Buffer
	f := NewFrameBuffer(10, slog.New(slog.NewTextHandler(&log, nil)))

	var all []Sample
	for i := range 15 {
		s := Sample{X: uint16(i), Y: uint16(2 * i), Intensity: 1}
		all = append(all, s)
		f.Append(s)
	}
	if f.Len() != 10 || f.Cap() != 10 {
		t.Errorf("Len, Cap = %d, %d", f.Len(), f.Cap())
	}
	if f.Overflow() != 5 {
		t.Errorf("Overflow() = %d, want 5", f.Overflow())
	}
	if d := cmp.Diff(all[:10], f.Samples()); d != "" {
		t.Errorf("retained samples (-want +got):\n%s", d)
	}

	sink := &recordSink{}
	rep := f.Emit(sink, 1000)
	want := FrameReport{Samples: 10, Lost: 5, Delivered: true}
	if d := cmp.Diff(want, rep); d != "" {
		t.Errorf("report (-want +got):\n%s", d)
	}
	if len(sink.frames) != 1 || len(sink.frames[0]) != 10 {
		t.Errorf("sink got %d frames", len(sink.frames))
	}
	if !strings.Contains(log.String(), `level=WARN msg="frame overrun" lost=5 capacity=10`) {
		t.Errorf("missing overrun warning:\n%s", log.String())
	}
	if f.Len() != 0 || f.Overflow() != 0 {
		t.Error("buffer not reset after Emit")
	}
}

func TestFrameBufferEmitEmpty(t *testing.T) {
	var log bytes.Buffer
	f := NewFrameBuffer(4, slog.New(slog.NewTextHandler(&log, nil)))
	sink := &recordSink{}
	if rep := f.Emit(sink, 1000); rep != (FrameReport{}) {
		t.Errorf("report = %+v", rep)
	}
	if sink.ready != 0 || len(sink.frames) != 0 {
		t.Error("sink contacted for an empty frame")
	}
	if log.Len() != 0 {
		t.Errorf("unexpected log output: %s", log.String())
	}
}

func TestFrameBufferEmitBusy(t *testing.T) {
	f := NewFrameBuffer(4, nil)
	f.Append(Sample{X: 1})
	sink := &recordSink{busy: true}
	rep := f.Emit(sink, 1000)
	if !rep.Busy || rep.Delivered || rep.Samples != 1 {
		t.Errorf("report = %+v", rep)
	}
	if len(sink.frames) != 0 {
		t.Error("busy sink received a frame")
	}
	if f.Len() != 0 {
		t.Error("frame not discarded")
	}
}

func TestFrameBufferEmitError(t *testing.T) {
	f := NewFrameBuffer(4, nil)
	f.Append(Sample{X: 1})
	boom := errors.New("boom")
	rep := f.Emit(&recordSink{err: boom}, 1000)
	if !errors.Is(rep.Err, boom) || rep.Delivered {
		t.Errorf("report = %+v", rep)
	}
}

func TestFrameBufferDefaultCapacity(t *testing.T) {
	if c := NewFrameBuffer(0, nil).Cap(); c != DefaultFrameCapacity {
		t.Errorf("Cap() = %d", c)
	}
}

// An overrun loses samples but must not confuse the beam state.
func TestOverrunKeepsBeamState(t *testing.T) {
	cfg := DefaultConfig(MaxCoord)
	cfg.Capacity = 8
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordSink{}
	r.SetSink(sink)

	r.RenderLine(vec.Vec2{X: 100}, vec.Vec2{X: 1000}, 255)
	if r.Frame().Overflow() == 0 {
		t.Fatal("expected an overrun")
	}
	if pos := r.Position(); pos != (vec.Vec2{X: 1000}) {
		t.Errorf("Position() = %v", pos)
	}

	rep := r.RenderFrame()
	if rep.Samples != 8 || rep.Lost == 0 {
		t.Errorf("report = %+v", rep)
	}
	st := r.Stats()
	if st.Overruns != 1 || st.LostSamples != uint64(rep.Lost) {
		t.Errorf("stats = %+v", st)
	}

	// the next frame continues without blanking
	r.RenderLine(vec.Vec2{X: 1000}, vec.Vec2{X: 1010}, 255)
	for i, s := range r.Frame().Samples() {
		if !s.Lit() {
			t.Errorf("sample %d is dark", i)
		}
	}
}
