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

package trace

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/laser"
)

func lit(x, y uint16) laser.Sample {
	return laser.Sample{X: x, Y: y, Intensity: laser.FullPower}
}

func dark(x, y uint16) laser.Sample {
	return laser.Sample{X: x, Y: y}
}

func TestSummarize(t *testing.T) {
	samples := []laser.Sample{
		dark(0, 0),
		dark(0, 0),
		dark(10, 0),
		lit(10, 0),
		lit(13, 4),
		lit(13, 4),
		dark(13, 4),
	}
	got := Summarize(samples)
	want := Summary{
		Samples:    7,
		Lit:        3,
		Dwell:      4,
		LitLength:  5,
		DarkLength: 10,
		MaxStepOn:  5,
		MaxStepOff: 10,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", d)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v", got)
	}
}

func TestSplitRuns(t *testing.T) {
	samples := []laser.Sample{
		dark(0, 0),
		dark(5, 0),
		lit(5, 0),
		lit(5, 5),
		dark(5, 5),
	}
	got := splitRuns(samples)
	want := []run{
		{lit: false, pts: []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}}},
		{lit: true, pts: []vec.Vec2{{X: 5, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}},
		{lit: false, pts: []vec.Vec2{{X: 5, Y: 5}, {X: 5, Y: 5}}},
	}
	if d := cmp.Diff(want, got, cmp.AllowUnexported(run{})); d != "" {
		t.Errorf("splitRuns mismatch (-want +got):\n%s", d)
	}
}

func TestImage(t *testing.T) {
	const size = 64
	mid := uint16(laser.MaxCoord / 2)

	// a lit horizontal line through the centre, reached by a dark move
	samples := []laser.Sample{dark(0, 0), dark(0, mid)}
	for x := 0; x <= laser.MaxCoord; x += 5 {
		samples = append(samples, lit(uint16(x), mid))
	}

	img := Image(samples, size, 2)

	if got := img.GrayAt(size/2, size/2).Y; got < 0x80 {
		t.Errorf("centre pixel = %d, want lit", got)
	}
	for _, p := range [][2]int{{1, 1}, {size - 2, 1}, {1, size - 2}, {size - 2, size - 2}} {
		if got := img.GrayAt(p[0], p[1]).Y; got != 0 {
			t.Errorf("pixel %v = %d, want 0", p, got)
		}
	}
	// the dark move along the left edge must not be drawn
	if got := img.GrayAt(0, size-size/4).Y; got != 0 {
		t.Errorf("dark move visible: %d", got)
	}
}

func TestImageDot(t *testing.T) {
	const size = 32
	c := uint16(laser.MaxCoord / 2)
	img := Image([]laser.Sample{lit(c, c), lit(c, c)}, size, 4)
	if got := img.GrayAt(size/2, size/2).Y; got == 0 {
		t.Error("dwell point not drawn")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := WritePNG(&buf, []laser.Sample{lit(0, 0), lit(laser.MaxCoord, laser.MaxCoord)}, 16, 1)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("image size %v, want 16x16", b)
	}
}

func TestWritePDF(t *testing.T) {
	samples := []laser.Sample{
		dark(0, 0),
		dark(100, 100),
		lit(100, 100),
		lit(200, 100),
		{X: 300, Y: 100, Intensity: laser.FullPower / 2},
		dark(300, 100),
	}
	fname := filepath.Join(t.TempDir(), "frame.pdf")
	err := WritePDF(fname, samples, &PDFOptions{Size: 100, ShowBlank: true})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}
