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

// Command export renders all test scenes and writes the resulting sample
// streams to testdata/scenes.json, for use by other implementations.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/laser"
	"seehuhn.de/go/laser/dac"
	"seehuhn.de/go/laser/testcases"
	"seehuhn.de/go/laser/trace"
)

func main() {
	var out struct {
		MaxCoord  int         `json:"max_coord"`
		FullPower int         `json:"full_power"`
		Scenes    []jsonScene `json:"scenes"`
	}
	out.MaxCoord = laser.MaxCoord
	out.FullPower = laser.FullPower

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			js, err := toJSON(category, sc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, sc.Name, err))
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name      string        `json:"name"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Color     uint8         `json:"color"`
	Path      []jsonSegment `json:"path"`
	Dash      []float64     `json:"dash,omitempty"`
	DashPhase float64       `json:"dash_phase,omitempty"`
	Summary   trace.Summary `json:"summary"`
	Samples   [][3]int      `json:"samples"` // x, y, intensity
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// toJSON renders a scene into a memory DAC and converts the recorded frame.
func toJSON(category string, sc testcases.Scene) (jsonScene, error) {
	js := jsonScene{
		Name:      category + "_" + sc.Name,
		Width:     sc.Width,
		Height:    sc.Height,
		Color:     sc.Color,
		Path:      pathToJSON(sc.Outline()),
		Dash:      sc.Dash,
		DashPhase: sc.DashPhase,
	}

	mem := dac.NewMemory()
	cfg := laser.Config{Width: sc.Width, Height: sc.Height}
	r, err := laser.New(cfg, mem)
	if err != nil {
		return js, err
	}
	r.Dash = sc.Dash
	r.DashPhase = sc.DashPhase
	r.RenderPath(sc.Outline(), sc.Color)
	if rep := r.RenderFrame(); !rep.Delivered {
		return js, fmt.Errorf("frame not delivered: %+v", rep)
	}

	frames := mem.Frames()
	samples := frames[len(frames)-1].Samples
	js.Summary = trace.Summarize(samples)
	js.Samples = make([][3]int, len(samples))
	for i, s := range samples {
		js.Samples[i] = [3]int{int(s.X), int(s.Y), int(s.Intensity)}
	}
	return js, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
