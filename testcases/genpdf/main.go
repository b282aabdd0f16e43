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

// Command genpdf draws the beam path of every test scene.
// For each scene, a PDF showing lit strokes and blank moves and a PNG
// preview of the lit strokes are written to testdata/trace.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/laser"
	"seehuhn.de/go/laser/testcases"
	"seehuhn.de/go/laser/trace"
)

const traceDir = "testdata/trace"

// pngSize is the side length of the preview images in pixels.
const pngSize = 256

func main() {
	if err := os.MkdirAll(traceDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(traceDir, name+".pdf")
			pngPath := filepath.Join(traceDir, name+".png")

			samples, err := render(sc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			opt := &trace.PDFOptions{ShowBlank: true}
			if err := trace.WritePDF(pdfPath, samples, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(pngPath, samples); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// render draws the scene and returns the samples of the frame.
func render(sc testcases.Scene) ([]laser.Sample, error) {
	r, err := laser.New(laser.Config{Width: sc.Width, Height: sc.Height}, nil)
	if err != nil {
		return nil, err
	}
	r.Dash = sc.Dash
	r.DashPhase = sc.DashPhase
	r.RenderPath(sc.Outline(), sc.Color)
	return slices.Clone(r.Frame().Samples()), nil
}

func writePNG(fname string, samples []laser.Sample) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := trace.WritePNG(f, samples, pngSize, 1.5); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
