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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/laser"
)

// PDFOptions controls the appearance of [WritePDF] output.
type PDFOptions struct {
	// Size is the width and height of the page in PDF points.
	// The default is 512.
	Size float64

	// LineWidth is the width of lit strokes in PDF points.
	// The default is 1.
	LineWidth float64

	// ShowBlank enables drawing of the dark moves as thin dashed lines.
	ShowBlank bool
}

// WritePDF writes a single-page PDF file showing the beam path.
// Lit strokes are drawn in black, with the gray level following the
// intensity of the samples.  Dwell points show up as round dots.
func WritePDF(fileName string, samples []laser.Sample, opt *PDFOptions) error {
	size := 512.0
	lineWidth := 1.0
	showBlank := false
	if opt != nil {
		if opt.Size > 0 {
			size = opt.Size
		}
		if opt.LineWidth > 0 {
			lineWidth = opt.LineWidth
		}
		showBlank = opt.ShowBlank
	}

	paper := &pdf.Rectangle{URx: size, URy: size}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	scale := size / laser.MaxCoord
	page.Transform(matrix.Matrix{scale, 0, 0, scale, 0, 0})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	runs := splitRuns(samples)

	if showBlank {
		page.SetStrokeColor(color.DeviceGray(0.7))
		page.SetLineWidth(0.25 * lineWidth / scale)
		page.SetLineDash([]float64{2 / scale, 2 / scale}, 0)
		drawn := false
		for _, r := range runs {
			if r.lit || len(r.pts) < 2 {
				continue
			}
			page.MoveTo(r.pts[0].X, r.pts[0].Y)
			for _, p := range r.pts[1:] {
				page.LineTo(p.X, p.Y)
			}
			drawn = true
		}
		if drawn {
			page.Stroke()
		}
		page.SetLineDash(nil, 0)
	}

	page.SetLineWidth(lineWidth / scale)
	level := -1
	start := 0
	for i, s := range samples {
		if !s.Lit() {
			continue
		}
		// Consecutive lit samples with the same intensity form one
		// polyline, which starts at the previous sample.
		if int(s.Intensity) != level || i == 0 || !samples[i-1].Lit() {
			if level >= 0 {
				page.Stroke()
			}
			level = int(s.Intensity)
			page.SetStrokeColor(color.DeviceGray(1 - float64(level)/laser.FullPower))
			start = max(i-1, 0)
			p := samples[start].Point()
			page.MoveTo(p.X, p.Y)
			if start == i {
				page.LineTo(p.X, p.Y)
			}
		}
		if i > start {
			p := s.Point()
			page.LineTo(p.X, p.Y)
		}
	}
	if level >= 0 {
		page.Stroke()
	}

	return page.Close()
}
