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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/rect"
)

// Default values for Config fields.
const (
	// DefaultSampleRate allows 400 samples per frame at 50 frames per second.
	DefaultSampleRate = 20000

	// DefaultFlatness is the curve flattening tolerance in device units.
	DefaultFlatness = 0.25

	// DefaultTolerance is the largest gap, in device units along each axis,
	// between two lines which are still drawn without blanking the beam.
	DefaultTolerance = 1.0
)

// Configuration errors.
var (
	ErrInvalidBounds = errors.New("laser: drawing area must have positive size")
	ErrInvalidRate   = errors.New("laser: sample rate out of range")
)

// maxSampleRate is far above the rate of any galvanometer scanner.
const maxSampleRate = 1_000_000

// Config describes a logical drawing area and the output device.
type Config struct {
	// Width and Height give the size of the logical drawing area.  Points
	// are scaled so that the larger side fills the device range.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// SampleRate is the output rate in samples per second.
	// Zero selects DefaultSampleRate.
	SampleRate uint `json:"sample_rate,omitempty"`

	// Capacity is the maximum number of samples per frame.
	// Zero selects DefaultFrameCapacity.
	Capacity int `json:"capacity,omitempty"`

	// Flatness is the curve flattening tolerance in device units.
	// Zero selects DefaultFlatness.
	Flatness float64 `json:"flatness,omitempty"`

	// Tolerance is the largest gap between the end of one line and the
	// start of the next which is drawn without blanking.
	// Zero selects DefaultTolerance.
	Tolerance float64 `json:"tolerance,omitempty"`

	// Device selects the DAC to use, if more than one is attached.
	Device int `json:"device,omitempty"`

	// Logger receives diagnostics.  Nil disables logging.
	Logger *slog.Logger `json:"-"`
}

// DefaultConfig returns a configuration for a square drawing area of the
// given size, with default values for all other fields.
func DefaultConfig(size float64) Config {
	return Config{
		Width:      size,
		Height:     size,
		SampleRate: DefaultSampleRate,
		Capacity:   DefaultFrameCapacity,
		Flatness:   DefaultFlatness,
		Tolerance:  DefaultTolerance,
	}
}

// Bounds returns the logical drawing area.
func (c *Config) Bounds() rect.Rect {
	return rect.Rect{URx: c.Width, URy: c.Height}
}

// Validate checks the configuration and fills in defaults for unset fields.
func (c *Config) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidBounds, c.Width, c.Height)
	}
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: %d", ErrInvalidRate, c.SampleRate)
	}
	if c.Capacity <= 0 {
		c.Capacity = DefaultFrameCapacity
	}
	if !(c.Flatness > 0) {
		c.Flatness = DefaultFlatness
	}
	if !(c.Tolerance > 0) {
		c.Tolerance = DefaultTolerance
	}
	if c.Device < 0 {
		return fmt.Errorf("laser: invalid device index %d", c.Device)
	}
	return nil
}

// LoadConfig reads a configuration from a JSON file.  Fields missing from
// the file take their default values.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 << 20
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
