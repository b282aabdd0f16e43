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

// Status is the result of a non-blocking device poll.
type Status int

// Possible device states.
const (
	StatusBusy Status = iota
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Flags modify how a DAC plays a frame.
type Flags uint8

const (
	// FlagSingleMode plays the frame once instead of looping it until the
	// next frame arrives.
	FlagSingleMode Flags = 1 << iota

	// FlagDontBlock makes WriteFrame return immediately instead of waiting
	// for the device to accept the data.
	FlagDontBlock
)

// Device is a session with one or more laser DACs.
//
// Implementations are provided by package seehuhn.de/go/laser/dac.
type Device interface {
	// OpenDevices enumerates the attached DACs and returns their number.
	OpenDevices() (int, error)

	// Status polls the device without blocking.
	Status(index int) (Status, error)

	// WriteFrame submits a frame for output.  The samples slice is only
	// valid for the duration of the call.
	WriteFrame(index int, rate uint, flags Flags, samples []Sample) error

	// Name returns the name of the device, for diagnostics.
	Name(index int) (string, error)

	// IsUSB reports whether the device is attached via USB.
	IsUSB(index int) bool

	// FirmwareVersion returns the firmware version of the device.
	FirmwareVersion(index int) int
}

// A Sink receives finished frames.
type Sink interface {
	// Ready reports, without blocking, whether a frame can be accepted.
	Ready() bool

	// Write hands over a frame.  The samples slice is only valid for the
	// duration of the call.
	Write(rate uint, samples []Sample) error
}

// DeviceSink returns a Sink which sends frames to the DAC with the given
// index.  Frames are played once and never block.
func DeviceSink(dev Device, index int) Sink {
	return &deviceSink{dev: dev, index: index}
}

type deviceSink struct {
	dev   Device
	index int
}

func (s *deviceSink) Ready() bool {
	st, err := s.dev.Status(s.index)
	return err == nil && st == StatusReady
}

func (s *deviceSink) Write(rate uint, samples []Sample) error {
	return s.dev.WriteFrame(s.index, rate, FlagSingleMode|FlagDontBlock, samples)
}

// discardSink is used when no device is configured.  It is never ready,
// so every frame is dropped.
type discardSink struct{}

func (discardSink) Ready() bool                { return false }
func (discardSink) Write(uint, []Sample) error { return nil }
