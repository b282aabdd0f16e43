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

package dac

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

// Errors returned by the devices in this package.
var (
	ErrNoDevice        = errors.New("dac: no device")
	ErrIndexOutOfRange = errors.New("dac: device index out of range")
	ErrTimeout         = errors.New("dac: timeout")
	ErrBusy            = errors.New("dac: frame transfer in progress")
)

func indexError(index, n int) error {
	return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, n)
}

// Default serial parameters for DACs.
const (
	DefaultBaudRate = 921600
	DefaultTimeout  = 10 * time.Millisecond
)

// SerialOptions describes the serial connection parameters used when
// opening a DAC.
type SerialOptions struct {
	BaudRate int    `json:"baud_rate"`
	DataBits int    `json:"data_bits"`
	StopBits int    `json:"stop_bits"`
	Parity   string `json:"parity"`

	// Timeout bounds the wait for a reply from the DAC, as a duration
	// string like "10ms".
	Timeout string `json:"timeout,omitempty"`
}

// Normalize validates the options and applies defaults for any unset values.
func (o SerialOptions) Normalize() (SerialOptions, error) {
	opts := o

	if opts.BaudRate <= 0 {
		opts.BaudRate = DefaultBaudRate
	}

	if opts.DataBits == 0 {
		opts.DataBits = 8
	}
	if opts.DataBits < 5 || opts.DataBits > 8 {
		return opts, fmt.Errorf("invalid data bits %d: must be between 5 and 8", opts.DataBits)
	}

	if opts.StopBits == 0 {
		opts.StopBits = 1
	}
	if opts.StopBits != 1 && opts.StopBits != 2 {
		return opts, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", opts.StopBits)
	}

	parity := strings.TrimSpace(strings.ToUpper(opts.Parity))
	switch parity {
	case "", "N", "NONE":
		parity = "N"
	case "E", "EVEN":
		parity = "E"
	case "O", "ODD":
		parity = "O"
	default:
		return opts, fmt.Errorf("unsupported parity %q: expected N, E, or O", opts.Parity)
	}
	opts.Parity = parity

	if opts.Timeout == "" {
		opts.Timeout = DefaultTimeout.String()
	}
	d, err := time.ParseDuration(opts.Timeout)
	if err != nil {
		return opts, fmt.Errorf("invalid timeout %q: %w", opts.Timeout, err)
	}
	if d <= 0 {
		return opts, fmt.Errorf("invalid timeout %q: must be positive", opts.Timeout)
	}

	return opts, nil
}

// ReadTimeout returns the reply timeout.  The options must be normalized.
func (o SerialOptions) ReadTimeout() time.Duration {
	d, err := time.ParseDuration(o.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// SerialMode converts the options into the serial.Mode structure required
// by go.bug.st/serial.
func (o SerialOptions) SerialMode() (*serial.Mode, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
	}

	switch opts.StopBits {
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		mode.StopBits = serial.OneStopBit
	}

	switch opts.Parity {
	case "E":
		mode.Parity = serial.EvenParity
	case "O":
		mode.Parity = serial.OddParity
	default:
		mode.Parity = serial.NoParity
	}

	return mode, nil
}
