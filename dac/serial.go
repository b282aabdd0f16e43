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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.bug.st/serial"

	"seehuhn.de/go/laser"
)

// Command bytes of the serial protocol.
const (
	cmdStatus   = 'S'
	cmdIdentify = 'I'
	cmdFrame    = 'F'
)

// frameHeaderSize is the size of the header of a frame message:
// command, rate (uint32), flags, sample count (uint32).
const frameHeaderSize = 1 + 4 + 1 + 4

// sampleSize is the encoded size of one sample: x, y (uint16) and the
// r, g, b, intensity channels.
const sampleSize = 2 + 2 + 4

// Port is the part of a serial port used by Serial.
// The ports returned by go.bug.st/serial implement this interface.
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
	ResetInputBuffer() error
}

// Opener opens the serial port at path.
type Opener func(path string, mode *serial.Mode) (Port, error)

func openSerial(path string, mode *serial.Mode) (Port, error) {
	return serial.Open(path, mode)
}

// Serial is a laser.Device for DACs attached to serial ports.
//
// All values are little endian.  The host sends single-byte commands:
//
//   - 'S' polls the DAC; the reply is one byte, 1 if the DAC can accept a
//     frame and 0 otherwise.
//   - 'I' asks for identification; the reply is the firmware version
//     (uint16), the length of the name (uint8) and the name.
//   - 'F' is followed by the sample rate (uint32), the flags (uint8), the
//     number of samples (uint32) and the samples.  Each sample is x, y
//     (uint16) and the red, green, blue and intensity channels (uint8).
//     There is no reply.
//
// Frames written with laser.FlagDontBlock are sent by a background
// goroutine.  While such a frame is on the line, Status reports
// laser.StatusBusy without talking to the DAC, and a further non-blocking
// WriteFrame fails with ErrBusy.  An error from a background write is
// returned by the next call to Status.
//
// Serial is safe for concurrent use.
type Serial struct {
	// Paths lists the serial ports to use.  If empty, OpenDevices uses all
	// serial ports of the system.
	Paths []string

	// Options are the serial line parameters.
	Options SerialOptions

	// Open is used to open ports.  Nil means go.bug.st/serial.
	Open Opener

	mu      sync.Mutex
	devices []*serialDevice
}

type serialDevice struct {
	path     string
	port     Port
	name     string
	firmware int
	idErr    error

	buf     []byte // owned by the writer goroutine while writing is set
	writing atomic.Bool
	wg      sync.WaitGroup

	errMu    sync.Mutex
	writeErr error
}

// NewSerial returns a device session for the DACs attached to the given
// serial ports.  Without paths, all serial ports of the system are tried.
func NewSerial(opts SerialOptions, paths ...string) (*Serial, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	return &Serial{Paths: paths, Options: opts}, nil
}

// OpenDevices implements laser.Device.  Ports which are already open are
// closed first.  Ports which cannot be opened are skipped.
func (s *Serial) OpenDevices() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()

	opts, err := s.Options.Normalize()
	if err != nil {
		return 0, err
	}
	mode, err := opts.SerialMode()
	if err != nil {
		return 0, err
	}
	timeout := opts.ReadTimeout()

	paths := s.Paths
	if len(paths) == 0 {
		paths, err = serial.GetPortsList()
		if err != nil {
			return 0, fmt.Errorf("listing serial ports: %w", err)
		}
	}

	open := s.Open
	if open == nil {
		open = openSerial
	}

	var errs []error
	for _, path := range paths {
		port, err := open(path, mode)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if err := port.SetReadTimeout(timeout); err != nil {
			port.Close()
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		d := &serialDevice{path: path, port: port}
		d.identify()
		s.devices = append(s.devices, d)
	}

	if len(s.devices) == 0 {
		errs = append(errs, ErrNoDevice)
		return 0, errors.Join(errs...)
	}
	return len(s.devices), nil
}

// Close closes all open ports.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Serial) closeLocked() error {
	var errs []error
	for _, d := range s.devices {
		d.wg.Wait()
		if err := d.port.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.devices = nil
	return errors.Join(errs...)
}

func (s *Serial) device(index int) (*serialDevice, error) {
	if index < 0 || index >= len(s.devices) {
		return nil, indexError(index, len(s.devices))
	}
	return s.devices[index], nil
}

// Status implements laser.Device.
func (s *Serial) Status(index int) (laser.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.device(index)
	if err != nil {
		return laser.StatusBusy, err
	}
	if d.writing.Load() {
		return laser.StatusBusy, nil
	}
	if err := d.takeWriteErr(); err != nil {
		return laser.StatusBusy, fmt.Errorf("%s: %w", d.path, err)
	}
	// drop replies which arrived after an earlier timeout
	if err := d.port.ResetInputBuffer(); err != nil {
		return laser.StatusBusy, err
	}
	if _, err := d.port.Write([]byte{cmdStatus}); err != nil {
		return laser.StatusBusy, err
	}
	var reply [1]byte
	if err := readFull(d.port, reply[:]); err != nil {
		return laser.StatusBusy, err
	}
	if reply[0] == 1 {
		return laser.StatusReady, nil
	}
	return laser.StatusBusy, nil
}

// WriteFrame implements laser.Device.  With laser.FlagDontBlock, the frame
// is encoded and queued for a background goroutine, and WriteFrame returns
// without waiting for the transfer.  Otherwise any background transfer is
// allowed to finish and the frame is written before WriteFrame returns.
func (s *Serial) WriteFrame(index int, rate uint, flags laser.Flags, samples []laser.Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.device(index)
	if err != nil {
		return err
	}

	async := flags&laser.FlagDontBlock != 0
	if async && d.writing.Load() {
		return fmt.Errorf("%s: %w", d.path, ErrBusy)
	}
	d.wg.Wait()

	d.buf = appendFrame(d.buf[:0], rate, flags, samples)
	if !async {
		_, err = d.port.Write(d.buf)
		return err
	}

	d.writing.Store(true)
	d.wg.Add(1)
	go d.send(d.buf)
	return nil
}

// send writes one encoded frame in the background.
func (d *serialDevice) send(buf []byte) {
	defer d.wg.Done()
	if _, err := d.port.Write(buf); err != nil {
		d.errMu.Lock()
		d.writeErr = err
		d.errMu.Unlock()
	}
	d.writing.Store(false)
}

// takeWriteErr returns and clears the error of the last background write.
func (d *serialDevice) takeWriteErr() error {
	d.errMu.Lock()
	defer d.errMu.Unlock()
	err := d.writeErr
	d.writeErr = nil
	return err
}

// Name implements laser.Device.
func (s *Serial) Name(index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.device(index)
	if err != nil {
		return "", err
	}
	if d.idErr != nil {
		return "", fmt.Errorf("%s: %w", d.path, d.idErr)
	}
	return d.name, nil
}

// IsUSB implements laser.Device.  Serial DACs are reported as USB devices,
// since in practice serial ports are USB adapters.
func (s *Serial) IsUSB(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.device(index)
	return err == nil
}

// FirmwareVersion implements laser.Device.
func (s *Serial) FirmwareVersion(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.device(index)
	if err != nil {
		return 0
	}
	return d.firmware
}

// identify asks the DAC for its name and firmware version.
func (d *serialDevice) identify() {
	if err := d.port.ResetInputBuffer(); err != nil {
		d.idErr = err
		return
	}
	if _, err := d.port.Write([]byte{cmdIdentify}); err != nil {
		d.idErr = err
		return
	}
	var head [3]byte
	if err := readFull(d.port, head[:]); err != nil {
		d.idErr = err
		return
	}
	name := make([]byte, head[2])
	if err := readFull(d.port, name); err != nil {
		d.idErr = err
		return
	}
	d.firmware = int(binary.LittleEndian.Uint16(head[:2]))
	d.name = string(name)
}

// appendFrame appends the encoding of a frame message to buf.
func appendFrame(buf []byte, rate uint, flags laser.Flags, samples []laser.Sample) []byte {
	buf = slices.Grow(buf, frameHeaderSize+len(samples)*sampleSize)
	buf = append(buf, cmdFrame)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(rate))
	buf = append(buf, byte(flags))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(samples)))
	for _, s := range samples {
		r, g, b := s.RGB()
		buf = binary.LittleEndian.AppendUint16(buf, s.X)
		buf = binary.LittleEndian.AppendUint16(buf, s.Y)
		buf = append(buf, r, g, b, s.Intensity)
	}
	return buf
}

// readFull reads exactly len(buf) bytes.  The serial ports of
// go.bug.st/serial return (0, nil) when the read timeout expires; this is
// reported as ErrTimeout.
func readFull(r io.Reader, buf []byte) error {
	for n := 0; n < len(buf); {
		k, err := r.Read(buf[n:])
		if err != nil {
			return err
		}
		if k == 0 {
			return ErrTimeout
		}
		n += k
	}
	return nil
}
