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
	"slices"
	"sync"

	"seehuhn.de/go/laser"
)

// Frame is a frame recorded by a Memory device.
type Frame struct {
	Index   int
	Rate    uint
	Flags   laser.Flags
	Samples []laser.Sample
}

// Memory is a laser.Device which records all frames in memory.  It is
// useful for tests and for running without projector hardware.
//
// Memory is safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	names    []string
	busy     bool
	writeErr error
	polls    int
	frames   []Frame
	keep     int
}

// NewMemory returns an in-memory device session with one DAC for every
// name given.  Without names, a single DAC called "memory" is created.
func NewMemory(names ...string) *Memory {
	if len(names) == 0 {
		names = []string{"memory"}
	}
	return &Memory{names: names}
}

// SetBusy makes all DACs report StatusBusy (or StatusReady, if busy is false).
func (m *Memory) SetBusy(busy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = busy
}

// SetWriteError makes WriteFrame fail with err.  Pass nil to restore
// normal operation.
func (m *Memory) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// KeepLast limits the number of recorded frames to the n most recent ones.
// Zero means no limit.
func (m *Memory) KeepLast(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keep = n
	m.trim()
}

// Frames returns the recorded frames, oldest first.
func (m *Memory) Frames() []Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.frames)
}

// Polls returns the number of calls to Status.
func (m *Memory) Polls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.polls
}

// OpenDevices implements laser.Device.
func (m *Memory) OpenDevices() (int, error) {
	return len(m.names), nil
}

// Status implements laser.Device.
func (m *Memory) Status(index int) (laser.Status, error) {
	if err := m.check(index); err != nil {
		return laser.StatusBusy, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls++
	if m.busy {
		return laser.StatusBusy, nil
	}
	return laser.StatusReady, nil
}

// WriteFrame implements laser.Device.  The samples are copied.
func (m *Memory) WriteFrame(index int, rate uint, flags laser.Flags, samples []laser.Sample) error {
	if err := m.check(index); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.frames = append(m.frames, Frame{
		Index:   index,
		Rate:    rate,
		Flags:   flags,
		Samples: slices.Clone(samples),
	})
	m.trim()
	return nil
}

// Name implements laser.Device.
func (m *Memory) Name(index int) (string, error) {
	if err := m.check(index); err != nil {
		return "", err
	}
	return m.names[index], nil
}

// IsUSB implements laser.Device.  Memory devices are not USB devices.
func (m *Memory) IsUSB(int) bool {
	return false
}

// FirmwareVersion implements laser.Device.
func (m *Memory) FirmwareVersion(int) int {
	return 0
}

func (m *Memory) check(index int) error {
	if index < 0 || index >= len(m.names) {
		return indexError(index, len(m.names))
	}
	return nil
}

// trim drops old frames beyond the KeepLast limit.  m.mu must be held.
func (m *Memory) trim() {
	if m.keep > 0 && len(m.frames) > m.keep {
		m.frames = slices.Delete(m.frames, 0, len(m.frames)-m.keep)
	}
}
