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

// Command laserplay shows the built-in test scenes on a laser projector.
//
// Usage:
//
//	laserplay [flags] [serial-port ...]
//
// Without serial ports, all ports of the system are probed for DACs.
// With -dry-run, frames are rendered into memory instead, and the last
// frame can be saved as a PNG image with -preview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/laser"
	"seehuhn.de/go/laser/dac"
	"seehuhn.de/go/laser/testcases"
	"seehuhn.de/go/laser/trace"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON configuration file")
		dryRun     = flag.Bool("dry-run", false, "render into memory, don't open any DAC")
		preview    = flag.String("preview", "", "with -dry-run, write the last frame to this PNG file")
		fps        = flag.Int("fps", 30, "frames per second")
		hold       = flag.Duration("hold", 3*time.Second, "time each scene is shown")
		category   = flag.String("category", "", "only show scenes of this category")
		baud       = flag.Int("baud", dac.DefaultBaudRate, "serial baud rate")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := run(logger, options{
		configPath: *configPath,
		dryRun:     *dryRun,
		preview:    *preview,
		fps:        *fps,
		hold:       *hold,
		category:   *category,
		baud:       *baud,
		ports:      flag.Args(),
	})
	if err != nil {
		logger.Error("laserplay failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dryRun     bool
	preview    string
	fps        int
	hold       time.Duration
	category   string
	baud       int
	ports      []string
}

func run(logger *slog.Logger, opt options) error {
	if opt.fps <= 0 {
		return fmt.Errorf("invalid frame rate %d", opt.fps)
	}

	cfg := laser.DefaultConfig(laser.MaxCoord)
	if opt.configPath != "" {
		c, err := laser.LoadConfig(opt.configPath)
		if err != nil {
			return err
		}
		cfg = *c
	}
	cfg.Logger = logger

	scenes := selectScenes(opt.category)
	if len(scenes) == 0 {
		return fmt.Errorf("no scenes in category %q", opt.category)
	}

	var dev laser.Device
	var mem *dac.Memory
	if opt.dryRun {
		mem = dac.NewMemory("memory")
		mem.KeepLast(1)
		dev = mem
	} else {
		s, err := dac.NewSerial(dac.SerialOptions{BaudRate: opt.baud}, opt.ports...)
		if err != nil {
			return err
		}
		defer s.Close()
		dev = s
	}

	r, err := laser.New(cfg, dev)
	if err != nil {
		return err
	}
	if _, err := dev.Status(cfg.Device); errors.Is(err, dac.ErrIndexOutOfRange) {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pump := laser.NewPump(dev, cfg.Device, cfg.Capacity, logger)
	r.SetSink(pump)
	done := make(chan error, 1)
	go func() { done <- pump.Run(ctx) }()

	ticker := time.NewTicker(time.Second / time.Duration(opt.fps))
	defer ticker.Stop()
	start := time.Now()
	current := -1

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case now := <-ticker.C:
			i := int(now.Sub(start)/opt.hold) % len(scenes)
			sc := scenes[i]
			if i != current {
				logger.Info("showing scene", "name", sc.name)
				current = i
			}
			drawScene(r, sc.Scene)
			rep := r.RenderFrame()
			if rep.Lost > 0 {
				logger.Debug("frame truncated", "scene", sc.name, "lost", rep.Lost)
			}
		}
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := r.Stats()
	ps := pump.Stats()
	logger.Info("finished",
		"frames", st.Frames,
		"overruns", st.Overruns,
		"submitted", ps.Submitted,
		"superseded", ps.Superseded,
		"delivered", ps.Delivered,
		"busy", ps.Busy,
		"failed", ps.Failed)

	if mem != nil && opt.preview != "" {
		return writePreview(opt.preview, mem)
	}
	return nil
}

type namedScene struct {
	testcases.Scene
	name string
}

func selectScenes(category string) []namedScene {
	var res []namedScene
	for _, cat := range slices.Sorted(maps.Keys(testcases.All)) {
		if category != "" && cat != category {
			continue
		}
		for _, sc := range testcases.All[cat] {
			res = append(res, namedScene{Scene: sc, name: cat + "_" + sc.Name})
		}
	}
	return res
}

// drawScene renders sc so that its drawing area fills the device range.
func drawScene(r *laser.Rasterizer, sc testcases.Scene) {
	s := float64(laser.MaxCoord) / max(sc.Width, sc.Height)
	r.CTM = matrix.Scale(s, s)
	r.Dash = sc.Dash
	r.DashPhase = sc.DashPhase
	r.RenderPath(sc.Outline(), sc.Color)
}

func writePreview(fname string, mem *dac.Memory) error {
	frames := mem.Frames()
	if len(frames) == 0 {
		return errors.New("no frame was delivered")
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := trace.WritePNG(f, frames[len(frames)-1].Samples, 512, 1); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
