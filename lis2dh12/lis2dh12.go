// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI settings used by New. The LIS2DH12 supports up to 10MHz in mode 3.
var (
	SPIFrequency = 5 * physic.MegaHertz
	SPIMode      = spi.Mode3
	SPIBits      = 8
)

// DebugF is the debug function type.
type DebugF func(string, ...interface{})

// Opts holds the configuration applied by New.
type Opts struct {
	DataRate DataRate
	Range    Range
	Mode     Mode
	Axes     Axes
	// Temperature enables the temperature sensor, which also turns on block
	// data update.
	Temperature bool
}

// DefaultOpts is 100Hz, ±2g, high resolution on all axes.
var DefaultOpts = Opts{
	DataRate:    Rate100Hz,
	Range:       Range2G,
	Mode:        HighResolution,
	Axes:        AllAxes,
	Temperature: true,
}

// Reading is a sample delivered by SenseContinuous.
type Reading struct {
	Time  time.Time
	Accel Vector
}

// Dev is a handle to a LIS2DH12.
//
// Every method takes an internal lock for the whole register sequence it
// runs, so a Dev may be shared between goroutines.
type Dev struct {
	mu    sync.Mutex
	c     spi.Conn
	cs    gpio.PinOut
	rng   Range
	debug DebugF
	// stop and done belong to the running SenseContinuous loop, if any.
	stop  chan struct{}
	done  chan struct{}
}

// NewConn returns a Dev on an already connected SPI conn, using cs as chip
// select. cs is driven high. No other bus traffic happens and the cached
// range is ±2g, the power on default.
func NewConn(c spi.Conn, cs gpio.PinOut) (*Dev, error) {
	if err := cs.Out(gpio.High); err != nil {
		return nil, &PinError{Level: gpio.High, Err: err}
	}
	return &Dev{c: c, cs: cs, rng: Range2G, debug: noop}, nil
}

// New connects to p, verifies WHO_AM_I and applies opts. If opts is nil,
// DefaultOpts is used.
func New(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	c, err := p.Connect(SPIFrequency, SPIMode, SPIBits)
	if err != nil {
		return nil, fmt.Errorf("lis2dh12: %w", err)
	}
	d, err := NewConn(c, cs)
	if err != nil {
		return nil, err
	}
	if err := d.CheckWhoAmI(); err != nil {
		return nil, err
	}
	if err := d.SetDataRate(opts.DataRate); err != nil {
		return nil, err
	}
	if err := d.EnableAxes(opts.Axes); err != nil {
		return nil, err
	}
	if err := d.SetRange(opts.Range); err != nil {
		return nil, err
	}
	if err := d.SetMode(opts.Mode); err != nil {
		return nil, err
	}
	if opts.Temperature {
		if err := d.EnableTemperature(true); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fmt.Sprintf("LIS2DH12{Range:%s}", d.rng)
}

// EnableDebug sets a function receiving every register access.
func (d *Dev) EnableDebug(f DebugF) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f == nil {
		f = noop
	}
	d.debug = f
}

// Range returns the cached full scale range.
func (d *Dev) Range() Range {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng
}

// SenseContinuous samples the acceleration every interval until Halt or
// Release is called. Failed reads are skipped. The channel is closed when the
// sampling stops.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan Reading, error) {
	if interval <= 0 {
		return nil, errors.New("lis2dh12: invalid interval")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.c == nil {
		return nil, ErrReleased
	}
	if d.stop != nil {
		return nil, errors.New("lis2dh12: already sensing continuously")
	}
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	ch := make(chan Reading, 16)
	go d.senseLoop(interval, ch, d.stop, d.done)
	return ch, nil
}

func (d *Dev) senseLoop(interval time.Duration, ch chan<- Reading, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer close(ch)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-t.C:
			v, err := d.ReadNormalized()
			if err != nil {
				continue
			}
			select {
			case ch <- Reading{Time: now, Accel: v}:
			case <-stop:
				return
			default:
			}
		}
	}
}

// Halt stops SenseContinuous and puts the device in power down.
//
// Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop, done := d.takeLoop()
	d.mu.Unlock()
	waitLoop(stop, done)
	return d.SetDataRate(PowerDown)
}

// Release stops SenseContinuous and returns the SPI conn and chip select pin
// to the caller. The Dev cannot be used afterward.
func (d *Dev) Release() (spi.Conn, gpio.PinOut) {
	d.mu.Lock()
	stop, done := d.takeLoop()
	c, cs := d.c, d.cs
	d.c, d.cs = nil, nil
	d.mu.Unlock()
	waitLoop(stop, done)
	return c, cs
}

// takeLoop detaches the running loop from d. d.mu must be held.
func (d *Dev) takeLoop() (stop, done chan struct{}) {
	stop, done = d.stop, d.done
	d.stop, d.done = nil, nil
	return stop, done
}

// waitLoop stops a loop returned by takeLoop and waits for it to exit.
// d.mu must not be held since the loop takes it to read samples.
func waitLoop(stop, done chan struct{}) {
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func noop(string, ...interface{}) {}

var _ conn.Resource = &Dev{}
