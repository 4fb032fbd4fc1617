// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import (
	"errors"
	"sync"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi"
)

var errInjected = errors.New("injected failure")

// csPin counts chip select transitions and can fail on demand.
type csPin struct {
	gpiotest.Pin
	lows, highs int
	failLow     error
	failHigh    error
}

func (p *csPin) Out(l gpio.Level) error {
	if l == gpio.Low {
		p.lows++
		if p.failLow != nil {
			return p.failLow
		}
	} else {
		p.highs++
		if p.failHigh != nil {
			return p.failHigh
		}
	}
	return p.Pin.Out(l)
}

func (p *csPin) reset() {
	p.lows, p.highs = 0, 0
}

// regFile is a spi.Conn simulating the LIS2DH12 register file. Writes are
// stored and read back, burst reads auto increment the address.
type regFile struct {
	mu     sync.Mutex
	regs   [maxAddress + 1]byte
	cs     *csPin
	ops    []conntest.IO
	count  int
	failAt int // 1-based Tx index to fail, 0 for never
	panics bool
}

func (f *regFile) String() string {
	return "regfile"
}

func (f *regFile) Duplex() conn.Duplex {
	return conn.Full
}

func (f *regFile) TxPackets(p []spi.Packet) error {
	return errors.New("regfile: TxPackets not implemented")
}

func (f *regFile) Tx(w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	if f.cs != nil && f.cs.Read() != gpio.Low {
		return errors.New("regfile: chip select not asserted")
	}
	io := conntest.IO{W: append([]byte(nil), w...)}
	if f.count == f.failAt {
		if f.panics {
			panic(errInjected)
		}
		// Garbage the read buffer like a broken transfer would.
		for i := range r {
			r[i] = 0xEE
		}
		return errInjected
	}
	if len(w) == 0 {
		return errors.New("regfile: empty frame")
	}
	cmd := w[0]
	addr := cmd & maxAddress
	if cmd&cmdRead != 0 {
		if len(r) != len(w) {
			return errors.New("regfile: read buffer length mismatch")
		}
		for i := 1; i < len(r); i++ {
			r[i] = f.regs[addr]
			if cmd&cmdIncrement != 0 {
				addr = (addr + 1) & maxAddress
			}
		}
		io.R = append([]byte(nil), r...)
	} else {
		if len(w) != 2 {
			return errors.New("regfile: write must be 2 bytes")
		}
		f.regs[addr] = w[1]
	}
	f.ops = append(f.ops, io)
	return nil
}

// commands returns the command byte of every successful frame.
func (f *regFile) commands() []byte {
	var out []byte
	for _, io := range f.ops {
		out = append(out, io.W[0])
	}
	return out
}

func (f *regFile) clear() {
	f.ops = nil
	f.count = 0
	f.failAt = 0
}

func newFakeDev(t *testing.T) (*Dev, *regFile, *csPin) {
	t.Helper()
	cs := &csPin{Pin: gpiotest.Pin{N: "CS", Num: 8}}
	f := &regFile{cs: cs}
	f.regs[WhoAmI] = DeviceID
	d, err := NewConn(f, cs)
	if err != nil {
		t.Fatal(err)
	}
	cs.reset()
	return d, f, cs
}
