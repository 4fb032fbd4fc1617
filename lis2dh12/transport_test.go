// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
)

func TestCommandBytes(t *testing.T) {
	d, f, _ := newFakeDev(t)
	for a := Register(0); a <= maxAddress; a++ {
		f.clear()
		if _, err := d.readReg(a); err != nil {
			t.Fatal(err)
		}
		var buf [3]byte
		if err := d.readRegs(a, buf[:]); err != nil {
			t.Fatal(err)
		}
		if err := d.writeReg(a, 0x5A); err != nil {
			t.Fatal(err)
		}
		want := []byte{0x80 | byte(a), 0xC0 | byte(a), byte(a)}
		if got := f.commands(); !bytes.Equal(got, want) {
			t.Errorf("%s: commands % x, want % x", a, got, want)
		}
		if n := len(f.ops[1].W); n != 4 {
			t.Errorf("%s: burst frame is %d bytes, want 4", a, n)
		}
	}
}

func TestAddressOutOfRange(t *testing.T) {
	d, f, cs := newFakeDev(t)
	if _, err := d.readReg(0x40); err == nil {
		t.Fatal("expected error")
	}
	if err := d.writeReg(0xFF, 0); err == nil {
		t.Fatal("expected error")
	}
	if f.count != 0 || cs.lows != 0 || cs.highs != 0 {
		t.Errorf("bus touched: tx=%d lows=%d highs=%d", f.count, cs.lows, cs.highs)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	d, _, _ := newFakeDev(t)
	for r, name := range registerNames {
		if name == "" {
			continue
		}
		reg := Register(r)
		for _, v := range []byte{0x00, 0x01, 0x5A, 0xA5, 0xFF} {
			if err := d.writeReg(reg, v); err != nil {
				t.Fatal(err)
			}
			got, err := d.readReg(reg)
			if err != nil {
				t.Fatal(err)
			}
			if got != v {
				t.Errorf("%s: wrote %#02x, read %#02x", reg, v, got)
			}
		}
	}
}

func TestBurstRead(t *testing.T) {
	d, f, _ := newFakeDev(t)
	for i := byte(0); i < 6; i++ {
		f.regs[OutXL+Register(i)] = 0x10 + i
	}
	buf := make([]byte, 6)
	if err := d.readRegs(OutXL, buf); err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x10, 0x11, 0x12, 0x13, 0x14, 0x15}; !bytes.Equal(buf, want) {
		t.Errorf("got % x, want % x", buf, want)
	}
}

func TestBurstReadNoPartialData(t *testing.T) {
	d, f, cs := newFakeDev(t)
	f.regs[OutXL] = 0x42
	f.failAt = 1
	buf := []byte{1, 2, 3, 4, 5, 6}
	err := d.readRegs(OutXL, buf)
	var be *BusError
	if !errors.As(err, &be) {
		t.Fatalf("got %v, want *BusError", err)
	}
	if be.Reg != OutXL || be.Op != "burst read" {
		t.Errorf("unexpected error detail %+v", be)
	}
	if !errors.Is(err, errInjected) {
		t.Errorf("%v does not wrap the transfer error", err)
	}
	if want := []byte{1, 2, 3, 4, 5, 6}; !bytes.Equal(buf, want) {
		t.Errorf("buffer modified on failure: % x", buf)
	}
	if cs.lows != 1 || cs.highs != 1 || cs.Read() != gpio.High {
		t.Errorf("chip select lows=%d highs=%d level=%s", cs.lows, cs.highs, cs.Read())
	}
}

func TestModifyReg(t *testing.T) {
	d, f, _ := newFakeDev(t)
	f.regs[CtrlReg1] = 0b1010_0101
	if err := d.updateField(CtrlReg1, 0xF0, 0x30); err != nil {
		t.Fatal(err)
	}
	if got := f.regs[CtrlReg1]; got != 0b0011_0101 {
		t.Errorf("updateField: %08b", got)
	}
	if err := d.updateBits(CtrlReg1, 0x0A, true); err != nil {
		t.Fatal(err)
	}
	if got := f.regs[CtrlReg1]; got != 0b0011_1111 {
		t.Errorf("set: %08b", got)
	}
	if err := d.updateBits(CtrlReg1, 0x03, false); err != nil {
		t.Fatal(err)
	}
	if got := f.regs[CtrlReg1]; got != 0b0011_1100 {
		t.Errorf("clear: %08b", got)
	}
	want := []byte{0xA0, 0x20, 0xA0, 0x20, 0xA0, 0x20}
	if got := f.commands(); !bytes.Equal(got, want) {
		t.Errorf("commands % x, want % x", got, want)
	}
}

func TestModifyRegReadFailureSkipsWrite(t *testing.T) {
	d, f, _ := newFakeDev(t)
	f.regs[CtrlReg4] = 0x08
	f.failAt = 1
	called := false
	err := d.modifyReg(CtrlReg4, func(v byte) byte {
		called = true
		return v
	})
	if !errors.Is(err, errInjected) {
		t.Fatalf("got %v", err)
	}
	if called || f.count != 1 {
		t.Errorf("transform called=%t, transfers=%d", called, f.count)
	}
}

func TestChipSelectAssertFailure(t *testing.T) {
	d, f, cs := newFakeDev(t)
	cs.failLow = errInjected
	_, err := d.readReg(WhoAmI)
	var pe *PinError
	if !errors.As(err, &pe) || pe.Level != gpio.Low {
		t.Fatalf("got %v, want *PinError on Low", err)
	}
	if f.count != 0 {
		t.Errorf("transfer attempted with chip select failure")
	}
	if cs.lows != 1 || cs.highs != 1 {
		t.Errorf("lows=%d highs=%d", cs.lows, cs.highs)
	}
}

func TestChipSelectReleaseFailure(t *testing.T) {
	d, f, cs := newFakeDev(t)
	cs.failHigh = errInjected
	_, err := d.readReg(WhoAmI)
	var pe *PinError
	if !errors.As(err, &pe) || pe.Level != gpio.High {
		t.Fatalf("got %v, want *PinError on High", err)
	}
	var be *BusError
	if errors.As(err, &be) {
		t.Errorf("unexpected bus error in %v", err)
	}

	// Both failures are reported when the transfer fails too.
	f.clear()
	f.failAt = 1
	cs.reset()
	_, err = d.readReg(WhoAmI)
	if !errors.As(err, &be) {
		t.Errorf("%v: missing *BusError", err)
	}
	if !errors.As(err, &pe) || pe.Level != gpio.High {
		t.Errorf("%v: missing *PinError", err)
	}
	if cs.lows != 1 || cs.highs != 1 {
		t.Errorf("lows=%d highs=%d", cs.lows, cs.highs)
	}
}

func TestChipSelectReleasedOnPanic(t *testing.T) {
	d, f, cs := newFakeDev(t)
	f.failAt = 1
	f.panics = true
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		_, _ = d.readReg(WhoAmI)
	}()
	if cs.Read() != gpio.High || cs.lows != 1 || cs.highs != 1 {
		t.Errorf("level=%s lows=%d highs=%d", cs.Read(), cs.lows, cs.highs)
	}
}

func TestDebug(t *testing.T) {
	d, f, _ := newFakeDev(t)
	f.regs[WhoAmI] = DeviceID
	var lines []string
	d.EnableDebug(func(format string, args ...interface{}) {
		lines = append(lines, format)
	})
	if _, err := d.DeviceID(); err != nil {
		t.Fatal(err)
	}
	if err := d.SetClickThreshold(1); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Errorf("got %d debug lines, want 2: %q", len(lines), lines)
	}
	d.EnableDebug(nil)
	if _, err := d.DeviceID(); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Errorf("debug still enabled")
	}
}
