// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// All the methods in this file expect d.mu to be held.

// tx runs one chip select framed SPI transaction. The first byte of w is the
// command byte, r is either nil or as long as w.
//
// The chip select line is released on every return path, including a panic
// in the underlying connection. A release failure is joined to the transfer
// error, if any.
func (d *Dev) tx(op string, reg Register, w, r []byte) (err error) {
	if d.c == nil {
		return ErrReleased
	}
	if reg > maxAddress {
		return fmt.Errorf("lis2dh12: register address %#02x out of range", byte(reg))
	}
	defer func() {
		if perr := d.cs.Out(gpio.High); perr != nil {
			pe := &PinError{Level: gpio.High, Err: perr}
			if err == nil {
				err = pe
			} else {
				err = errors.Join(err, pe)
			}
		}
	}()
	if perr := d.cs.Out(gpio.Low); perr != nil {
		return &PinError{Level: gpio.Low, Err: perr}
	}
	if terr := d.c.Tx(w, r); terr != nil {
		return &BusError{Op: op, Reg: reg, Err: terr}
	}
	return nil
}

func (d *Dev) readReg(reg Register) (byte, error) {
	var (
		w = [...]byte{cmdRead | byte(reg), 0}
		r [2]byte
	)
	if err := d.tx("read", reg, w[:], r[:]); err != nil {
		return 0, err
	}
	d.debug("read %s = %#02x", reg, r[1])
	return r[1], nil
}

// readRegs fills buf from consecutive registers starting at reg. buf is only
// written when the whole transfer succeeded.
func (d *Dev) readRegs(reg Register, buf []byte) error {
	w := make([]byte, len(buf)+1)
	r := make([]byte, len(w))
	w[0] = cmdRead | cmdIncrement | byte(reg)
	if err := d.tx("burst read", reg, w, r); err != nil {
		return err
	}
	copy(buf, r[1:])
	d.debug("read %s..+%d = % x", reg, len(buf), buf)
	return nil
}

func (d *Dev) writeReg(reg Register, v byte) error {
	d.debug("write %s = %#02x", reg, v)
	w := [...]byte{byte(reg), v}
	return d.tx("write", reg, w[:], nil)
}

// modifyReg is a read then write of reg through f. It is two transactions;
// d.mu keeps other operations from running in between.
func (d *Dev) modifyReg(reg Register, f func(byte) byte) error {
	v, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, f(v))
}

func (d *Dev) setBits(reg Register, bits byte) error {
	return d.modifyReg(reg, func(v byte) byte { return v | bits })
}

func (d *Dev) clearBits(reg Register, bits byte) error {
	return d.modifyReg(reg, func(v byte) byte { return v &^ bits })
}

func (d *Dev) updateBits(reg Register, bits byte, set bool) error {
	if set {
		return d.setBits(reg, bits)
	}
	return d.clearBits(reg, bits)
}

// updateField replaces the bits in mask with value, already shifted in place.
func (d *Dev) updateField(reg Register, mask, value byte) error {
	return d.modifyReg(reg, func(v byte) byte { return v&^mask | value&mask })
}
