// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// ErrReleased is returned by every operation on a Dev after Release.
var ErrReleased = errors.New("lis2dh12: device released")

// BusError is an SPI transfer failure.
type BusError struct {
	Op  string // "read", "burst read" or "write"
	Reg Register
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("lis2dh12: %s %s: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// PinError is a chip select output failure.
type PinError struct {
	Level gpio.Level
	Err   error
}

func (e *PinError) Error() string {
	return fmt.Sprintf("lis2dh12: chip select %s: %v", e.Level, e.Err)
}

func (e *PinError) Unwrap() error {
	return e.Err
}

// WhoAmIError is returned when WHO_AM_I does not hold DeviceID. It usually
// means a wiring problem or another part on the bus.
type WhoAmIError struct {
	ID byte
}

func (e *WhoAmIError) Error() string {
	return fmt.Sprintf("lis2dh12: unexpected WHO_AM_I %#02x, expected %#02x", e.ID, DeviceID)
}
