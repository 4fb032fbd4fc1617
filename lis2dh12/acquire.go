// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// RawVector is an unscaled, left aligned sample.
type RawVector struct {
	X, Y, Z int16
}

func (v RawVector) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", v.X, v.Y, v.Z)
}

// Vector is an acceleration in g.
type Vector struct {
	X, Y, Z float32
}

func (v Vector) String() string {
	return fmt.Sprintf("X:%.3fg Y:%.3fg Z:%.3fg", v.X, v.Y, v.Z)
}

// Force converts each axis to physic.Force per unit of mass, 1g being
// physic.EarthGravity.
func (v Vector) Force() (x, y, z physic.Force) {
	return toForce(v.X), toForce(v.Y), toForce(v.Z)
}

func toForce(g float32) physic.Force {
	return physic.Force(float64(g) * float64(physic.EarthGravity))
}

// CheckWhoAmI returns a *WhoAmIError when WHO_AM_I is not DeviceID.
func (d *Dev) CheckWhoAmI() error {
	id, err := d.DeviceID()
	if err != nil {
		return err
	}
	if id != DeviceID {
		return &WhoAmIError{ID: id}
	}
	return nil
}

// DeviceID reads WHO_AM_I.
func (d *Dev) DeviceID() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readReg(WhoAmI)
}

// ReadReference reads REFERENCE, the high-pass filter reference value.
// Reading it also resets the filter.
func (d *Dev) ReadReference() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readReg(Reference)
}

// ReadInt1Source reads INT1_SRC. It clears a latched interrupt.
func (d *Dev) ReadInt1Source() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readReg(Int1Src)
}

// ReadClickSource reads CLICK_SRC.
func (d *Dev) ReadClickSource() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readReg(ClickSrc)
}

// ReadStatus reads and decodes STATUS_REG.
func (d *Dev) ReadStatus() (Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readReg(StatusReg)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(v), nil
}

// ReadRaw reads OUT_X_L through OUT_Z_H in one burst.
func (d *Dev) ReadRaw() (RawVector, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRaw()
}

func (d *Dev) readRaw() (RawVector, error) {
	var buf [6]byte
	if err := d.readRegs(OutXL, buf[:]); err != nil {
		return RawVector{}, err
	}
	return RawVector{
		X: int16(binary.LittleEndian.Uint16(buf[0:])),
		Y: int16(binary.LittleEndian.Uint16(buf[2:])),
		Z: int16(binary.LittleEndian.Uint16(buf[4:])),
	}, nil
}

// ReadNormalized reads a sample and scales it to g using the cached range.
//
// The data is left aligned whatever the mode, so the low 4 bits are dropped
// and the 12 bit sensitivity applies.
func (d *Dev) ReadNormalized() (Vector, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	raw, err := d.readRaw()
	if err != nil {
		return Vector{}, err
	}
	s := d.rng.sensitivity()
	return Vector{
		X: float32(raw.X>>4) * s,
		Y: float32(raw.Y>>4) * s,
		Z: float32(raw.Z>>4) * s,
	}, nil
}

// ReadTemperatureRaw reads OUT_TEMP_L and OUT_TEMP_H in one burst.
func (d *Dev) ReadTemperatureRaw() (high int8, low byte, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readTemperatureRaw()
}

func (d *Dev) readTemperatureRaw() (int8, byte, error) {
	var buf [2]byte
	if err := d.readRegs(OutTempL, buf[:]); err != nil {
		return 0, 0, err
	}
	return int8(buf[1]), buf[0], nil
}

// ReadTemperature returns the temperature in °C. The sensor only reports
// changes relative to 25°C, so the absolute value is not calibrated.
//
// EnableTemperature(true) must have been called.
func (d *Dev) ReadTemperature() (float32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	hi, lo, err := d.readTemperatureRaw()
	if err != nil {
		return 0, err
	}
	return temperatureCelsius(hi, lo), nil
}

// temperatureCelsius decodes the 10 bit left aligned two's complement value,
// 0.25°C per count around 25°C.
func temperatureCelsius(hi int8, lo byte) float32 {
	v := (int16(hi)<<8 | int16(lo)) >> 6
	return float32(v)*0.25 + 25
}

// Sense reads the temperature into env.Temperature.
func (d *Dev) Sense(env *physic.Env) error {
	c, err := d.ReadTemperature()
	if err != nil {
		return err
	}
	env.Temperature = physic.ZeroCelsius + physic.Temperature(float64(c)*float64(physic.Celsius))
	return nil
}

// SenseForce reads a sample and returns it as physic.Force per axis.
func (d *Dev) SenseForce() (x, y, z physic.Force, err error) {
	v, err := d.ReadNormalized()
	if err != nil {
		return 0, 0, 0, err
	}
	x, y, z = v.Force()
	return x, y, z, nil
}
