// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis2dh12 controls an ST LIS2DH12 3-axis accelerometer over SPI.
//
// The chip select line is driven by the driver through a gpio.PinOut, so the
// SPI port's own CS can be left unconnected. Every register transaction
// asserts the line once and releases it on every return path.
//
// The full scale range is cached by the driver and used to scale raw counts
// to g. Writing CTRL_REG4 behind the driver's back makes ReadNormalized
// return wrong values.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lis2dh12.pdf
package lis2dh12
