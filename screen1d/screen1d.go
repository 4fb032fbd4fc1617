// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1d draws acceleration readings on a terminal (stdout) as
// one row of ANSI colored blocks per axis.
//
// Useful to eyeball an accelerometer's orientation and noise without a
// plotting tool.
package screen1d

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/accel/lis2dh12"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this display.
type Opts struct {
	// X is the number of blocks per axis. It is rounded up to an odd number
	// so 0g sits on the middle block.
	X int
	// FullScale is the acceleration in g drawn at either end of a bar.
	FullScale float32
	Palette   *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Dev renders acceleration vectors to the console.
type Dev struct {
	w       io.Writer
	l       int
	scale   float32
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.X < 1 {
		return nil, errors.New("screen1d: X must be positive")
	}
	if opts.FullScale <= 0 {
		return nil, errors.New("screen1d: FullScale must be positive")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	l := opts.X
	if l%2 == 0 {
		l++
	}
	return &Dev{w: w, l: l, scale: opts.FullScale, palette: *p}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen1D{%d, ±%gg}", d.l, d.scale)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the prompt is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Show redraws the line with v, X then Y then Z.
func (d *Dev) Show(v lis2dh12.Vector) error {
	// Minimize memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i, g := range [...]float32{v.X, v.Y, v.Z} {
		if i != 0 {
			_, _ = d.buf.WriteString("\033[0m ")
		}
		d.bar(g)
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[0m %s ", v)
	_, err := d.buf.WriteTo(d.w)
	return err
}

// bar appends one axis. Blocks between the middle and the value are lit,
// red for positive values and blue for negative ones.
func (d *Dev) bar(g float32) {
	mid := d.l / 2
	pos := mid + int(g/d.scale*float32(mid))
	if pos < 0 {
		pos = 0
	} else if pos >= d.l {
		pos = d.l - 1
	}
	for i := 0; i < d.l; i++ {
		c := color.NRGBA{A: 255}
		switch {
		case i == mid:
			c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		case i > mid && i <= pos:
			c.R = intensity(i-mid, mid)
		case i < mid && i >= pos:
			c.B = intensity(mid-i, mid)
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
}

// intensity brightens blocks further from the middle.
func intensity(n, half int) byte {
	if half == 0 {
		return 255
	}
	return byte(95 + 160*n/half)
}

var _ fmt.Stringer = &Dev{}
