// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// example streams LIS2DH12 readings to the terminal as colored bars.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/accel/lis2dh12"
	"github.com/GermanBionicSystems/accel/screen1d"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	ranges = map[string]lis2dh12.Range{
		"2": lis2dh12.Range2G, "4": lis2dh12.Range4G, "8": lis2dh12.Range8G, "16": lis2dh12.Range16G,
	}
	fullScale = map[lis2dh12.Range]float32{
		lis2dh12.Range2G: 2, lis2dh12.Range4G: 4, lis2dh12.Range8G: 8, lis2dh12.Range16G: 16,
	}
	rates = map[string]lis2dh12.DataRate{
		"1": lis2dh12.Rate1Hz, "10": lis2dh12.Rate10Hz, "25": lis2dh12.Rate25Hz, "50": lis2dh12.Rate50Hz,
		"100": lis2dh12.Rate100Hz, "200": lis2dh12.Rate200Hz, "400": lis2dh12.Rate400Hz,
		"1344": lis2dh12.RateHigh,
	}
	modes = map[string]lis2dh12.Mode{
		"lp": lis2dh12.LowPower, "normal": lis2dh12.Normal, "hr": lis2dh12.HighResolution,
	}
)

func mainImpl() error {
	spiID := flag.String("spi", "", "SPI port to use")
	csName := flag.String("cs", "GPIO25", "GPIO used as chip select")
	rng := flag.String("range", "2", "full scale range in g: 2, 4, 8 or 16")
	rate := flag.String("rate", "100", "output data rate in Hz: 1, 10, 25, 50, 100, 200, 400 or 1344")
	mode := flag.String("mode", "hr", "operating mode: lp, normal or hr")
	interval := flag.Duration("interval", 50*time.Millisecond, "sampling interval")
	duration := flag.Duration("duration", 0, "stop after this long, 0 runs until interrupted")
	width := flag.Int("width", 21, "blocks per axis")
	verbose := flag.Bool("v", false, "log register accesses")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	opts := lis2dh12.DefaultOpts
	var ok bool
	if opts.Range, ok = ranges[*rng]; !ok {
		return fmt.Errorf("invalid -range %q", *rng)
	}
	if opts.DataRate, ok = rates[*rate]; !ok {
		return fmt.Errorf("invalid -rate %q", *rate)
	}
	if opts.Mode, ok = modes[*mode]; !ok {
		return fmt.Errorf("invalid -mode %q", *mode)
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	p, err := spireg.Open(*spiID)
	if err != nil {
		return err
	}
	defer p.Close()
	cs := gpioreg.ByName(*csName)
	if cs == nil {
		return fmt.Errorf("failed to find %s", *csName)
	}
	d, err := lis2dh12.New(p, cs, &opts)
	if err != nil {
		return err
	}
	if *verbose {
		d.EnableDebug(log.Printf)
	}

	s, err := screen1d.New(&screen1d.Opts{X: *width, FullScale: fullScale[opts.Range]})
	if err != nil {
		return err
	}
	defer s.Halt()

	ch, err := d.SenseContinuous(*interval)
	if err != nil {
		return err
	}
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	var timeout <-chan time.Time
	if *duration > 0 {
		timeout = time.After(*duration)
	}
	go func() {
		select {
		case <-stop:
		case <-timeout:
		}
		if err := d.Halt(); err != nil {
			log.Print(err)
		}
	}()
	for r := range ch {
		if err := s.Show(r.Accel); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "lis2dh12: %s.\n", err)
		os.Exit(1)
	}
}
