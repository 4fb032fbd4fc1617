// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import "fmt"

// SetDataRate sets CTRL_REG1 ODR.
//
// Selecting PowerDown also reads REFERENCE, as the datasheet asks, to reset
// the filtering block before the next power up.
func (d *Dev) SetDataRate(r DataRate) error {
	if r > RateHigh {
		return fmt.Errorf("lis2dh12: invalid data rate %d", byte(r))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.updateField(CtrlReg1, odrMask, byte(r)<<4); err != nil {
		return err
	}
	if r == PowerDown {
		_, err := d.readReg(Reference)
		return err
	}
	return nil
}

// SetRange sets CTRL_REG4 FS and the range used by ReadNormalized.
func (d *Dev) SetRange(r Range) error {
	if r > Range16G {
		return fmt.Errorf("lis2dh12: invalid range %d", byte(r))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.updateField(CtrlReg4, fsMask, byte(r)<<4); err != nil {
		return err
	}
	d.rng = r
	return nil
}

// SetMode sets CTRL_REG1 LPen and CTRL_REG4 HR.
//
// The two bits live in different registers and are written one after the
// other; LPen and HR are never both set in between.
func (d *Dev) SetMode(m Mode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch m {
	case LowPower:
		if err := d.clearBits(CtrlReg4, hr); err != nil {
			return err
		}
		return d.setBits(CtrlReg1, lpEn)
	case Normal:
		if err := d.clearBits(CtrlReg1, lpEn); err != nil {
			return err
		}
		return d.clearBits(CtrlReg4, hr)
	case HighResolution:
		if err := d.clearBits(CtrlReg1, lpEn); err != nil {
			return err
		}
		return d.setBits(CtrlReg4, hr)
	}
	return fmt.Errorf("lis2dh12: invalid mode %d", int(m))
}

// EnableAxes sets CTRL_REG1 Xen, Yen and Zen.
func (d *Dev) EnableAxes(a Axes) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateField(CtrlReg1, xEn|yEn|zEn, a.bits(xEn, yEn, zEn))
}

// EnableDoubleClick sets CLICK_CFG XD, YD and ZD.
func (d *Dev) EnableDoubleClick(a Axes) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateField(ClickCfg, xd|yd|zd, a.bits(xd, yd, zd))
}

// EnableSingleClick sets CLICK_CFG XS, YS and ZS.
func (d *Dev) EnableSingleClick(a Axes) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateField(ClickCfg, xs|ys|zs, a.bits(xs, ys, zs))
}

// SetClickThreshold writes CLICK_THS. Only the low 7 bits are used.
func (d *Dev) SetClickThreshold(ths byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeReg(ClickThs, ths&thsMask)
}

// SetInt1Mode sets INT1_CFG AOI and 6D.
func (d *Dev) SetInt1Mode(m AOIMode) error {
	if m > AOIPosition6D {
		return fmt.Errorf("lis2dh12: invalid AOI mode %d", byte(m))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateField(Int1Cfg, aoi6DMask, byte(m)<<6)
}

// EnableInt1Click sets or clears all the INT1_CFG event enable bits.
func (d *Dev) EnableInt1Click(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(Int1Cfg, intCfgClick, enable)
}

// EnableInt1ClickPin routes the click interrupt to the INT1 pin,
// CTRL_REG3 I1_CLICK.
func (d *Dev) EnableInt1ClickPin(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(CtrlReg3, i1Click, enable)
}

// LatchInt1 latches the interrupt request on INT1_SRC until INT1_SRC is
// read, CTRL_REG5 LIR_INT1.
func (d *Dev) LatchInt1(latch bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(CtrlReg5, lirInt1, latch)
}

// SetIntPolarity sets the INT1 and INT2 pins active low when activeLow is
// true, CTRL_REG6 INT_POLARITY.
func (d *Dev) SetIntPolarity(activeLow bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(CtrlReg6, intPolarity, activeLow)
}

// SetInt1Threshold writes INT1_THS. Only the low 7 bits are used; one LSB is
// 16mg at ±2g, 32mg at ±4g, 62mg at ±8g and 186mg at ±16g.
func (d *Dev) SetInt1Threshold(ths byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeReg(Int1Ths, ths&thsMask)
}

// SetInt1Duration writes INT1_DURATION in 1/ODR steps. Only the low 7 bits
// are used.
func (d *Dev) SetInt1Duration(dur byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeReg(Int1Duration, dur&thsMask)
}

// SetBlockDataUpdate sets CTRL_REG4 BDU. When set, the output registers are
// not updated until both bytes of a sample have been read.
func (d *Dev) SetBlockDataUpdate(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(CtrlReg4, bdu, enable)
}

// EnableTemperature sets TEMP_CFG_REG TEMP_EN.
//
// Enabling also turns on block data update, which temperature reads need.
// Disabling leaves block data update untouched.
func (d *Dev) EnableTemperature(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.updateBits(TempCfgReg, tempEn, enable); err != nil {
		return err
	}
	if enable {
		return d.setBits(CtrlReg4, bdu)
	}
	return nil
}
