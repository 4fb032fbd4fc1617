// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis2dh12

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Register is a LIS2DH12 register address.
type Register byte

// Register map.
const (
	StatusRegAux Register = 0x07
	OutTempL     Register = 0x0C
	OutTempH     Register = 0x0D
	WhoAmI       Register = 0x0F
	CtrlReg0     Register = 0x1E
	TempCfgReg   Register = 0x1F
	CtrlReg1     Register = 0x20
	CtrlReg2     Register = 0x21
	CtrlReg3     Register = 0x22
	CtrlReg4     Register = 0x23
	CtrlReg5     Register = 0x24
	CtrlReg6     Register = 0x25
	Reference    Register = 0x26
	StatusReg    Register = 0x27
	OutXL        Register = 0x28
	OutXH        Register = 0x29
	OutYL        Register = 0x2A
	OutYH        Register = 0x2B
	OutZL        Register = 0x2C
	OutZH        Register = 0x2D
	FifoCtrlReg  Register = 0x2E
	FifoSrcReg   Register = 0x2F
	Int1Cfg      Register = 0x30
	Int1Src      Register = 0x31
	Int1Ths      Register = 0x32
	Int1Duration Register = 0x33
	Int2Cfg      Register = 0x34
	Int2Src      Register = 0x35
	Int2Ths      Register = 0x36
	Int2Duration Register = 0x37
	ClickCfg     Register = 0x38
	ClickSrc     Register = 0x39
	ClickThs     Register = 0x3A
	TimeLimit    Register = 0x3B
	TimeLatency  Register = 0x3C
	TimeWindow   Register = 0x3D
	ActThs       Register = 0x3E
	ActDur       Register = 0x3F
)

// maxAddress is the highest address the 6 bit address field can carry.
const maxAddress = 0x3F

var registerNames = [maxAddress + 1]string{
	StatusRegAux: "STATUS_REG_AUX",
	OutTempL:     "OUT_TEMP_L",
	OutTempH:     "OUT_TEMP_H",
	WhoAmI:       "WHO_AM_I",
	CtrlReg0:     "CTRL_REG0",
	TempCfgReg:   "TEMP_CFG_REG",
	CtrlReg1:     "CTRL_REG1",
	CtrlReg2:     "CTRL_REG2",
	CtrlReg3:     "CTRL_REG3",
	CtrlReg4:     "CTRL_REG4",
	CtrlReg5:     "CTRL_REG5",
	CtrlReg6:     "CTRL_REG6",
	Reference:    "REFERENCE",
	StatusReg:    "STATUS_REG",
	OutXL:        "OUT_X_L",
	OutXH:        "OUT_X_H",
	OutYL:        "OUT_Y_L",
	OutYH:        "OUT_Y_H",
	OutZL:        "OUT_Z_L",
	OutZH:        "OUT_Z_H",
	FifoCtrlReg:  "FIFO_CTRL_REG",
	FifoSrcReg:   "FIFO_SRC_REG",
	Int1Cfg:      "INT1_CFG",
	Int1Src:      "INT1_SRC",
	Int1Ths:      "INT1_THS",
	Int1Duration: "INT1_DURATION",
	Int2Cfg:      "INT2_CFG",
	Int2Src:      "INT2_SRC",
	Int2Ths:      "INT2_THS",
	Int2Duration: "INT2_DURATION",
	ClickCfg:     "CLICK_CFG",
	ClickSrc:     "CLICK_SRC",
	ClickThs:     "CLICK_THS",
	TimeLimit:    "TIME_LIMIT",
	TimeLatency:  "TIME_LATENCY",
	TimeWindow:   "TIME_WINDOW",
	ActThs:       "ACT_THS",
	ActDur:       "ACT_DUR",
}

func (r Register) String() string {
	if r <= maxAddress && registerNames[r] != "" {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%#02x)", byte(r))
}

// DeviceID is the content of WHO_AM_I on a LIS2DH12.
const DeviceID byte = 0x33

// Command byte bits.
const (
	cmdRead      byte = 0x80
	cmdIncrement byte = 0x40
)

// CTRL_REG1 (20h)
const (
	odrMask byte = 0xF0
	lpEn    byte = 0x08
	zEn     byte = 0x04
	yEn     byte = 0x02
	xEn     byte = 0x01
)

// CTRL_REG3 (22h)
const i1Click byte = 0x80

// CTRL_REG4 (23h)
const (
	bdu    byte = 0x80
	fsMask byte = 0x30
	hr     byte = 0x08
)

// CTRL_REG5 (24h)
const lirInt1 byte = 0x08

// CTRL_REG6 (25h)
const intPolarity byte = 0x02

// TEMP_CFG_REG (1Fh)
const tempEn byte = 0xC0

// INT1_CFG (30h), INT2_CFG (34h)
const (
	aoi6DMask   byte = 0xC0
	intCfgClick byte = 0x3F
)

// INT1_THS (32h), INT1_DURATION (33h), CLICK_THS (3Ah)
const thsMask byte = 0x7F

// CLICK_CFG (38h)
const (
	zd byte = 0x20
	zs byte = 0x10
	yd byte = 0x08
	ys byte = 0x04
	xd byte = 0x02
	xs byte = 0x01
)

// STATUS_REG (27h)
const (
	zyxOR byte = 0x80
	zOR   byte = 0x40
	yOR   byte = 0x20
	xOR   byte = 0x10
	zyxDA byte = 0x08
	zDA   byte = 0x04
	yDA   byte = 0x02
	xDA   byte = 0x01
)

// DataRate is the output data rate, CTRL_REG1 ODR[3:0].
type DataRate byte

const (
	PowerDown DataRate = 0x0
	Rate1Hz   DataRate = 0x1
	Rate10Hz  DataRate = 0x2
	Rate25Hz  DataRate = 0x3
	Rate50Hz  DataRate = 0x4
	Rate100Hz DataRate = 0x5
	Rate200Hz DataRate = 0x6
	Rate400Hz DataRate = 0x7
	// RateLowPower1620Hz is only valid in low-power mode.
	RateLowPower1620Hz DataRate = 0x8
	// RateHigh is 1.344kHz in normal and high resolution mode, 5.376kHz in
	// low-power mode.
	RateHigh DataRate = 0x9
)

// Frequency returns the sampling frequency in normal mode. PowerDown is 0.
func (r DataRate) Frequency() physic.Frequency {
	switch r {
	case Rate1Hz:
		return physic.Hertz
	case Rate10Hz:
		return 10 * physic.Hertz
	case Rate25Hz:
		return 25 * physic.Hertz
	case Rate50Hz:
		return 50 * physic.Hertz
	case Rate100Hz:
		return 100 * physic.Hertz
	case Rate200Hz:
		return 200 * physic.Hertz
	case Rate400Hz:
		return 400 * physic.Hertz
	case RateLowPower1620Hz:
		return 1620 * physic.Hertz
	case RateHigh:
		return 1344 * physic.Hertz
	}
	return 0
}

func (r DataRate) String() string {
	if r == PowerDown {
		return "PowerDown"
	}
	if f := r.Frequency(); f != 0 {
		return f.String()
	}
	return fmt.Sprintf("DataRate(%d)", byte(r))
}

// Range is the full scale selection, CTRL_REG4 FS[1:0].
type Range byte

const (
	Range2G  Range = 0x0 // ±2g, power on default
	Range4G  Range = 0x1 // ±4g
	Range8G  Range = 0x2 // ±8g
	Range16G Range = 0x3 // ±16g
)

// sensitivity returns g per LSB of a 12 bit, right aligned count. The ±16g
// step is 12mg and not 8mg, per the datasheet table.
func (r Range) sensitivity() float32 {
	switch r {
	case Range4G:
		return 0.002
	case Range8G:
		return 0.004
	case Range16G:
		return 0.012
	default:
		return 0.001
	}
}

func (r Range) String() string {
	switch r {
	case Range2G:
		return "±2g"
	case Range4G:
		return "±4g"
	case Range8G:
		return "±8g"
	case Range16G:
		return "±16g"
	}
	return fmt.Sprintf("Range(%d)", byte(r))
}

// Mode is the operating mode, a combination of CTRL_REG1 LPen and CTRL_REG4
// HR.
type Mode int

const (
	// Normal is 10 bit output.
	Normal Mode = iota
	// LowPower is 8 bit output.
	LowPower
	// HighResolution is 12 bit output.
	HighResolution
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case LowPower:
		return "LowPower"
	case HighResolution:
		return "HighResolution"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// AOIMode is the INT1_CFG AOI and 6D combination.
type AOIMode byte

const (
	// AOIOr is an OR combination of interrupt events.
	AOIOr AOIMode = 0x0
	// AOIMovement6D is 6-direction movement recognition.
	AOIMovement6D AOIMode = 0x1
	// AOIAnd is an AND combination of interrupt events.
	AOIAnd AOIMode = 0x2
	// AOIPosition6D is 6-direction position recognition.
	AOIPosition6D AOIMode = 0x3
)

// Axes selects a subset of the X, Y and Z axes.
type Axes struct {
	X, Y, Z bool
}

// AllAxes enables X, Y and Z.
var AllAxes = Axes{X: true, Y: true, Z: true}

// bits maps the axes onto the per-axis bits of a register.
func (a Axes) bits(x, y, z byte) byte {
	var v byte
	if a.X {
		v |= x
	}
	if a.Y {
		v |= y
	}
	if a.Z {
		v |= z
	}
	return v
}

// Status is STATUS_REG decoded.
type Status struct {
	// ZYXOverrun is set when new data overwrote unread data on any axis.
	ZYXOverrun bool
	XOverrun   bool
	YOverrun   bool
	ZOverrun   bool
	// ZYXDataReady is set when a new sample is available on all axes.
	ZYXDataReady bool
	XDataReady   bool
	YDataReady   bool
	ZDataReady   bool
}

func decodeStatus(v byte) Status {
	return Status{
		ZYXOverrun:   v&zyxOR != 0,
		XOverrun:     v&xOR != 0,
		YOverrun:     v&yOR != 0,
		ZOverrun:     v&zOR != 0,
		ZYXDataReady: v&zyxDA != 0,
		XDataReady:   v&xDA != 0,
		YDataReady:   v&yDA != 0,
		ZDataReady:   v&zDA != 0,
	}
}
