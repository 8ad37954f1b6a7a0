// This file is part of msp430sim.
//
// msp430sim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// msp430sim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with msp430sim.  If not, see <https://www.gnu.org/licenses/>.

package clock_test

import (
	"testing"

	"github.com/jetsetilly/msp430sim/hardware/simio"
	"github.com/jetsetilly/msp430sim/hardware/simio/clock"
	"github.com/jetsetilly/msp430sim/logger"
	"github.com/jetsetilly/msp430sim/test"
)

const basicInfo = `Clock type: Basic
LFXT1:	    (no connection)
XT2:	    (no connection)
DCO4_3:	    750kHz
Step RSEL:  1.65
Step DCO:   1.12

DCOCTL:	     60
BCSCTL1:     84
BCSCTL2:     00

DCOCLK 750kHz
MCLK   750kHz
SMCLK  750kHz
ACLK   0Hz
ACLK counter:  0
SMCLK counter: 0
`

const basicPlusInfo = `Clock type: Basic+
LFXT1:	    (no connection)
XT2:	    (no connection)
VLO:	    12kHz
DCO7_3:	    1.14MHz
Step RSEL:  1.35
Step DCO:   1.08

DCOCTL:	     60
BCSCTL1:     87
BCSCTL2:     00
BCSCTL3:     03

DCOCLK 1.14MHz
MCLK   1.14MHz
SMCLK  1.14MHz
ACLK   0Hz
ACLK counter:  0
SMCLK counter: 0
`

const basicPlusConfiguredInfo = `Clock type: Basic+
LFXT1:	    32.768kHz
XT2:	    8MHz
VLO:	    (unconfigured)
DCO7_3:	    1.14MHz
Step RSEL:  1.5
Step DCO:   1.08

DCOCTL:	     60
BCSCTL1:     87
BCSCTL2:     08
BCSCTL3:     03

DCOCLK 1.14MHz
MCLK   1.14MHz
SMCLK  8MHz
ACLK   32.768kHz
ACLK counter:  1280
SMCLK counter: 4000000
`

func TestInfo(t *testing.T) {
	w := &test.CompareWriter{}

	clk := clock.NewClock(clock.Basic)
	clk.Info(w)
	if !w.Compare(basicInfo) {
		t.Errorf("unexpected info output:\n%s", w.String())
	}

	w.Clear()
	clk = clock.NewClock(clock.BasicPlus)
	clk.Info(w)
	if !w.Compare(basicPlusInfo) {
		t.Errorf("unexpected info output:\n%s", w.String())
	}

	w.Clear()
	test.ExpectSuccess(t, config(t, clk, "lfxt1", "32768"))
	test.ExpectSuccess(t, config(t, clk, "xt2", "8MHz"))
	test.ExpectSuccess(t, config(t, clk, "vlo", "0"))
	test.ExpectSuccess(t, config(t, clk, "srsel", "1.5"))
	clk.Write(clock.BCSCTL2, 0x08)
	clk.Step(&simio.Clocks{MCLK: 1000})
	clk.Info(w)
	if !w.Compare(basicPlusConfiguredInfo) {
		t.Errorf("unexpected info output:\n%s", w.String())
	}
}

func TestCrystalWarnings(t *testing.T) {
	w := &test.CompareWriter{}

	clk := clock.NewClock(clock.BasicPlus)
	test.ExpectSuccess(t, config(t, clk, "xt2", "5MHz"))

	logger.Clear()
	clk.Write(clock.BCSCTL3, 0x00)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: XT2S: XT2 must be 400kHz ~ 1MHz, but 5MHz\n")

	// the value is written even when there is a problem
	v, _ := clk.Read(clock.BCSCTL3)
	test.ExpectEquality(t, v, 0x00)

	// the crystal is in range for XT2S mode 2
	w.Clear()
	logger.Clear()
	clk.Write(clock.BCSCTL3, 0x80)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	w.Clear()
	logger.Clear()
	clk.Write(clock.BCSCTL3, 0xc0)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: XT2S: Digital input not supported\n")

	// LFXT1 modes with XTS clear
	w.Clear()
	logger.Clear()
	clk.Write(clock.BCSCTL3, 0x90)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: LFXT1S: Reserved mode\nsimio: clock: LFXT1S: Fallback to mode 0\n")

	w.Clear()
	logger.Clear()
	clk.Write(clock.BCSCTL3, 0xb0)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: LFXT1S: Digital input mode\nsimio: clock: LFXT1S: Fallback to mode 0\n")

	w.Clear()
	logger.Clear()
	test.ExpectSuccess(t, config(t, clk, "vlo", "0"))
	clk.Write(clock.BCSCTL3, 0xa0)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: LFXT1S: VLO mode without VLO set\n")

	// LFXT1 modes with XTS set
	w.Clear()
	logger.Clear()
	test.ExpectSuccess(t, config(t, clk, "lfxt1", "32768"))
	clk.Write(clock.BCSCTL1, 0x47)
	clk.Write(clock.BCSCTL3, 0x90)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: LFXT1S: LFXT1 must be 1MHz ~ 3MHz, but 32.768kHz\n")

	w.Clear()
	logger.Clear()
	clk.Write(clock.BCSCTL3, 0xb0)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: LFXT1S: Digital input not supported\n")

	// XTS is taken from BCSCTL1. bit 6 of BCSCTL2 is not XTS and leaves
	// LFXT1 in low frequency mode
	w.Clear()
	logger.Clear()
	clk.Write(clock.BCSCTL1, 0x07)
	clk.Write(clock.BCSCTL2, 0x40)
	clk.Write(clock.BCSCTL3, 0x90)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: LFXT1S: Reserved mode\nsimio: clock: LFXT1S: Fallback to mode 0\n")

	w.Clear()
	logger.Clear()
	clk.Write(clock.BCSCTL3, 0xb0)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "simio: clock: LFXT1S: Digital input mode\nsimio: clock: LFXT1S: Fallback to mode 0\n")

	// an unconnected crystal is never out of range
	w.Clear()
	logger.Clear()
	clk = clock.NewClock(clock.BasicPlus)
	clk.Write(clock.BCSCTL1, 0x47)
	clk.Write(clock.BCSCTL3, 0x00)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}
