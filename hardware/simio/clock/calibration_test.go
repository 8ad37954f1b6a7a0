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

	"github.com/jetsetilly/msp430sim/hardware/simio/clock"
	"github.com/jetsetilly/msp430sim/test"
)

func absDiff(a uint32, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// hz returns the DCO frequency for register values.
func hz(clk *clock.Clock, dcoctl uint8, bcsctl1 uint8, rangeBits int) uint32 {
	return clk.DCOFrequency(int(dcoctl>>5), int(dcoctl&0x1f), int(bcsctl1)&(1<<rangeBits-1))
}

func TestCalibrationSteps(t *testing.T) {
	for _, f := range []clock.Family{clock.Basic, clock.BasicPlus} {
		clk := clock.NewClock(f)
		rangeBits := 3
		if f == clock.BasicPlus {
			rangeBits = 4
		}

		for _, target := range []uint32{0, 1, 32768, 1000000, 8000000, 12000000, 16000000, 0xffffffff} {
			cal := clk.Calibrate(target)
			test.ExpectEquality(t, cal.Steps, 8, f, target)
			test.ExpectEquality(t, len(cal.Trace), 8, f, target)
			test.ExpectEquality(t, cal.Hz, hz(clk, cal.DCOCTL, cal.BCSCTL1, rangeBits), f, target)

			// only the top MOD bits can be set by the search. one on Basic+
			// and two on Basic
			test.ExpectEquality(t, cal.DCOCTL&(1<<rangeBits-1), 0, f, target)

			// the result is no worse than any word evaluated during the search
			for _, w := range cal.Trace {
				v := uint16(w) << rangeBits
				h := hz(clk, uint8(v), uint8(v>>8), rangeBits)
				test.ExpectSuccess(t, absDiff(cal.Hz, target) <= absDiff(h, target), f, target, w)
			}
		}
	}
}

func TestCalibrationBestSeen(t *testing.T) {
	clk := clock.NewClock(clock.BasicPlus)

	// just under the lowest tap of range 8. the search drops back into range
	// 7 and never gets as close again
	f := clk.DCOFrequency(0, 0, 8)
	cal := clk.Calibrate(f - 1)
	test.ExpectEquality(t, cal.DCOCTL, 0x00)
	test.ExpectEquality(t, cal.BCSCTL1, 0x08)
	test.ExpectEquality(t, cal.Hz, f)
	test.ExpectEquality(t, cal.Trace[0], 0x80)
	test.ExpectEquality(t, cal.Trace[7], 0x77)
}

func TestCalibrationBasicModulation(t *testing.T) {
	clk := clock.NewClock(clock.Basic)

	// the fastest Basic word is range 7, tap 7 with MOD=24. the search
	// saturates there for every target above the DCO's reach
	for _, target := range []uint32{8000000, 12000000, 16000000} {
		cal := clk.Calibrate(target)
		test.ExpectEquality(t, cal.DCOCTL, 0xf8, target)
		test.ExpectEquality(t, cal.BCSCTL1, 0x07, target)
		test.ExpectEquality(t, cal.Hz, clk.DCOFrequency(7, 24, 7), target)
	}
}

func TestCalibrationConstants(t *testing.T) {
	clk := clock.NewClock(clock.BasicPlus)

	dco, ok := clk.Read(clock.CALDCO_1MHZ)
	test.ExpectSuccess(t, ok)
	bc1, ok := clk.Read(clock.CALBC1_1MHZ)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, dco, 0x30)
	test.ExpectEquality(t, bc1, 0x07)

	cal := clk.Calibrate(1000000)
	test.ExpectEquality(t, cal.DCOCTL, dco)
	test.ExpectEquality(t, cal.BCSCTL1, bc1)
	test.ExpectEquality(t, cal.Hz, clk.DCOFrequency(1, 16, 7))

	dco, _ = clk.Read(clock.CALDCO_8MHZ)
	bc1, _ = clk.Read(clock.CALBC1_8MHZ)
	test.ExpectEquality(t, dco, 0x20)
	test.ExpectEquality(t, bc1, 0x0e)

	dco, _ = clk.Read(clock.CALDCO_12MHZ)
	bc1, _ = clk.Read(clock.CALBC1_12MHZ)
	test.ExpectEquality(t, dco, 0x50)
	test.ExpectEquality(t, bc1, 0x0f)

	dco, _ = clk.Read(clock.CALDCO_16MHZ)
	bc1, _ = clk.Read(clock.CALBC1_16MHZ)
	test.ExpectEquality(t, dco, 0xc0)
	test.ExpectEquality(t, bc1, 0x0f)

	// writing the calibration constants to the registers selects the
	// calibrated frequency
	clk.Write(clock.DCOCTL, 0x30)
	clk.Write(clock.BCSCTL1, 0x07)
	test.ExpectEquality(t, clk.Frequencies().DCOCLK, cal.Hz)

	// the constants follow the configuration of the DCO
	test.ExpectSuccess(t, config(t, clk, "dco7_3", "2MHz"))
	dco, _ = clk.Read(clock.CALDCO_1MHZ)
	bc1, _ = clk.Read(clock.CALBC1_1MHZ)
	test.ExpectInequality(t, uint16(dco)|uint16(bc1)<<8, 0x0730)
}
