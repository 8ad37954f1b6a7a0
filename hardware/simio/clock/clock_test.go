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

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/hardware/simio"
	"github.com/jetsetilly/msp430sim/hardware/simio/clock"
	"github.com/jetsetilly/msp430sim/test"
)

func config(t *testing.T, clk *clock.Clock, param string, value string) error {
	t.Helper()
	return clk.Config(param, commandline.TokeniseInput(value))
}

func TestCreate(t *testing.T) {
	dev, err := clock.Create(commandline.TokeniseInput("basic"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.(*clock.Clock).Family(), clock.Basic)

	dev, err = clock.Create(commandline.TokeniseInput("BASIC+"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.(*clock.Clock).Family(), clock.BasicPlus)

	_, err = clock.Create(commandline.TokeniseInput("basic++"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, clock.UnknownType))

	_, err = clock.Create(commandline.TokeniseInput(""))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, clock.TypeRequired))
}

func TestResetDefaults(t *testing.T) {
	clk := clock.NewClock(clock.Basic)

	v, ok := clk.Read(clock.DCOCTL)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x60)
	v, _ = clk.Read(clock.BCSCTL1)
	test.ExpectEquality(t, v, 0x84)
	v, _ = clk.Read(clock.BCSCTL2)
	test.ExpectEquality(t, v, 0x00)

	// BCSCTL3 does not exist in the basic family
	_, ok = clk.Read(clock.BCSCTL3)
	test.ExpectFailure(t, ok)

	clk = clock.NewClock(clock.BasicPlus)
	v, _ = clk.Read(clock.DCOCTL)
	test.ExpectEquality(t, v, 0x60)
	v, _ = clk.Read(clock.BCSCTL1)
	test.ExpectEquality(t, v, 0x87)
	v, _ = clk.Read(clock.BCSCTL2)
	test.ExpectEquality(t, v, 0x00)
	v, ok = clk.Read(clock.BCSCTL3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x03)

	// registers and counters are restored by a reset
	test.ExpectSuccess(t, config(t, clk, "lfxt1", "32768"))
	clk.Write(clock.DCOCTL, 0xff)
	clk.Write(clock.BCSCTL3, 0x20)
	clk.Step(&simio.Clocks{MCLK: 3})
	clk.Reset()

	v, _ = clk.Read(clock.DCOCTL)
	test.ExpectEquality(t, v, 0x60)
	v, _ = clk.Read(clock.BCSCTL3)
	test.ExpectEquality(t, v, 0x03)
	aclk, smclk := clk.Counters()
	test.ExpectEquality(t, aclk, 0)
	test.ExpectEquality(t, smclk, 0)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []clock.Family{clock.Basic, clock.BasicPlus} {
		clk := clock.NewClock(f)

		addrs := []uint32{clock.DCOCTL, clock.BCSCTL1, clock.BCSCTL2}
		if f == clock.BasicPlus {
			addrs = append(addrs, clock.BCSCTL3)
		}

		for _, addr := range addrs {
			for _, d := range []uint8{0x00, 0x01, 0x5a, 0xa5, 0xff} {
				test.ExpectSuccess(t, clk.Write(addr, d), f, addr)
				v, ok := clk.Read(addr)
				test.ExpectSuccess(t, ok, f, addr)
				test.ExpectEquality(t, v, d, f, addr)
			}
		}
	}
}

func TestNotMine(t *testing.T) {
	for _, f := range []clock.Family{clock.Basic, clock.BasicPlus} {
		clk := clock.NewClock(f)
		freq := clk.Frequencies()

		for _, addr := range []uint32{0x0000, 0x0055, 0x0059, 0x0120, 0x10f7, 0x1100, 0xffff} {
			_, ok := clk.Read(addr)
			test.ExpectFailure(t, ok, f, addr)
			test.ExpectFailure(t, clk.Write(addr, 0xff), f, addr)
		}

		// the calibration constants are read only
		test.ExpectFailure(t, clk.Write(clock.CALDCO_1MHZ, 0xff), f)

		test.ExpectEquality(t, clk.Frequencies(), freq, f)
		v, _ := clk.Read(clock.DCOCTL)
		test.ExpectEquality(t, v, 0x60, f)
	}

	// the calibration constants do not exist in the basic family
	clk := clock.NewClock(clock.Basic)
	_, ok := clk.Read(clock.CALBC1_1MHZ)
	test.ExpectFailure(t, ok)
}

func TestConfig(t *testing.T) {
	clk := clock.NewClock(clock.BasicPlus)

	err := config(t, clk, "srsel", "1.0")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, clock.RatioTooSmall))

	err = config(t, clk, "srsel", "1.8")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, clock.RatioTooLarge))
	test.ExpectEquality(t, err.Error(), "clock: config: must be less than 1.8: 1.8")

	test.ExpectSuccess(t, config(t, clk, "srsel", "1.5"))
	test.ExpectSuccess(t, config(t, clk, "SDCO", "1.25"))

	err = config(t, clk, "sdco", "NaN")
	test.ExpectSuccess(t, curated.Is(err, clock.IllegalRatio))
	err = config(t, clk, "sdco", "fast")
	test.ExpectSuccess(t, curated.Is(err, clock.IllegalRatio))
	err = config(t, clk, "sdco", "")
	test.ExpectSuccess(t, curated.Is(err, clock.ExpectedRatio))

	test.ExpectSuccess(t, config(t, clk, "lfxt1", "32.768kHz"))
	test.ExpectSuccess(t, config(t, clk, "xt2", "8MHz"))
	test.ExpectSuccess(t, config(t, clk, "vlo", "10khz"))
	test.ExpectSuccess(t, config(t, clk, "dco7_3", "1.2MHz"))

	err = config(t, clk, "xt2", "8GHz")
	test.ExpectSuccess(t, curated.Is(err, clock.IllegalFrequency))
	err = config(t, clk, "xt2", "")
	test.ExpectSuccess(t, curated.Is(err, clock.ExpectedFrequency))

	// parameters of the other family
	err = config(t, clk, "dco4_3", "1MHz")
	test.ExpectSuccess(t, curated.Is(err, clock.UnknownParameter))
	err = config(t, clk, "foo", "1MHz")
	test.ExpectSuccess(t, curated.Is(err, clock.UnknownParameter))

	clk = clock.NewClock(clock.Basic)
	test.ExpectSuccess(t, config(t, clk, "dco4_3", "800kHz"))
	err = config(t, clk, "vlo", "12kHz")
	test.ExpectSuccess(t, curated.Is(err, clock.UnknownParameter))
	err = config(t, clk, "dco7_3", "1MHz")
	test.ExpectSuccess(t, curated.Is(err, clock.UnknownParameter))
}

func TestConfigUpdatesFrequencies(t *testing.T) {
	clk := clock.NewClock(clock.Basic)
	test.ExpectEquality(t, clk.Frequencies().DCOCLK, 750000)

	test.ExpectSuccess(t, config(t, clk, "dco4_3", "800kHz"))
	test.ExpectEquality(t, clk.Frequencies().DCOCLK, 800000)
	test.ExpectEquality(t, clk.Frequencies().MCLK, 800000)

	// a failed config leaves the clock unchanged
	test.ExpectFailure(t, config(t, clk, "dco4_3", "800kHzz"))
	test.ExpectEquality(t, clk.Frequencies().DCOCLK, 800000)
}

func TestDestroy(t *testing.T) {
	clk := clock.NewClock(clock.Basic)
	clk.Destroy()

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	clk.Destroy()
}
