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

package clock

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/hardware/simio"
	"github.com/jetsetilly/msp430sim/logger"
)

// log tag used by the clock system.
const logTag = "simio: clock"

// Sentinal error patterns for construction.
const (
	TypeRequired = "clock: clock type required"
	UnknownType  = "clock: unknown clock type: %s"
)

// Class is the simio class for the clock system.
var Class = simio.Class{
	Name: "clock",
	Help: `This peripheral implements the clock system module.

Constructor arguments: <basic|basic+>
    Specify the type of clock system.

Config arguments are:
    lfxt1 <frequency>
        Specify LFXT1 crystal frequency
    xt2 <frequency>
        Specify XT2 crystal frequency
    srsel <double>
        Frequency step between range RSEL and RSEL+1
    sdco <double>
        Frequency step between tap DCO and DCO+1
Config arguments for basic clock are:
    dco4_3 <frequency>
        DCO frequency after reset (RSEL:4, DCO:3)
Config arguments for basic+ clock are:
    vlo <frequency>
        Specify VLO frequency
    dco7_3 <frequency>
        DCO frequency after reset (RSEL:7, DCO:3)
`,
	Create: Create,
}

// Frequencies are the frequencies derived from the oscillators and the
// register settings.
type Frequencies struct {
	DCOCLK uint32
	MCLK   uint32
	SMCLK  uint32
	ACLK   uint32
}

// Clock implements the simio.Device interface for the basic clock system
// module. It derives MCLK, SMCLK and ACLK from the oscillators and converts
// elapsed MCLK ticks into elapsed SMCLK and ACLK ticks.
type Clock struct {
	model model

	// oscillators common to both families. zero means no connection
	lfxt1 uint32
	xt2   uint32

	// frequency ratio between adjacent ranges and between adjacent taps
	srsel float64
	sdco  float64

	// registers common to both families
	dcoctl  uint8
	bcsctl1 uint8
	bcsctl2 uint8

	// derived frequencies. updated whenever a register or the configuration
	// changes
	freq Frequencies

	// remainders of MCLK ticks multiplied by MCLK frequency. always less than
	// the frequency of the clock
	aclkCounter  uint64
	smclkCounter uint64

	destroyed bool
}

// Create a new clock system from the construction arguments. Implements the
// Create() function of the simio.Class type.
func Create(args *commandline.Tokens) (simio.Device, error) {
	s, ok := args.Get()
	if !ok {
		return nil, curated.Errorf(TypeRequired)
	}

	f, ok := ParseFamily(s)
	if !ok {
		return nil, curated.Errorf(UnknownType, s)
	}

	return NewClock(f), nil
}

// NewClock is the preferred method of initialisation for the Clock type. The
// new clock is in its power-on state.
func NewClock(f Family) *Clock {
	clk := &Clock{}

	switch f {
	case Basic:
		clk.model = newBasic()
		clk.srsel = 1.65
		clk.sdco = 1.12
	case BasicPlus:
		clk.model = newBasicPlus()
		clk.srsel = 1.35
		clk.sdco = 1.08
	default:
		panic(fmt.Sprintf("unknown clock family: %d", int(f)))
	}

	clk.Reset()

	return clk
}

func (clk *Clock) String() string {
	return fmt.Sprintf("%s DCOCLK=%d MCLK=%d SMCLK=%d ACLK=%d",
		clk.model.family(),
		clk.freq.DCOCLK,
		clk.freq.MCLK,
		clk.freq.SMCLK,
		clk.freq.ACLK,
	)
}

// Family returns the family of the clock system.
func (clk *Clock) Family() Family {
	return clk.model.family()
}

// Frequencies returns the current derived frequencies.
func (clk *Clock) Frequencies() Frequencies {
	return clk.freq
}

// Counters returns the remainders for ACLK and SMCLK.
func (clk *Clock) Counters() (aclk uint64, smclk uint64) {
	return clk.aclkCounter, clk.smclkCounter
}

// Reset implements the simio.Device interface.
func (clk *Clock) Reset() {
	clk.aclkCounter = 0
	clk.smclkCounter = 0

	clk.dcoctl = 0x60
	clk.bcsctl2 = 0x00
	clk.model.reset(clk)

	clk.update()
}

// Destroy implements the simio.Device interface.
func (clk *Clock) Destroy() {
	if clk.destroyed {
		panic("clock: device destroyed more than once")
	}
	clk.destroyed = true
}

// Read implements the simio.Device interface.
func (clk *Clock) Read(addr uint32) (uint8, bool) {
	switch addr {
	case DCOCTL:
		return clk.dcoctl, true
	case BCSCTL1:
		return clk.bcsctl1, true
	case BCSCTL2:
		return clk.bcsctl2, true
	}
	return clk.model.read(clk, addr)
}

// Write implements the simio.Device interface.
func (clk *Clock) Write(addr uint32, data uint8) bool {
	switch addr {
	case DCOCTL:
		clk.dcoctl = data
	case BCSCTL1:
		clk.bcsctl1 = data
	case BCSCTL2:
		clk.bcsctl2 = data
	default:
		if !clk.model.write(clk, addr, data) {
			return false
		}
	}

	clk.update()

	return true
}

// Step implements the simio.Device interface. The number of elapsed SMCLK and
// ACLK ticks is calculated from the elapsed MCLK ticks. The MCLK field of the
// Clocks record is not changed.
//
// The remainder of each division is carried over to the next call to Step()
// so that no ticks are lost over a long run.
//
// It is an error to step the clock system if SMCLK or ACLK is zero. This can
// only happen if no oscillator for that clock has been configured.
//
// Step panics if the product of the MCLK ticks and the MCLK frequency, added
// to a carried remainder, does not fit in 64 bits. At 16MHz that is a batch
// of more than a trillion ticks.
func (clk *Clock) Step(clks *simio.Clocks) {
	if clk.freq.ACLK == 0 {
		panic("clock: ACLK is 0Hz (is LFXT1 configured?)")
	}
	if clk.freq.SMCLK == 0 {
		panic("clock: SMCLK is 0Hz")
	}
	if clks.MCLK < 0 {
		panic(fmt.Sprintf("clock: negative MCLK ticks: %d", clks.MCLK))
	}

	hi, duration := bits.Mul64(uint64(clks.MCLK), uint64(clk.freq.MCLK))
	aclkCounter, carryA := bits.Add64(clk.aclkCounter, duration, 0)
	smclkCounter, carryS := bits.Add64(clk.smclkCounter, duration, 0)
	if hi != 0 || carryA != 0 || carryS != 0 {
		panic(fmt.Sprintf("clock: %d MCLK ticks at %dHz overflows the tick counters", clks.MCLK, clk.freq.MCLK))
	}
	clk.aclkCounter = aclkCounter
	clk.smclkCounter = smclkCounter

	aclk := uint64(clk.freq.ACLK)
	smclk := uint64(clk.freq.SMCLK)

	clks.ACLK = int(clk.aclkCounter / aclk)
	clks.SMCLK = int(clk.smclkCounter / smclk)

	clk.aclkCounter %= aclk
	clk.smclkCounter %= smclk
}

// the clock system does not raise interrupts so it does not implement
// simio.Interrupter
var _ simio.Device = (*Clock)(nil)

// warn logs an advisory message. advisory messages never prevent a register
// write or a configuration change.
func warn(detail string, args ...any) {
	logger.Logf(logger.Allow, logTag, detail, args...)
}
