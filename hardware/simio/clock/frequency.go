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
	"math"
)

// DCOFrequency returns the frequency of the DCO for the tap (0 to 7),
// modulation (0 to 31) and range select values.
//
// The frequency of a tap is the baseline frequency scaled by the range step
// for every range away from the reference range and by the tap step for
// every tap away from tap 3. The modulator mixes the selected tap and the
// next tap up, spending mod cycles of every 32 at the next tap and the
// remainder at the selected tap. The result is the average frequency over the
// 32 cycles.
func (clk *Clock) DCOFrequency(tap int, mod int, rsel int) uint32 {
	f := float64(clk.model.baseline())
	f *= math.Pow(clk.srsel, float64(rsel-clk.model.referenceRange()))
	f *= math.Pow(clk.sdco, float64(tap-3))

	// without modulation the result is exactly the tap frequency
	if mod != 0 {
		next := f * clk.sdco
		f = (modCycles * f * next) / (float64(mod)*f + float64(modCycles-mod)*next)
	}

	if f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}

// dcoFromRegisters returns the DCO frequency for the DCOCTL and BCSCTL1
// register values.
func (clk *Clock) dcoFromRegisters(dcoctl uint8, bcsctl1 uint8) uint32 {
	rselMask := uint8(1<<clk.model.rangeBits()) - 1
	return clk.DCOFrequency(
		int(dcoctl&dcoMask)>>dcoShift,
		int(dcoctl&modMask),
		int(bcsctl1&rselMask),
	)
}

// update the derived frequencies. must be called after every change to a
// register or to the configuration.
func (clk *Clock) update() {
	dco := clk.dcoFromRegisters(clk.dcoctl, clk.bcsctl1)
	lfxt := clk.model.lfxt(clk)

	// XT2 falls back to LFXT1 when there is no XT2 crystal
	xt2 := clk.xt2
	if xt2 == 0 {
		xt2 = lfxt
	}

	var mclk uint32
	switch clk.bcsctl2 & selmMask {
	case selmXT2:
		mclk = xt2
	case selmLFXT:
		mclk = lfxt
	default:
		mclk = dco
	}

	smclk := dco
	if clk.bcsctl2&sels == sels {
		smclk = xt2
	}

	clk.freq.DCOCLK = dco
	clk.freq.MCLK = mclk >> ((clk.bcsctl2 & divmMask) >> divmShift)
	clk.freq.SMCLK = smclk >> ((clk.bcsctl2 & divsMask) >> divsShift)
	clk.freq.ACLK = lfxt >> ((clk.bcsctl1 & divaMask) >> divaShift)
}
