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

// calibrationSteps is the width of the word searched by Calibrate().
const calibrationSteps = 8

// Calibration is the result of a search for the DCOCTL and BCSCTL1 values
// that best approximate a target frequency.
type Calibration struct {
	Target uint32

	// the register values. only the RSEL bits of BCSCTL1 are ever set
	DCOCTL  uint8
	BCSCTL1 uint8

	// frequency of the DCO with the register values
	Hz uint32

	// number of search steps taken and the word evaluated at each step
	Steps int
	Trace []uint8
}

// calibrationRegisters splits a search word into DCOCTL and BCSCTL1 values.
//
// The word is the top eight bits of the RSEL field and DCOCTL taken together.
// For the Basic+ family that is the four RSEL bits, the three DCO tap bits
// and the top bit of the modulation. For the Basic family, with its three bit
// RSEL field, the top two bits of the modulation are included. The remaining
// modulation bits are zero.
func (clk *Clock) calibrationRegisters(word uint8) (dcoctl uint8, bcsctl1 uint8) {
	v := uint16(word) << clk.model.rangeBits()
	return uint8(v), uint8(v >> 8)
}

// Calibrate searches for the DCOCTL and BCSCTL1 values that produce a DCO
// frequency closest to the target.
//
// The search is a successive approximation, most significant bit first. Each
// bit is set in turn and kept only if the resulting frequency does not exceed
// the target. The frequency does not rise monotonically with the search word
// (the highest tap of one range is faster than the lowest tap of the next) so
// the result is the closest candidate seen during the search, which is not
// always the final word.
//
// The word is shifted left by the number of range select bits so its low bits
// land in the MOD field of DCOCTL: one bit on Basic+ and two bits on Basic.
// A Basic result therefore carries modulation, eg. DCOCTL=0xf8 at 8, 12 and
// 16MHz.
func (clk *Clock) Calibrate(target uint32) Calibration {
	cal := Calibration{
		Target: target,
		Trace:  make([]uint8, 0, calibrationSteps),
	}

	var word uint8
	var bestErr uint64
	first := true

	for bit := uint8(1 << (calibrationSteps - 1)); bit != 0; bit >>= 1 {
		word |= bit

		dcoctl, bcsctl1 := clk.calibrationRegisters(word)
		hz := clk.dcoFromRegisters(dcoctl, bcsctl1)
		cal.Trace = append(cal.Trace, word)

		var e uint64
		if hz > target {
			e = uint64(hz - target)
		} else {
			e = uint64(target - hz)
		}

		if first || e < bestErr {
			first = false
			bestErr = e
			cal.DCOCTL = dcoctl
			cal.BCSCTL1 = bcsctl1
			cal.Hz = hz
		}

		if hz > target {
			word &^= bit
		}

		cal.Steps++
	}

	return cal
}
