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
	"github.com/jetsetilly/msp430sim/hardware/simio/units"
)

// checkCrystal logs a warning if the crystal frequency is outside of the
// range supported by the oscillator mode. A crystal of 0Hz is not connected
// and is not checked. Returns true if the crystal is in range.
func checkCrystal(hz uint32, low uint32, high uint32, name string) bool {
	if hz == 0 || (hz >= low && hz <= high) {
		return true
	}
	warn("%sS: %s must be %s ~ %s, but %s", name, name,
		units.FormatHz(low), units.FormatHz(high), units.FormatHz(hz))
	return false
}

// checkModes checks the oscillator modes of a value about to be written to
// BCSCTL3 against the configured crystals. Problems are reported but never
// prevent the write.
func (m *basicPlus) checkModes(clk *Clock, data uint8) {
	switch data & xt2sMask {
	case xt2s0:
		checkCrystal(clk.xt2, 400000, 1000000, "XT2")
	case xt2s1:
		checkCrystal(clk.xt2, 1000000, 4000000, "XT2")
	case xt2s2:
		checkCrystal(clk.xt2, 2000000, 16000000, "XT2")
	case xt2s3:
		warn("XT2S: Digital input not supported")
	}

	// the meaning of the LFXT1S field depends on whether LFXT1 is in high
	// frequency mode
	if clk.bcsctl1&xts == xts {
		switch data & lfxt1sMask {
		case lfxt1s0:
			checkCrystal(clk.lfxt1, 400000, 1000000, "LFXT1")
		case lfxt1s1:
			checkCrystal(clk.lfxt1, 1000000, 3000000, "LFXT1")
		case lfxt1s2:
			checkCrystal(clk.lfxt1, 3000000, 16000000, "LFXT1")
		case lfxt1s3:
			warn("LFXT1S: Digital input not supported")
		}
		return
	}

	switch data & lfxt1sMask {
	case lfxt1s1:
		warn("LFXT1S: Reserved mode")
		warn("LFXT1S: Fallback to mode 0")
	case lfxt1s2:
		if m.vlo == 0 {
			warn("LFXT1S: VLO mode without VLO set")
		}
	case lfxt1s3:
		warn("LFXT1S: Digital input mode")
		warn("LFXT1S: Fallback to mode 0")
	}
}
