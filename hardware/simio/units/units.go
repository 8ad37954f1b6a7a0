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

// Package units converts frequencies to and from the compact text form used
// by the simulated devices, for example "32.768kHz" or "1.14MHz".
package units

import (
	"math"
	"strings"
)

// the recognised unit suffixes and the power of ten they represent. the empty
// suffix means Hz.
var unitScale = []struct {
	suffix string
	scale  int
}{
	{suffix: "", scale: 0},
	{suffix: "Hz", scale: 0},
	{suffix: "kHz", scale: 3},
	{suffix: "MHz", scale: maxScale},
}

const maxScale = 6

// ParseFrequency parses a frequency token of the form:
//
//	digits? ('.' digits?)? unit?
//
// where unit is one of "Hz", "kHz" or "MHz", compared case insensitively.
// A missing unit means Hz. Fractional digits are folded into the value by the
// scale of the unit. Digits below 1Hz are discarded, however many there are.
//
// Returns false if the token is malformed or if the value does not fit in 32
// bits.
func ParseFrequency(s string) (uint32, bool) {
	var hz uint64
	frac := -1

	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			// digits finer than 1Hz at the largest unit can never be kept
			if frac >= maxScale {
				continue
			}
			if hz > (math.MaxUint64-9)/10 {
				return 0, false
			}
			hz = hz*10 + uint64(c-'0')
			if frac >= 0 {
				frac++
			}
		} else if c == '.' && frac < 0 {
			frac = 0
		} else {
			break
		}
	}
	if frac < 0 {
		frac = 0
	}

	pow := 0
	found := false
	for _, u := range unitScale {
		if strings.EqualFold(s[i:], u.suffix) {
			pow = u.scale - frac
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}

	for ; pow > 0; pow-- {
		if hz > math.MaxUint32 {
			return 0, false
		}
		hz *= 10
	}
	for ; pow < 0; pow++ {
		hz /= 10
	}

	if hz > math.MaxUint32 {
		return 0, false
	}

	return uint32(hz), true
}

// FormatHz renders a frequency in Hz as a short string. The value is divided
// into groups of three digits, the highest order group is separated from the
// rest by a decimal point and the appropriate unit suffix is added. Trailing
// zeros after the decimal point are removed.
//
//	0        "0Hz"
//	100      "100Hz"
//	32768    "32.768kHz"
//	1000000  "1MHz"
func FormatHz(hz uint32) string {
	// room for ten digits, one decimal point and the unit
	b := make([]byte, 0, 16)

	// digits are added least significant first and the buffer is reversed
	// afterwards. the decimal point is added at the point the final
	// group of digits begins
	digits := 0
	for {
		if digits > 0 && digits%3 == 0 && hz < 1000 {
			b = append(b, '.')
		}
		b = append(b, byte(hz%10)+'0')
		hz /= 10
		digits++
		if hz == 0 {
			break
		}
	}

	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	if digits > 3 {
		b = []byte(strings.TrimRight(string(b), "0"))
		b = []byte(strings.TrimSuffix(string(b), "."))
	}

	switch {
	case digits > 6:
		b = append(b, 'M')
	case digits > 3:
		b = append(b, 'k')
	}

	return string(b) + "Hz"
}
