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

package debugger

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
)

// parseNumber accepts decimal numbers and hexadecimal numbers prefixed with
// 0x or $. The value must fit in the number of bits specified.
func parseNumber(s string, bits int) (uint32, error) {
	base := 10
	t := s
	switch {
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasPrefix(t, "0x"), strings.HasPrefix(t, "0X"):
		t = t[2:]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, bits)
	if err != nil {
		return 0, curated.Errorf(IllegalNumber, bits, s)
	}

	return uint32(v), nil
}
