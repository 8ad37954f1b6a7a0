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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, the same as fmt.Errorf(), but
// the pattern is remembered and can be used to identify the error later:
//
//	e := curated.Errorf("clock: unknown clock type: %s", "basic++")
//
//	if curated.Is(e, "clock: unknown clock type: %s") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks every curated error wrapped in
// the placeholder values.
//
//	f := curated.Errorf("simio: %v", e)
//
//	if curated.Has(f, "clock: unknown clock type: %s") {
//		fmt.Println("true")
//	}
//
// Packages that return curated errors should export the patterns they use as
// constants so that callers don't need to duplicate the pattern strings.
//
// Wrapping errors with the pattern "prefix: %v" is common and duplicate
// adjacent prefixes are removed when the error is printed. So:
//
//	a := curated.Errorf("clock: %v", curated.Errorf("clock: bad value"))
//
// prints as "clock: bad value".
package curated
