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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the remainder of the test depends on the value being correct. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// ExpectSuccess() and ExpectFailure() test for generic success and failure
// conditions, depending on the type of the value. A bool is successful if it
// is true and an error is successful if it is nil. Untyped nil is considered
// a success because of how errors usually work.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with an expected string.
package test
