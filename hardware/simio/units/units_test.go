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

package units_test

import (
	"testing"

	"github.com/jetsetilly/msp430sim/hardware/simio/units"
	"github.com/jetsetilly/msp430sim/test"
)

func TestFormatHz(t *testing.T) {
	test.ExpectEquality(t, units.FormatHz(0), "0Hz")
	test.ExpectEquality(t, units.FormatHz(7), "7Hz")
	test.ExpectEquality(t, units.FormatHz(100), "100Hz")
	test.ExpectEquality(t, units.FormatHz(999), "999Hz")
	test.ExpectEquality(t, units.FormatHz(1000), "1kHz")
	test.ExpectEquality(t, units.FormatHz(1500), "1.5kHz")
	test.ExpectEquality(t, units.FormatHz(10000), "10kHz")
	test.ExpectEquality(t, units.FormatHz(12000), "12kHz")
	test.ExpectEquality(t, units.FormatHz(32768), "32.768kHz")
	test.ExpectEquality(t, units.FormatHz(123456), "123.456kHz")
	test.ExpectEquality(t, units.FormatHz(750000), "750kHz")
	test.ExpectEquality(t, units.FormatHz(1000000), "1MHz")
	test.ExpectEquality(t, units.FormatHz(1140000), "1.14MHz")
	test.ExpectEquality(t, units.FormatHz(16000000), "16MHz")
	test.ExpectEquality(t, units.FormatHz(100000000), "100MHz")
	test.ExpectEquality(t, units.FormatHz(4294967295), "4.294967295MHz")
}

func expectFrequency(t *testing.T, s string, expected uint32) {
	t.Helper()
	hz, ok := units.ParseFrequency(s)
	test.ExpectSuccess(t, ok, s)
	test.ExpectEquality(t, hz, expected, s)
}

func expectBadFrequency(t *testing.T, s string) {
	t.Helper()
	_, ok := units.ParseFrequency(s)
	test.ExpectFailure(t, ok, s)
}

func TestParseFrequency(t *testing.T) {
	expectFrequency(t, "32768", 32768)
	expectFrequency(t, "32768Hz", 32768)
	expectFrequency(t, "32768hz", 32768)
	expectFrequency(t, "32.768kHz", 32768)
	expectFrequency(t, "32.768KHZ", 32768)
	expectFrequency(t, "12kHz", 12000)
	expectFrequency(t, "1.14MHz", 1140000)
	expectFrequency(t, "16mhz", 16000000)
	expectFrequency(t, "750000", 750000)

	// digits below 1Hz are discarded
	expectFrequency(t, "1.2345kHz", 1234)
	expectFrequency(t, "0.5", 0)
	expectFrequency(t, "10.", 10)
	expectFrequency(t, "1.000000000MHz", 1000000)
	expectFrequency(t, "1.00000000000000000000001MHz", 1000000)
	expectFrequency(t, "32.76899999999999999999999kHz", 32768)
	expectFrequency(t, "7.99999999999999999999999", 7)

	// the grammar allows the digits to be omitted
	expectFrequency(t, "", 0)
	expectFrequency(t, "Hz", 0)
	expectFrequency(t, ".kHz", 0)
}

func TestParseBadFrequency(t *testing.T) {
	expectBadFrequency(t, "abc")
	expectBadFrequency(t, "12 kHz")
	expectBadFrequency(t, "1..2")
	expectBadFrequency(t, "1.2.3")
	expectBadFrequency(t, "12GHz")
	expectBadFrequency(t, "12kHzz")
	expectBadFrequency(t, "-12")
	expectBadFrequency(t, "5000000000")
	expectBadFrequency(t, "5000MHz")
	expectBadFrequency(t, "99999999999999999999999")
}
