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
	"io"
	"strings"

	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/hardware/simio/units"
)

// Family identifies the variant of the clock system.
type Family int

// List of valid Family values.
const (
	Basic Family = iota
	BasicPlus
)

func (f Family) String() string {
	switch f {
	case Basic:
		return "Basic"
	case BasicPlus:
		return "Basic+"
	}
	panic(fmt.Sprintf("unknown clock family: %d", int(f)))
}

// ParseFamily converts the construction token to a Family. The comparison is
// case insensitive.
func ParseFamily(s string) (Family, bool) {
	switch {
	case strings.EqualFold(s, "basic"):
		return Basic, true
	case strings.EqualFold(s, "basic+"):
		return BasicPlus, true
	}
	return Basic, false
}

// model is the part of the clock system that differs between families. state
// that only exists in one family (the VLO and BCSCTL3 in the Basic+ family
// for example) is held by the implementation for that family.
type model interface {
	family() Family

	// width in bits of the RSEL field in BCSCTL1 and the value of RSEL at
	// which the DCO baseline frequency applies
	rangeBits() int
	referenceRange() int

	// DCO frequency at the reference range and tap 3
	baseline() uint32

	// reset family specific registers and set BCSCTL1 to its power-on value
	reset(clk *Clock)

	// select LFXTCLK
	lfxt(clk *Clock) uint32

	// config parameters specific to the family. returns false if the
	// parameter is not recognised
	config(param string, args *commandline.Tokens) (bool, error)

	// access to family specific addresses
	read(clk *Clock, addr uint32) (uint8, bool)
	write(clk *Clock, addr uint32, data uint8) bool

	// info lines for the family specific oscillators and registers
	infoOscillators(w io.Writer)
	infoRegisters(w io.Writer)
}

// basic is the clock system of the older devices.
type basic struct {
	dco4_3 uint32
}

func newBasic() *basic {
	return &basic{
		dco4_3: 750000,
	}
}

func (m *basic) family() Family {
	return Basic
}

func (m *basic) rangeBits() int {
	return 3
}

func (m *basic) referenceRange() int {
	return 4
}

func (m *basic) baseline() uint32 {
	return m.dco4_3
}

func (m *basic) reset(clk *Clock) {
	clk.bcsctl1 = 0x84
}

func (m *basic) lfxt(clk *Clock) uint32 {
	return clk.lfxt1
}

func (m *basic) config(param string, args *commandline.Tokens) (bool, error) {
	if strings.EqualFold(param, "dco4_3") {
		return true, configFrequency(&m.dco4_3, args)
	}
	return false, nil
}

func (m *basic) read(_ *Clock, _ uint32) (uint8, bool) {
	return 0, false
}

func (m *basic) write(_ *Clock, _ uint32, _ uint8) bool {
	return false
}

func (m *basic) infoOscillators(w io.Writer) {
	fmt.Fprintf(w, "DCO4_3:\t    %s\n", units.FormatHz(m.dco4_3))
}

func (m *basic) infoRegisters(_ io.Writer) {
}

// basicPlus is the clock system of the later devices. it adds the VLO
// oscillator, the BCSCTL3 register, a wider RSEL field and the calibration
// constants.
type basicPlus struct {
	vlo     uint32
	dco7_3  uint32
	bcsctl3 uint8
}

func newBasicPlus() *basicPlus {
	return &basicPlus{
		vlo:    12000,
		dco7_3: 1140000,
	}
}

func (m *basicPlus) family() Family {
	return BasicPlus
}

func (m *basicPlus) rangeBits() int {
	return 4
}

func (m *basicPlus) referenceRange() int {
	return 7
}

func (m *basicPlus) baseline() uint32 {
	return m.dco7_3
}

func (m *basicPlus) reset(clk *Clock) {
	clk.bcsctl1 = 0x87
	m.bcsctl3 = 0x03
}

func (m *basicPlus) lfxt(clk *Clock) uint32 {
	if m.bcsctl3&lfxt1sMask == lfxt1s2 {
		return m.vlo
	}
	return clk.lfxt1
}

func (m *basicPlus) config(param string, args *commandline.Tokens) (bool, error) {
	switch {
	case strings.EqualFold(param, "vlo"):
		return true, configFrequency(&m.vlo, args)
	case strings.EqualFold(param, "dco7_3"):
		return true, configFrequency(&m.dco7_3, args)
	}
	return false, nil
}

func (m *basicPlus) read(clk *Clock, addr uint32) (uint8, bool) {
	if addr == BCSCTL3 {
		return m.bcsctl3, true
	}

	target, ok := calibrationTargets[addr]
	if !ok {
		return 0, false
	}

	cal := clk.Calibrate(target)
	if addr%2 == 0 {
		return cal.DCOCTL, true
	}
	return cal.BCSCTL1, true
}

func (m *basicPlus) write(clk *Clock, addr uint32, data uint8) bool {
	if addr != BCSCTL3 {
		return false
	}
	m.checkModes(clk, data)
	m.bcsctl3 = data
	return true
}

func (m *basicPlus) infoOscillators(w io.Writer) {
	if m.vlo == 0 {
		fmt.Fprintf(w, "VLO:\t    (unconfigured)\n")
	} else {
		fmt.Fprintf(w, "VLO:\t    %s\n", units.FormatHz(m.vlo))
	}
	fmt.Fprintf(w, "DCO7_3:\t    %s\n", units.FormatHz(m.dco7_3))
}

func (m *basicPlus) infoRegisters(w io.Writer) {
	fmt.Fprintf(w, "BCSCTL3:     %02x\n", m.bcsctl3)
}
