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

// Package simio is the peripheral layer of the instruction set simulator.
// Peripherals are implementations of the Device interface and are created
// from a Class. Devices are held by a Registry, which dispatches memory
// accesses to them and steps them as the simulated CPU executes
// instructions.
//
// A device only ever answers for the addresses it owns. Read() and Write()
// return false for any other address, which is not an error. The registry
// uses that to find the device, if any, that handles an address.
package simio

import (
	"fmt"
	"io"

	"github.com/jetsetilly/msp430sim/debugger/commandline"
)

// Clocks is the number of elapsed ticks in each clock domain for one Step()
// of the simulation. The MCLK field is set by the CPU simulator. The clock
// system device sets the SMCLK and ACLK fields for the benefit of the devices
// stepped after it.
type Clocks struct {
	MCLK  int
	SMCLK int
	ACLK  int
}

func (c Clocks) String() string {
	return fmt.Sprintf("MCLK=%d SMCLK=%d ACLK=%d", c.MCLK, c.SMCLK, c.ACLK)
}

// Device is the set of operations every simulated peripheral supports.
type Device interface {
	// Reset the device to its power-on state
	Reset()

	// Config applies the named configuration parameter. The value(s) for the
	// parameter are taken from the tokens
	Config(param string, args *commandline.Tokens) error

	// Info writes a report of the device state
	Info(w io.Writer)

	// Read returns the value at the address and true, or false if the
	// address does not belong to the device
	Read(addr uint32) (uint8, bool)

	// Write stores the value at the address and returns true, or false if
	// the address does not belong to the device
	Write(addr uint32, data uint8) bool

	// Step the device by the elapsed clocks
	Step(clks *Clocks)

	// Destroy releases the device. It will be called no more than once
	Destroy()
}

// Interrupter is implemented by devices that can raise interrupts. It is
// optional and devices that don't implement it never interrupt.
type Interrupter interface {
	// CheckInterrupt returns the highest priority pending interrupt vector and
	// true, or false if there is no pending interrupt
	CheckInterrupt() (int, bool)

	// AckInterrupt acknowledges the interrupt with the specified vector
	AckInterrupt(irq int)
}

// Class describes a kind of device and how to create one.
type Class struct {
	// short name used to refer to the class (eg. "clock")
	Name string

	// help text describing the construction and config arguments
	Help string

	// Create a new device. The construction arguments are taken from the
	// tokens
	Create func(args *commandline.Tokens) (Device, error)
}
