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

package simio

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/logger"
)

// Sentinal error patterns returned by the Registry.
const (
	UnknownClass   = "simio: unknown class: %s"
	DuplicateName  = "simio: device already exists: %s"
	NoSuchDevice   = "simio: no such device: %s"
	CreationFailed = "simio: %v"
)

type entry struct {
	name  string
	class string
	dev   Device
}

// Registry holds the devices of a simulation session. Devices are stepped in
// the order in which they were added so a device that produces clocks for
// other devices (the clock system) should be added first.
//
// The registry owns its devices exclusively. A device is destroyed when it is
// deleted from the registry or when the registry is cleared.
type Registry struct {
	classes []Class
	devices []entry
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The classes are the kinds of device that can be added.
func NewRegistry(classes ...Class) *Registry {
	return &Registry{
		classes: classes,
	}
}

// Classes returns the list of device classes known to the registry.
func (r *Registry) Classes() []Class {
	return r.classes
}

// FindClass returns the named class. The comparison is case insensitive.
func (r *Registry) FindClass(name string) (Class, bool) {
	for _, c := range r.classes {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Class{}, false
}

func (r *Registry) find(name string) int {
	for i, e := range r.devices {
		if e.name == name {
			return i
		}
	}
	return -1
}

// Add creates a new device of the named class. The remaining tokens are
// passed to the class's Create() function.
func (r *Registry) Add(className string, name string, args *commandline.Tokens) error {
	c, ok := r.FindClass(className)
	if !ok {
		return curated.Errorf(UnknownClass, className)
	}

	if r.find(name) >= 0 {
		return curated.Errorf(DuplicateName, name)
	}

	dev, err := c.Create(args)
	if err != nil {
		return curated.Errorf(CreationFailed, err)
	}

	dev.Reset()
	r.devices = append(r.devices, entry{name: name, class: c.Name, dev: dev})
	logger.Logf(logger.Allow, "simio", "added %s device %s", c.Name, name)

	return nil
}

// Delete destroys the named device and removes it from the registry.
func (r *Registry) Delete(name string) error {
	i := r.find(name)
	if i < 0 {
		return curated.Errorf(NoSuchDevice, name)
	}

	r.devices[i].dev.Destroy()
	r.devices = append(r.devices[:i], r.devices[i+1:]...)
	logger.Logf(logger.Allow, "simio", "deleted device %s", name)

	return nil
}

// Clear destroys every device in the registry.
func (r *Registry) Clear() {
	for _, e := range r.devices {
		e.dev.Destroy()
	}
	r.devices = r.devices[:0]
}

// Device returns the named device.
func (r *Registry) Device(name string) (Device, bool) {
	i := r.find(name)
	if i < 0 {
		return nil, false
	}
	return r.devices[i].dev, true
}

// Len returns the number of devices in the registry.
func (r *Registry) Len() int {
	return len(r.devices)
}

// List writes the name and class of every device.
func (r *Registry) List(w io.Writer) {
	for _, e := range r.devices {
		io.WriteString(w, fmt.Sprintf("    %-10s (type %s)\n", e.name, e.class))
	}
}

// Config applies a configuration parameter to the named device.
func (r *Registry) Config(name string, param string, args *commandline.Tokens) error {
	dev, ok := r.Device(name)
	if !ok {
		return curated.Errorf(NoSuchDevice, name)
	}
	return dev.Config(param, args)
}

// Info writes the report of the named device.
func (r *Registry) Info(name string, w io.Writer) error {
	dev, ok := r.Device(name)
	if !ok {
		return curated.Errorf(NoSuchDevice, name)
	}
	dev.Info(w)
	return nil
}

// Reset every device.
func (r *Registry) Reset() {
	for _, e := range r.devices {
		e.dev.Reset()
	}
}

// Read from the first device that handles the address. Returns false if no
// device handles the address.
func (r *Registry) Read(addr uint32) (uint8, bool) {
	for _, e := range r.devices {
		if v, ok := e.dev.Read(addr); ok {
			return v, true
		}
	}
	return 0, false
}

// Write to the first device that handles the address. Returns false if no
// device handles the address.
func (r *Registry) Write(addr uint32, data uint8) bool {
	for _, e := range r.devices {
		if e.dev.Write(addr, data) {
			return true
		}
	}
	return false
}

// Step every device in turn with the same Clocks record.
func (r *Registry) Step(clks *Clocks) {
	for _, e := range r.devices {
		e.dev.Step(clks)
	}
}

// CheckInterrupt returns the highest pending interrupt vector of any device
// that implements the Interrupter interface.
func (r *Registry) CheckInterrupt() (int, bool) {
	irq := -1
	for _, e := range r.devices {
		if i, ok := e.dev.(Interrupter); ok {
			if v, ok := i.CheckInterrupt(); ok && v > irq {
				irq = v
			}
		}
	}
	return irq, irq >= 0
}

// AckInterrupt forwards the acknowledgement to every Interrupter.
func (r *Registry) AckInterrupt(irq int) {
	for _, e := range r.devices {
		if i, ok := e.dev.(Interrupter); ok {
			i.AckInterrupt(irq)
		}
	}
}
