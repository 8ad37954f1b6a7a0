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

// help text for each command. the usage of the command is generated from the
// command template and is appended to the text by the HELP command.
var help = map[string]string{
	cmdSimio: `Create, configure and inspect simulated peripherals.

    CLASSES      list the classes of device that can be created
    HELP         describe the constructor and config arguments of a class
    ADD          create a new device. devices are stepped in the order they
                 are added
    DEL          destroy a device
    DEVICES      list the devices
    CONFIG       apply a config parameter to a device
    INFO         show the state of a device`,

	cmdReset: `Reset every device to its power-on state.`,

	cmdRead: `Read a byte from the first device that answers for the address.`,

	cmdWrite: `Write a byte to the first device that answers for the address.`,

	cmdStep: `Step every device by the number of MCLK ticks (default 1). The
elapsed SMCLK and ACLK ticks are shown.`,

	cmdLog: `Show the log. With a number only the most recent entries are shown.`,

	cmdMemviz: `Write a graph of the internal state of a device, in the dot language,
to the named file. If no file is given a unique filename is generated in the
current directory.`,

	cmdHelp: `List commands or show help for a command.`,

	cmdQuit: `Leave the debugger.`,
}
