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

// Package debugger implements the interactive console of msp430sim. The
// console creates and configures simulated peripherals and drives them
// directly: register reads and writes go through the device registry just as
// they would from the instruction simulator and the STEP command advances
// every device by a number of MCLK ticks.
//
// Input is read from a terminal.Terminal implementation. Scripts are plain
// text files of console commands, one per line. Lines beginning with '#' are
// comments.
//
// Keywords are case insensitive. Numeric arguments can be decimal or
// hexadecimal with either the 0x or the $ prefix.
package debugger
