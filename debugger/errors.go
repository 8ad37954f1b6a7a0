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

// Sentinal error patterns returned by the debugger.
const (
	UnknownCommand   = "debugger: unknown command: %s"
	InvalidArguments = "debugger: %s: %v"
	IllegalNumber    = "debugger: not a %d bit number: %s"
	CommandFailed    = "debugger: %s: failed: %v"
	ScriptFailed     = "debugger: script: %v"
	Panicked         = "debugger: panic: %v"
)
