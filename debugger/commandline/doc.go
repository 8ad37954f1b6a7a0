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

// Package commandline tokenises and validates console input. Given a command
// template it can check that a line of input is well formed before the
// command is acted upon. It also works as a tab-completion engine for the
// terminal.
//
// The Commands type is created with ParseCommandTemplate(). Each entry in the
// template is a keyword followed by the arguments the command accepts:
//
//	template := []string{
//		"READ %<address>N",
//		"STEP (%N)",
//		"LOG (CLEAR|%N)",
//		"SIMIO [CLASSES|ADD %<class>S %<name>S {%<arg>S}|DEL %<name>S]",
//	}
//
// Arguments are grouped with [] for required groups, () for optional groups
// and {} for groups that can repeat any number of times. Alternatives inside
// a group are separated with |. Placeholders match any token of a kind:
//
//	%S	string
//	%N	integer, decimal or hexadecimal with the 0x or $ prefix
//	%P	floating-point number
//	%F	filename
//
// A placeholder can be given a label that is used in error messages and in
// the usage string of the help command. The label goes between the % and the
// placeholder type, for example %<address>N.
//
// Once parsed, the Commands instance validates tokenised input:
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("read $57")
//	err := cmds.ValidateTokens(toks)
//
// Validation is case-insensitive. Keywords in the tokens are normalised to
// upper case and the $ prefix of a number is changed to 0x, so that after a
// call to Reset() the tokens can be processed without further checking.
//
// The TabCompletion type transforms input so that the last word more closely
// resembles a valid command:
//
//	tbc := NewTabCompletion(cmds)
//	inp := tbc.Complete("simio a")
//
// In this instance the value of inp will be "simio ADD " (note the trailing
// space). When there is more than one option, calling Complete() again with
// the previous result returns the next option. A completion session is ended
// with a call to Reset().
package commandline
