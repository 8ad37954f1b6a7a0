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

package commandline

import (
	"strings"
)

// Tokens represents tokenised input. It is used both by the console and by
// the simulated devices which take their configuration arguments from it.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// End the token traversal process. It can be restarted with the Reset()
// function.
func (tk *Tokens) End() {
	tk.curr = len(tk.tokens)
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the remaining tokens as a string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of remaining tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached, the function returns false.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Update replaces the most recently returned token. Validation uses this to
// normalise keywords and number prefixes.
func (tk *Tokens) Update(s string) {
	if tk.curr > 0 {
		tk.tokens[tk.curr-1] = s
	}
}

// Peek returns the next token in the list (without advancing the list), and
// a success boolean.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// TokeniseInput creates and returns a new Tokens instance. A token is a run of
// non-space characters or a quoted string. See NextArg() for the treatment of
// quotes.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{
		input: strings.TrimSpace(input),
	}

	s := tk.input
	for {
		var t string
		var ok bool
		t, s, ok = NextArg(s)
		if !ok {
			break
		}
		tk.tokens = append(tk.tokens, t)
	}

	return tk
}

// states of the NextArg() scanner.
const (
	stBare = iota
	stQuoted
	stEscape
	stOctal1
	stOctal2
	stHex1
	stHex2
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// NextArg extracts the next argument from the input string. Inside quotes a
// backslash introduces an escape sequence:
//
//	\\ \n \r \t       backslash, newline, carriage return, tab
//	\NNN              octal byte, first digit 0..3
//	\xNN              hex byte
//	\c                any other character is copied as is
//
// Quotes can appear in the middle of an argument and are removed. For
// example, the input
//
//	config lfxt1 "32768"Hz
//
// produces the three arguments "config", "lfxt1" and "32768Hz".
//
// NextArg returns the argument, the input following the argument with
// leading space removed, and true if an argument was found.
func NextArg(input string) (string, string, bool) {
	i := 0
	for i < len(input) && isSpace(input[i]) {
		i++
	}
	if i >= len(input) {
		return "", "", false
	}

	var arg strings.Builder
	var val byte
	state := stBare

scan:
	for ; i < len(input); i++ {
		c := input[i]

		switch state {
		case stBare:
			if isSpace(c) {
				break scan
			}
			if c == '"' {
				state = stQuoted
			} else {
				arg.WriteByte(c)
			}

		case stQuoted:
			switch c {
			case '"':
				state = stBare
			case '\\':
				state = stEscape
			default:
				arg.WriteByte(c)
			}

		case stEscape:
			state = stQuoted
			switch {
			case c == '\\':
				arg.WriteByte('\\')
			case c == 'n':
				arg.WriteByte('\n')
			case c == 'r':
				arg.WriteByte('\r')
			case c == 't':
				arg.WriteByte('\t')
			case c >= '0' && c <= '3':
				val = c - '0'
				state = stOctal1
			case c == 'x':
				val = 0
				state = stHex1
			default:
				arg.WriteByte(c)
			}

		case stOctal1, stOctal2:
			// a character that is not an octal digit is consumed but does
			// not contribute to the value
			if c >= '0' && c <= '7' {
				val = val<<3 | (c - '0')
			}
			if state == stOctal2 {
				arg.WriteByte(val)
				state = stQuoted
			} else {
				state = stOctal2
			}

		case stHex1, stHex2:
			switch {
			case c >= '0' && c <= '9':
				val = val<<4 | (c - '0')
			case c >= 'a' && c <= 'f':
				val = val<<4 | (c - 'a' + 10)
			case c >= 'A' && c <= 'F':
				val = val<<4 | (c - 'A' + 10)
			}
			if state == stHex2 {
				arg.WriteByte(val)
				state = stQuoted
			} else {
				state = stHex2
			}
		}
	}

	// leave the remainder at the start of the next argument
	for i < len(input) && isSpace(input[i]) {
		i++
	}

	return arg.String(), input[i:], true
}
