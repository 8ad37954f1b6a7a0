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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/msp430sim/debugger/terminal"
)

// printLine is a wrapper for the terminal's TermPrintLine() function.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(sty, s)
}

// styleWriter implements io.Writer for the terminal. Each complete line is
// sent to the terminal with the same style. A partial line is held until the
// next write or until flush() is called.
type styleWriter struct {
	dbg     *Debugger
	style   terminal.Style
	pending strings.Builder
}

func (dbg *Debugger) writerInStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{dbg: dbg, style: sty}
}

// Write implements the io.Writer interface.
func (wrt *styleWriter) Write(p []byte) (int, error) {
	wrt.pending.Write(p)

	s := wrt.pending.String()
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		wrt.dbg.term.TermPrintLine(wrt.style, s[:i])
		s = s[i+1:]
	}

	wrt.pending.Reset()
	wrt.pending.WriteString(s)

	return len(p), nil
}

func (wrt *styleWriter) flush() {
	if wrt.pending.Len() > 0 {
		wrt.dbg.term.TermPrintLine(wrt.style, wrt.pending.String())
		wrt.pending.Reset()
	}
}
