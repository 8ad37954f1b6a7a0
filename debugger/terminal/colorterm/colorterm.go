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

//go:build !windows

// Package colorterm implements the Terminal interface for the msp430sim
// debugger. It supports color output, history and tab completion.
package colorterm

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/msp430sim/debugger/terminal"
	"github.com/jetsetilly/msp430sim/debugger/terminal/colorterm/easyterm"
	"golang.org/x/term"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
// Line editing and the command history are provided by the line editor in
// golang.org/x/term. The terminal is in raw mode for the lifetime of the
// ColorTerminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	line      *term.Terminal
	completer terminal.Completer
	silenced  bool
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type. The completer can be nil.
func NewColorTerminal(completer terminal.Completer) *ColorTerminal {
	return &ColorTerminal{
		completer: completer,
	}
}

// SetCompleter changes the completer used when the tab key is pressed. The
// completer can be nil.
func (ct *ColorTerminal) SetCompleter(completer terminal.Completer) {
	ct.completer = completer
}

type stdio struct {
	io.Reader
	io.Writer
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("colorterm: stdin is not a terminal")
	}

	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.line = term.NewTerminal(stdio{Reader: os.Stdin, Writer: os.Stdout}, "")
	ct.line.AutoCompleteCallback = ct.autoComplete
	ct.resize(ct.Geometry())
	ct.OnResize = ct.resize

	ct.RawMode()

	return nil
}

func (ct *ColorTerminal) resize(g easyterm.TermGeometry) {
	if g.Cols > 0 && g.Rows > 0 {
		_ = ct.line.SetSize(g.Cols, g.Rows)
	}
}

func (ct *ColorTerminal) autoComplete(line string, pos int, key rune) (string, int, bool) {
	if key != easyterm.KeyTab || ct.completer == nil {
		return "", 0, false
	}

	// only complete at the end of the line
	if pos != len(line) {
		return "", 0, false
	}

	s := ct.completer.Complete(line)
	if s == line {
		return "", 0, false
	}

	return s, len(s), true
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.line.SetPrompt(fmt.Sprintf("%s%s%s", ct.line.Escape.Cyan, prompt, ct.line.Escape.Reset))
	return ct.line.ReadLine()
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the line editor has already echoed the input
	if style == terminal.StyleEcho {
		return
	}

	var pen []byte
	switch style {
	case terminal.StyleHelp:
		pen = ct.line.Escape.White
	case terminal.StyleFeedback:
		pen = ct.line.Escape.Reset
	case terminal.StyleInfo:
		pen = ct.line.Escape.Yellow
	case terminal.StyleLog:
		pen = ct.line.Escape.Blue
	case terminal.StyleError:
		pen = ct.line.Escape.Red
		s = fmt.Sprintf("* %s", s)
	}

	_, _ = ct.line.Write([]byte(fmt.Sprintf("%s%s%s\n", pen, s, ct.line.Escape.Reset)))
}
