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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/debugger/terminal"
	"github.com/jetsetilly/msp430sim/hardware/simio"
	"github.com/jetsetilly/msp430sim/logger"
)

const prompt = "[ msp430sim ] > "

// Debugger is the interactive console. Devices are created with the SIMIO
// command and are held by the Registry for the lifetime of the Debugger.
type Debugger struct {
	term terminal.Terminal
	reg  *simio.Registry

	// commands parsed from the command template. input is validated against
	// the commands before it is processed
	cmds          *commandline.Commands
	tabCompletion *commandline.TabCompletion

	// the Debugger will stop reading input when running is false
	running bool

	// print new log entries after every command
	showLog bool

	// total number of MCLK ticks stepped since the last reset
	ticks uint64
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The classes are the kinds of device that can be
// created with the SIMIO ADD command.
func NewDebugger(term terminal.Terminal, classes ...simio.Class) (*Debugger, error) {
	if term == nil {
		return nil, curated.Errorf("debugger: terminal required")
	}

	cmds, err := commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	err = cmds.AddHelp(cmdHelp, help)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		term:          term,
		reg:           simio.NewRegistry(classes...),
		cmds:          cmds,
		tabCompletion: commandline.NewTabCompletion(cmds),
		showLog:       true,
	}

	return dbg, nil
}

// Registry returns the registry of devices created by the SIMIO command.
func (dbg *Debugger) Registry() *simio.Registry {
	return dbg.reg
}

// TabCompletion returns the tab completion engine for the debugger's commands.
// It implements the terminal.Completer interface.
func (dbg *Debugger) TabCompletion() *commandline.TabCompletion {
	return dbg.tabCompletion
}

// ShowLog specifies whether new log entries are printed to the terminal after
// every command. It should be set to false if the log is being echoed
// elsewhere.
func (dbg *Debugger) ShowLog(show bool) {
	dbg.showLog = show
}

// Start the main debugger sequence. The script, if any, is run before input is
// read from the terminal. Start returns when the QUIT command is given or
// when there is no more input.
func (dbg *Debugger) Start(script string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()
	defer dbg.reg.Clear()

	// log entries made before the session starts are not interesting
	logger.WriteRecent(io.Discard)

	dbg.running = true

	if script != "" {
		err = dbg.RunScript(script)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	for dbg.running {
		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}
		dbg.Execute(input)
	}

	return nil
}

// RunScript executes every line of the named file as a command. Running a
// script stops early if the script contains the QUIT command.
func (dbg *Debugger) RunScript(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(ScriptFailed, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() && dbg.running {
		dbg.Execute(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf(ScriptFailed, err)
	}

	return nil
}

// Execute a single line of input. Errors are printed to the terminal and are
// never fatal.
func (dbg *Debugger) Execute(input string) {
	err := dbg.parseInput(input)
	if err != nil {
		dbg.printLine(terminal.StyleError, "%s", err)
	}

	if dbg.showLog {
		w := dbg.writerInStyle(terminal.StyleLog)
		logger.WriteRecent(w)
		w.flush()
	}
}

// parseInput recovers from a panic in the command or in a device and returns
// it as an error. a device panics when it is used in a way it cannot support,
// stepping the clock system without an ACLK source for example.
func (dbg *Debugger) parseInput(input string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf(Panicked, r)
		}
	}()

	tokens := commandline.TokeniseInput(input)

	cmd, ok := tokens.Get()
	if !ok || strings.HasPrefix(cmd, "#") {
		return nil
	}

	cmd = strings.ToUpper(cmd)
	dbg.printLine(terminal.StyleEcho, "%s", strings.TrimSpace(fmt.Sprintf("%s %s", cmd, tokens.Remainder())))

	if _, ok := dbg.cmds.Index[cmd]; !ok {
		return curated.Errorf(UnknownCommand, cmd)
	}

	tokens.Reset()
	err = dbg.cmds.ValidateTokens(tokens)
	if err != nil {
		return curated.Errorf(InvalidArguments, cmd, err)
	}

	// skip the command keyword
	tokens.Reset()
	tokens.Get()

	return dbg.processTokens(cmd, tokens)
}
