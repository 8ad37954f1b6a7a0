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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/debugger/terminal"
	"github.com/jetsetilly/msp430sim/hardware/simio"
	"github.com/jetsetilly/msp430sim/logger"
	"github.com/jetsetilly/msp430sim/paths"
)

// debugger keywords.
const (
	cmdSimio  = "SIMIO"
	cmdReset  = "RESET"
	cmdRead   = "READ"
	cmdWrite  = "WRITE"
	cmdStep   = "STEP"
	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

// keywords of the SIMIO command.
const (
	simioClasses = "CLASSES"
	simioHelp    = "HELP"
	simioAdd     = "ADD"
	simioDel     = "DEL"
	simioDevices = "DEVICES"
	simioConfig  = "CONFIG"
	simioInfo    = "INFO"
)

var commandTemplate = []string{
	cmdSimio + " [" + simioClasses +
		"|" + simioHelp + " %<class>S" +
		"|" + simioAdd + " %<class>S %<name>S {%<argument>S}" +
		"|" + simioDel + " %<name>S" +
		"|" + simioDevices +
		"|" + simioConfig + " %<name>S %<parameter>S {%<argument>S}" +
		"|" + simioInfo + " %<name>S]",
	cmdReset,
	cmdRead + " %<address>N",
	cmdWrite + " %<address>N %<value>N",
	cmdStep + " (%<ticks>N)",
	cmdLog + " (CLEAR|%<entries>N)",
	cmdMemviz + " %<name>S (%<file>F)",
	cmdQuit,
}

// processTokens acts on tokens that have been validated against the command
// template. the command keyword has already been consumed.
func (dbg *Debugger) processTokens(cmd string, tokens *commandline.Tokens) error {
	switch cmd {
	case cmdSimio:
		return dbg.simio(tokens)

	case cmdReset:
		dbg.reg.Reset()
		dbg.ticks = 0
		dbg.printLine(terminal.StyleFeedback, "devices reset")

	case cmdRead:
		s, _ := tokens.Get()
		addr, err := parseNumber(s, 16)
		if err != nil {
			return err
		}

		v, ok := dbg.reg.Read(addr)
		if !ok {
			dbg.printLine(terminal.StyleFeedback, "$%04x: no device", addr)
			return nil
		}
		dbg.printLine(terminal.StyleFeedback, "$%04x: $%02x (%d)", addr, v, v)

	case cmdWrite:
		s, _ := tokens.Get()
		addr, err := parseNumber(s, 16)
		if err != nil {
			return err
		}
		s, _ = tokens.Get()
		v, err := parseNumber(s, 8)
		if err != nil {
			return err
		}

		if !dbg.reg.Write(addr, uint8(v)) {
			dbg.printLine(terminal.StyleFeedback, "$%04x: no device", addr)
		}

	case cmdStep:
		n := uint32(1)
		if s, ok := tokens.Get(); ok {
			var err error
			n, err = parseNumber(s, 31)
			if err != nil {
				return err
			}
		}

		clks := simio.Clocks{MCLK: int(n)}
		dbg.reg.Step(&clks)
		dbg.ticks += uint64(n)
		dbg.printLine(terminal.StyleFeedback, "%s (total MCLK=%d)", clks, dbg.ticks)

		if irq, ok := dbg.reg.CheckInterrupt(); ok {
			dbg.printLine(terminal.StyleFeedback, "interrupt pending: vector %d", irq)
		}

	case cmdLog:
		w := dbg.writerInStyle(terminal.StyleLog)
		defer w.flush()

		s, ok := tokens.Get()
		if !ok {
			logger.Write(w)
			return nil
		}
		if s == "CLEAR" {
			logger.Clear()
			return nil
		}
		n, err := parseNumber(s, 16)
		if err != nil {
			return err
		}
		logger.Tail(w, int(n))

	case cmdMemviz:
		name, _ := tokens.Get()
		filename, ok := tokens.Get()
		if !ok {
			filename = paths.UniqueFilename("memviz", name) + ".dot"
		}
		return dbg.memviz(name, filename)

	case cmdHelp:
		w := dbg.writerInStyle(terminal.StyleHelp)
		defer w.flush()

		s, ok := tokens.Get()
		if !ok {
			w.Write([]byte(dbg.cmds.HelpOverview()))
			return nil
		}
		w.Write([]byte(dbg.cmds.Help(s)))

	case cmdQuit:
		dbg.running = false

	default:
		return curated.Errorf(UnknownCommand, cmd)
	}

	return nil
}

func (dbg *Debugger) simio(tokens *commandline.Tokens) error {
	sub, _ := tokens.Get()

	switch sub {
	case simioClasses:
		for _, c := range dbg.reg.Classes() {
			dbg.printLine(terminal.StyleFeedback, "    %s", c.Name)
		}

	case simioHelp:
		name, _ := tokens.Get()
		c, ok := dbg.reg.FindClass(name)
		if !ok {
			return curated.Errorf(simio.UnknownClass, name)
		}
		w := dbg.writerInStyle(terminal.StyleHelp)
		w.Write([]byte(c.Help))
		w.flush()

	case simioAdd:
		class, _ := tokens.Get()
		name, _ := tokens.Get()
		return dbg.reg.Add(class, name, tokens)

	case simioDel:
		name, _ := tokens.Get()
		return dbg.reg.Delete(name)

	case simioDevices:
		if dbg.reg.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "no devices")
			return nil
		}
		w := dbg.writerInStyle(terminal.StyleFeedback)
		dbg.reg.List(w)
		w.flush()

	case simioConfig:
		name, _ := tokens.Get()
		param, _ := tokens.Get()
		return dbg.reg.Config(name, param, tokens)

	case simioInfo:
		name, _ := tokens.Get()
		w := dbg.writerInStyle(terminal.StyleInfo)
		defer w.flush()
		return dbg.reg.Info(name, w)

	default:
		return curated.Errorf(UnknownCommand, fmt.Sprintf("%s %s", cmdSimio, sub))
	}

	return nil
}

// memviz writes a graph of the device's internal state in the dot language
// to the named file.
func (dbg *Debugger) memviz(name string, filename string) error {
	dev, ok := dbg.reg.Device(name)
	if !ok {
		return curated.Errorf(simio.NoSuchDevice, name)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(CommandFailed, cmdMemviz, err)
	}
	defer f.Close()

	memviz.Map(f, dev)

	dbg.printLine(terminal.StyleFeedback, "%s written to %s", name, filename)

	return nil
}
