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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
	"github.com/jetsetilly/msp430sim/debugger"
	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/debugger/terminal"
	"github.com/jetsetilly/msp430sim/debugger/terminal/colorterm"
	"github.com/jetsetilly/msp430sim/debugger/terminal/plainterm"
	"github.com/jetsetilly/msp430sim/hardware/simio/clock"
	"github.com/jetsetilly/msp430sim/hardware/simio/units"
	"github.com/jetsetilly/msp430sim/logger"
	"github.com/jetsetilly/msp430sim/modalflag"
	"github.com/jetsetilly/msp430sim/paths"
	"github.com/jetsetilly/msp430sim/performance"
	"github.com/jetsetilly/msp430sim/statsview"
	"github.com/jetsetilly/msp430sim/version"
)

const defaultInitScript = "debuggerInit"

// exit values returned by launch().
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch the program with the supplied arguments. the input and output
// arguments are used by the plain terminal and for all other messages.
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("DEBUG", "CALIBRATE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(md, input, output)
	case "CALIBRATE":
		err = calibrate(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitOK
}

func debug(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	termType := md.AddString("term", "PLAIN", "terminal type to use in debug mode: COLOR, PLAIN")
	profile := md.AddString("profile", "NONE", "run debugger through profiler: NONE, CPU, MEM, TRACE")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))
	echo := md.AddBool("echo", false, "echo log to stdout instead of the terminal")
	md.AdditionalHelp(fmt.Sprintf("the default script is %s", paths.ResourcePath("", defaultInitScript)))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var script string
	switch len(md.RemainingArgs()) {
	case 0:
		script = paths.ResourcePath("", defaultInitScript)
		if _, err := os.Stat(script); err != nil {
			script = ""
		}
	case 1:
		script = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var term terminal.Terminal
	var ct *colorterm.ColorTerminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		ct = colorterm.NewColorTerminal(nil)
		term = ct
	case "PLAIN":
		term = plainterm.NewPlainTerminal(input, output)
	default:
		return fmt.Errorf("unknown terminal: %s", *termType)
	}

	dbg, err := debugger.NewDebugger(term, clock.Class)
	if err != nil {
		return err
	}

	if ct != nil {
		ct.SetCompleter(dbg.TabCompletion())
	}

	if *echo {
		logger.SetEcho(output)
		dbg.ShowLog(false)
	} else {
		logger.SetEcho(nil)
	}
	defer logger.SetEcho(nil)

	if *stats {
		statsview.Launch(output)
	}

	return performance.RunProfiler(prof, "debugger", func() error {
		return dbg.Start(script)
	})
}

// the calibration constants in the order they are stored in the information
// memory.
var calibrationTargets = []uint32{16000000, 12000000, 8000000, 1000000}

func calibrate(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	srsel := md.AddString("srsel", "", "ratio between adjacent RSEL ranges")
	sdco := md.AddString("sdco", "", "ratio between adjacent DCO taps")
	dco := md.AddString("dco", "", "reference DCO frequency (DCO4_3 or DCO7_3)")
	md.AdditionalHelp("clock type is one of: basic, basic+")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(clock.TypeRequired)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	family, ok := clock.ParseFamily(md.GetArg(0))
	if !ok {
		return curated.Errorf(clock.UnknownType, md.GetArg(0))
	}

	clk := clock.NewClock(family)
	defer clk.Destroy()

	dcoParam := "dco4_3"
	if family == clock.BasicPlus {
		dcoParam = "dco7_3"
	}

	for _, c := range []struct {
		param string
		value string
	}{
		{param: "srsel", value: *srsel},
		{param: "sdco", value: *sdco},
		{param: dcoParam, value: *dco},
	} {
		if c.value == "" {
			continue
		}
		if err := clk.Config(c.param, commandline.TokeniseInput(c.value)); err != nil {
			return err
		}
	}

	fmt.Fprintf(output, "Clock type: %s\n", clk.Family())
	for _, target := range calibrationTargets {
		cal := clk.Calibrate(target)
		fmt.Fprintf(output, "%-6s DCOCTL=$%02x BCSCTL1=$%02x (%s)\n",
			units.FormatHz(target), cal.DCOCTL, cal.BCSCTL1, units.FormatHz(cal.Hz))
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	profile := md.AddString("profile", "NONE", "run performance check through profiler: NONE, CPU, MEM, TRACE")
	duration := md.AddString("duration", "5s", "run duration")
	mclk := md.AddInt("mclk", 1, "number of MCLK cycles in each step")
	md.AdditionalHelp("clock type is one of: basic, basic+ (default basic+)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	family := clock.BasicPlus
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		var ok bool
		family, ok = clock.ParseFamily(md.GetArg(0))
		if !ok {
			return curated.Errorf(clock.UnknownType, md.GetArg(0))
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	_, err = performance.Check(output, prof, family, *mclk, *duration)
	return err
}
