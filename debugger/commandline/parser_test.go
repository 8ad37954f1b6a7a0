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

package commandline_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/msp430sim/debugger/commandline"
	"github.com/jetsetilly/msp430sim/test"
)

// expectEquality compares a template, as passed to ParseCommandTemplate(),
// with the String() output of the resulting Commands instance. the comparison
// is not case sensitive.
func expectEquality(t *testing.T, template []string, cmds *commandline.Commands) {
	t.Helper()
	test.ExpectEquality(t, strings.ToUpper(cmds.String()), strings.ToUpper(strings.Join(template, "\n")))
}

// expectEquivalency parses the String() output of the commands. the result of
// the second parse should be the same as the first. used when the original
// template has group delimiters that have no effect.
func expectEquivalency(t *testing.T, cmds *commandline.Commands) {
	t.Helper()

	template := strings.Split(cmds.String(), "\n")
	reparsed, err := commandline.ParseCommandTemplate(template)
	if test.ExpectSuccess(t, err) {
		expectEquality(t, template, reparsed)
	}
}

func TestParser_optimised(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{"TEST [1 [2] [3] [4] [5]]"})
	if test.ExpectSuccess(t, err) {
		test.ExpectEquality(t, cmds.String(), "TEST [1 2 3 4 5]")
		expectEquivalency(t, cmds)
	}

	cmds, err = commandline.ParseCommandTemplate([]string{"TEST (egg|fog|(nug nog)|big) (tug)"})
	if test.ExpectSuccess(t, err) {
		test.ExpectEquality(t, cmds.String(), "TEST (EGG|FOG|NUG NOG|BIG) (TUG)")
		expectEquivalency(t, cmds)
	}
}

func TestParser_nestedGroups(t *testing.T) {
	template := []string{"TEST (foo|bar (a|b c|d) baz)"}
	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectSuccess(t, err) {
		expectEquality(t, template, cmds)
	}
}

func TestParser_badGroupings(t *testing.T) {
	var err error

	// optional groups must be closed
	_, err = commandline.ParseCommandTemplate([]string{"TEST (arg"})
	test.ExpectFailure(t, err)

	// groups must be closed with the correct delimiter
	_, err = commandline.ParseCommandTemplate([]string{"TEST (arg]"})
	test.ExpectFailure(t, err)

	// close without open
	_, err = commandline.ParseCommandTemplate([]string{"TEST arg)"})
	test.ExpectFailure(t, err)

	// groups and alternatives cannot be empty
	_, err = commandline.ParseCommandTemplate([]string{"TEST ()"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"TEST (foo|)"})
	test.ExpectFailure(t, err)

	// a definition must start with a keyword
	_, err = commandline.ParseCommandTemplate([]string{"(TEST)"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"%S"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"  "})
	test.ExpectFailure(t, err)
}

func TestParser_goodGroupings(t *testing.T) {
	template := []string{"TEST (1 [2] [3] [4] [5])"}
	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectSuccess(t, err) {
		expectEquality(t, template, cmds)
	}
}

func TestParser_nestedGroupings(t *testing.T) {
	for _, defn := range []string{
		"TEST [(foo)|bar]",
		"TEST (foo|[bar])",
		"TEST (foo|[bar|(baz|qux)]|wibble)",
		"PREF ([SET|NO|TOGGLE] [RANDSTART|RANDPINS])",
		"TEST (a ([b] [c]))",
	} {
		template := []string{defn}
		cmds, err := commandline.ParseCommandTemplate(template)
		if test.ExpectSuccess(t, err, defn) {
			expectEquality(t, template, cmds)
		}
	}
}

func TestParser_rootGroupings(t *testing.T) {
	template := []string{"TEST (arg)"}
	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectSuccess(t, err) {
		expectEquality(t, template, cmds)
	}
}

func TestParser_placeholders(t *testing.T) {
	var err error

	// placeholder directives must be complete
	_, err = commandline.ParseCommandTemplate([]string{"TEST foo %"})
	test.ExpectFailure(t, err)

	// placeholder directives must be recognised
	_, err = commandline.ParseCommandTemplate([]string{"TEST foo %q"})
	test.ExpectFailure(t, err)

	// double %% is a valid placeholder directive
	template := []string{"TEST foo %%"}
	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectSuccess(t, err) {
		expectEquality(t, template, cmds)
	}

	// placeholder directives must be separated from surrounding text
	_, err = commandline.ParseCommandTemplate([]string{"TEST foo%%"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"TEST %Sfoo"})
	test.ExpectFailure(t, err)
}

func TestParser_doubleArgs(t *testing.T) {
	for _, defn := range []string{
		"TEST foo bar",
		"TEST (foo bar baz)",
		"TEST (egg|fog|nug nog|big) (tug)",
	} {
		template := []string{defn}
		cmds, err := commandline.ParseCommandTemplate(template)
		if test.ExpectSuccess(t, err, defn) {
			expectEquality(t, template, cmds)
		}
	}
}

func TestParser_repeatGroups(t *testing.T) {
	for _, defn := range []string{
		"TEST {foo}",
		"TEST {foo|bar}",
		"TEST {[foo|bar]}",
		"TEST {foo|bar|baz}",
		"TEST {foo %f}",
		"TEST {foo|bar %f}",
		"SIMIO ADD %S %S {%S}",
	} {
		template := []string{defn}
		cmds, err := commandline.ParseCommandTemplate(template)
		if test.ExpectSuccess(t, err, defn) {
			expectEquality(t, template, cmds)
		}
	}
}

func TestParser_duplicate(t *testing.T) {
	_, err := commandline.ParseCommandTemplate([]string{"TEST foo", "test bar"})
	test.ExpectFailure(t, err)
}

func TestParser_addHelp(t *testing.T) {
	template := []string{
		"DISPLAY (OFF|DEBUG|SCALE [%N]|DEBUGCOLORS)",
		"SCRIPT [%F|RECORD %F|END]",
		"DROP [BREAK|TRAP|WATCH] [%S]",
		"GREP %N",
		"SYMBOL [%S (ALL|MIRRORS)|LIST]",
	}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectSuccess(t, err) {
		expectEquality(t, template, cmds)
	}

	err = cmds.AddHelp("HELP", map[string]string{
		"GREP": "Search for a value",
	})
	test.ExpectSuccess(t, err)

	// adding a second HELP command is not allowed
	err = cmds.AddHelp("HELP", map[string]string{})
	test.ExpectFailure(t, err)

	lines := strings.Split(cmds.String(), "\n")
	test.ExpectEquality(t, lines[len(lines)-1], "HELP (DISPLAY|SCRIPT|DROP|GREP|SYMBOL|HELP)")

	test.ExpectEquality(t, cmds.Help("grep"), "Search for a value\n\n  Usage: GREP %N")
	test.ExpectEquality(t, cmds.Help("drop"), "no help for DROP")

	test.ExpectEquality(t, strings.Join(strings.Fields(cmds.HelpOverview()), " "), "DISPLAY SCRIPT DROP GREP SYMBOL HELP")
}

func TestParser_placeholderLabels(t *testing.T) {
	template := []string{"FOO %<bar>S"}

	cmds, err := commandline.ParseCommandTemplate(template)
	if test.ExpectSuccess(t, err) {
		expectEquivalency(t, cmds)
		expectEquality(t, template, cmds)
	}

	err = cmds.AddHelp("HELP", map[string]string{
		"FOO": "Foo a bar",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmds.Help("FOO"), "Foo a bar\n\n  Usage: FOO <bar>")

	_, err = commandline.ParseCommandTemplate([]string{"FOO %<bar S"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"FOO %<>S"})
	test.ExpectFailure(t, err)
}
