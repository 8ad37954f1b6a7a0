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
	"fmt"
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
)

// Commands is the root of the node tree.
type Commands struct {
	// Index of the commands by keyword
	Index map[string]*node

	// commands in the order they were defined
	cmds []*node

	helpCommand string
	helpCols    int
	helpColFmt  string
	helps       map[string]string
}

// Len implements sort.Interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements sort.Interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].tag < cmds.cmds[j].tag
}

// Swap implements sort.Interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

// String returns the template that would create the Commands instance. One
// command per line.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Keywords returns the command keywords in the order they were defined.
func (cmds Commands) Keywords() []string {
	kw := make([]string, 0, len(cmds.cmds))
	for _, c := range cmds.cmds {
		kw = append(kw, c.tag)
	}
	return kw
}

// AddHelp adds a help command. The command takes an optional argument which
// is the keyword of any command, including the help command itself. The
// helps map is keyed by keyword.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	helpCommand = strings.ToUpper(helpCommand)

	if _, ok := cmds.Index[helpCommand]; ok {
		return curated.Errorf(AlreadyDefined, helpCommand)
	}

	cmds.helps = helps

	defn := strings.Builder{}
	defn.WriteString(helpCommand)
	defn.WriteString(" (")

	longest := len(helpCommand)
	for _, c := range cmds.cmds {
		defn.WriteString(c.tag)
		defn.WriteString("|")
		longest = max(longest, len(c.tag))
	}
	defn.WriteString(helpCommand)
	defn.WriteString(")")

	p, d, err := parseDefinition(defn.String())
	if err != nil {
		return curated.Errorf(ParseError, helpCommand, err, d)
	}

	cmds.cmds = append(cmds.cmds, p)
	cmds.Index[p.tag] = p

	// sizing information for the help overview
	cmds.helpCommand = helpCommand
	cmds.helpCols = 80 / (longest + 3)
	cmds.helpColFmt = fmt.Sprintf("%%%ds", longest+3)

	return nil
}

// HelpOverview returns a columnised list of all commands. The list is not
// columnised if AddHelp() has not been called.
func (cmds Commands) HelpOverview() string {
	if cmds.helpCols == 0 {
		return strings.Join(cmds.Keywords(), " ")
	}

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		fmt.Fprintf(&s, cmds.helpColFmt, c.tag)
		if i%cmds.helpCols == cmds.helpCols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}

// Help returns the help text and the usage of a command.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	helpTxt, ok := cmds.helps[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}

	s := strings.Builder{}
	s.WriteString(helpTxt)
	if cmd, ok := cmds.Index[keyword]; ok {
		s.WriteString("\n\n  Usage: ")
		s.WriteString(cmd.usageString())
	}

	return s.String()
}
