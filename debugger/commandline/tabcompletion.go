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
	"strconv"
	"strings"
)

// TabCompletion transforms input so that the last word is completed to a
// keyword that is valid at that point of the command. It implements the
// terminal.Completer interface.
type TabCompletion struct {
	cmds *Commands

	// the input preceding the word being completed and the possible
	// completions of the word
	prefix     string
	options    []string
	lastOption int

	// the string most recently returned by Complete(). if the next call is
	// with the same string then the next option is returned
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance for the commands.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{
		cmds: cmds,
	}
}

// Reset ends the current completion session. The next call to Complete() will
// start a new session even if the input is the same as the previous result.
func (tc *TabCompletion) Reset() {
	tc.prefix = ""
	tc.options = tc.options[:0]
	tc.lastOption = 0
	tc.lastCompletion = ""
}

// Complete the last word of the input. The input preceding the last word is
// preserved. The input is returned unchanged if there is nothing to complete.
func (tc *TabCompletion) Complete(input string) string {
	if input != "" && input == tc.lastCompletion {
		if len(tc.options) <= 1 {
			return input
		}
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
		tc.lastCompletion = tc.prefix + tc.options[tc.lastOption] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	start := strings.LastIndexAny(input, " \t") + 1
	trigger := strings.ToUpper(input[start:])
	if trigger == "" {
		return input
	}

	wlk := walker{trigger: trigger}

	toks := TokeniseInput(input[:start])
	if cmd, ok := toks.Get(); !ok {
		for _, c := range tc.cmds.cmds {
			wlk.add(c.tag)
		}
	} else {
		c, ok := tc.cmds.Index[strings.ToUpper(cmd)]
		if !ok {
			return input
		}
		wlk.sequence(c.next, toks.tokens[toks.curr:], func([]string) {})
	}

	if len(wlk.options) == 0 {
		return input
	}

	tc.prefix = input[:start]
	tc.options = append(tc.options, wlk.options...)
	tc.lastCompletion = tc.prefix + tc.options[0] + " "

	return tc.lastCompletion
}

// walker follows every path through the node tree that matches the words
// preceding the word being completed. the keywords that could follow those
// words are collected as options.
type walker struct {
	trigger string
	options []string
}

// add keyword to the list of options if it starts with the trigger. each
// keyword is added only once.
func (wlk *walker) add(keyword string) {
	if !strings.HasPrefix(keyword, wlk.trigger) {
		return
	}
	for _, o := range wlk.options {
		if o == keyword {
			return
		}
	}
	wlk.options = append(wlk.options, keyword)
}

// sequence walks the nodes in order. the continuation is called with the
// words that remain after the sequence has been matched.
func (wlk *walker) sequence(nodes []*node, words []string, cont func([]string)) {
	if len(nodes) == 0 {
		cont(words)
		return
	}
	wlk.alternatives(nodes[0], words, func(words []string) {
		wlk.sequence(nodes[1:], words, cont)
	})
}

// alternatives walks the node and each of its branches.
func (wlk *walker) alternatives(n *node, words []string, cont func([]string)) {
	wlk.single(n, words, cont)
	for _, b := range n.branch {
		wlk.single(b, words, cont)
	}

	// an optional group can be skipped
	if n.typ == nodeOptional {
		cont(words)
	}
}

func (wlk *walker) single(n *node, words []string, cont func([]string)) {
	after := func(rest []string) {
		wlk.sequence(n.next, rest, func(rest []string) {
			// a repeat group can start again only if words were consumed.
			// a group of optional nodes would otherwise repeat forever
			if n.repeat != nil && len(rest) < len(words) {
				wlk.alternatives(n.repeat, rest, cont)
				return
			}
			cont(rest)
		})
	}

	if n.tag == "" {
		after(words)
		return
	}

	// no more words so this node is a candidate for the completion
	if len(words) == 0 {
		if !n.isPlaceholder() {
			wlk.add(n.tag)
		}
		return
	}

	if !n.matches(words[0]) {
		return
	}

	after(words[1:])
}

// matches returns true if the word would be accepted by the node.
func (n *node) matches(word string) bool {
	if len(word) > 0 && word[0] == '$' {
		word = "0x" + word[1:]
	}

	switch n.tag {
	case "%N":
		_, err := strconv.ParseInt(word, 0, 32)
		return err == nil
	case "%P":
		_, err := strconv.ParseFloat(word, 64)
		return err == nil
	case "%S", "%F":
		return true
	}

	return strings.ToUpper(word) == n.tag
}
