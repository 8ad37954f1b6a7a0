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

	"github.com/jetsetilly/msp430sim/curated"
)

// Sentinal error patterns returned by ParseCommandTemplate().
const (
	ParseError     = "commandline: %s: %v (char %d)"
	AlreadyDefined = "commandline: %s: already defined"
)

// ParseCommandTemplate turns a list of command definitions into a Commands
// instance. The first word of each definition is the command keyword. See the
// package documentation for the template syntax.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
		cmds:  make([]*node, 0, len(template)),
	}

	for _, defn := range template {
		n, d, err := parseDefinition(defn)
		if err != nil {
			return nil, curated.Errorf(ParseError, defn, err, d)
		}

		if _, ok := cmds.Index[n.tag]; ok {
			return nil, curated.Errorf(AlreadyDefined, n.tag)
		}

		cmds.cmds = append(cmds.cmds, n)
		cmds.Index[n.tag] = n
	}

	return cmds, nil
}

// characters that end a word in a definition.
const delimiters = " \t()[]{}|"

type parser struct {
	defn string
	i    int
}

// parseDefinition returns the root node of a single command definition. in
// the event of an error the position in the definition is also returned.
func parseDefinition(defn string) (*node, int, error) {
	p := &parser{defn: defn}

	p.skipSpace()
	if p.atEnd() {
		return nil, p.i, curated.Errorf("empty definition")
	}

	if strings.IndexByte(delimiters, p.defn[p.i]) >= 0 || p.defn[p.i] == '%' {
		return nil, p.i, curated.Errorf("definition must begin with a keyword")
	}

	root, err := p.word(nodeRoot)
	if err != nil {
		return nil, p.i, err
	}

	root.next, err = p.sequence(nodeRoot)
	if err != nil {
		return nil, p.i, err
	}

	// sequence() stops at the close of a group or at a group separator. at
	// the top level either of those is an error
	if !p.atEnd() {
		return nil, p.i, curated.Errorf("unexpected %c", p.defn[p.i])
	}

	return root, 0, nil
}

func (p *parser) atEnd() bool {
	return p.i >= len(p.defn)
}

func (p *parser) skipSpace() {
	for !p.atEnd() && (p.defn[p.i] == ' ' || p.defn[p.i] == '\t') {
		p.i++
	}
}

// sequence parses words and groups until the end of the definition, a group
// separator or the close of a group.
func (p *parser) sequence(typ nodeType) ([]*node, error) {
	var seq []*node

	for {
		p.skipSpace()
		if p.atEnd() {
			return seq, nil
		}

		var n *node
		var err error

		switch p.defn[p.i] {
		case '|', ')', ']', '}':
			return seq, nil
		case '(', '[', '{':
			n, err = p.group()
		default:
			n, err = p.word(typ)
		}
		if err != nil {
			return nil, err
		}

		seq = append(seq, n)
	}
}

// group parses a bracketed group of alternatives. the first alternative is
// returned and the other alternatives are in the branch array.
func (p *parser) group() (*node, error) {
	open := p.defn[p.i]
	p.i++

	var typ nodeType
	var closing byte
	switch open {
	case '[':
		typ = nodeRequired
		closing = ']'
	case '(':
		typ = nodeOptional
		closing = ')'
	case '{':
		typ = nodeOptional
		closing = '}'
	}

	var head *node

	for {
		start := p.i
		seq, err := p.sequence(typ)
		if err != nil {
			return nil, err
		}

		if p.atEnd() {
			return nil, curated.Errorf("unclosed %c group", open)
		}

		if len(seq) == 0 {
			p.i = start
			return nil, curated.Errorf("empty alternative in %c group", open)
		}

		alt := seq[0]
		if p.isNested(start) {
			// the alternative starts with a nested group
			alt = &node{typ: typ, next: seq}
		} else {
			alt.next = append(alt.next, seq[1:]...)
		}

		if head == nil {
			head = alt
		} else {
			head.branch = append(head.branch, alt)
		}

		c := p.defn[p.i]
		p.i++

		if c == closing {
			break
		}
		if c != '|' {
			p.i--
			return nil, curated.Errorf("unexpected %c in %c group", c, open)
		}
	}

	if open == '{' {
		head.repeatStart = true
		head.repeat = head
		for _, b := range head.branch {
			b.repeat = head
		}
	}

	return head, nil
}

// isNested returns true if the sequence starting at position i of the
// definition begins with a group.
func (p *parser) isNested(i int) bool {
	for i < len(p.defn) && (p.defn[i] == ' ' || p.defn[i] == '\t') {
		i++
	}
	return i < len(p.defn) && strings.IndexByte("([{", p.defn[i]) >= 0
}

// word parses a single keyword or placeholder.
func (p *parser) word(typ nodeType) (*node, error) {
	if p.defn[p.i] == '%' {
		return p.placeholder(typ)
	}

	start := p.i
	for !p.atEnd() && strings.IndexByte(delimiters, p.defn[p.i]) < 0 {
		if p.defn[p.i] == '%' {
			return nil, curated.Errorf("placeholder must be separated from surrounding text")
		}
		p.i++
	}

	return &node{
		tag: strings.ToUpper(p.defn[start:p.i]),
		typ: typ,
	}, nil
}

// placeholder parses a placeholder directive. the directive may include a
// label.
func (p *parser) placeholder(typ nodeType) (*node, error) {
	n := &node{typ: typ}

	// skip % character
	p.i++

	if !p.atEnd() && p.defn[p.i] == '<' {
		end := strings.IndexByte(p.defn[p.i:], '>')
		if end < 0 {
			return nil, curated.Errorf("unclosed placeholder label")
		}
		n.placeholderLabel = p.defn[p.i+1 : p.i+end]
		if n.placeholderLabel == "" {
			return nil, curated.Errorf("empty placeholder label")
		}
		p.i += end + 1
	}

	if p.atEnd() {
		return nil, curated.Errorf("incomplete placeholder")
	}

	c := p.defn[p.i]
	switch c {
	case 'S', 's', 'N', 'n', 'P', 'p', 'F', 'f', '%':
		n.tag = strings.ToUpper(string([]byte{'%', c}))
	default:
		return nil, curated.Errorf("unknown placeholder (%%%c)", c)
	}
	p.i++

	if !p.atEnd() && strings.IndexByte(delimiters, p.defn[p.i]) < 0 {
		return nil, curated.Errorf("placeholder must be separated from surrounding text")
	}

	return n, nil
}
