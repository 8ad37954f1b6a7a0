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
)

type nodeType int

func (t nodeType) String() string {
	switch t {
	case nodeRoot:
		return "nodeRoot"
	case nodeRequired:
		return "nodeRequired"
	case nodeOptional:
		return "nodeOptional"
	}
	panic("unknown nodeType")
}

const (
	nodeRoot nodeType = iota + 1
	nodeRequired
	nodeOptional
)

// node is one keyword or placeholder of a command. nodes in the next array
// follow this node in order. nodes in the branch array are alternatives to
// this node.
type node struct {
	// tag is empty only for a node that starts with a nested group. the
	// nested group is the first entry in the next array
	tag string

	// label for a placeholder tag, without the angle brackets
	placeholderLabel string

	typ nodeType

	next   []*node
	branch []*node

	// repeatStart is true for the first node of a repeat group. every node
	// in the group, including branches, points to the first node with the
	// repeat field
	repeatStart bool
	repeat      *node
}

// String returns the template form of the node and its children. The output
// can be parsed again to create an equivalent node.
func (n node) String() string {
	return n.string(false)
}

// usageString is like String() but placeholders are shown by their label, if
// they have one.
func (n node) usageString() string {
	return n.string(true)
}

// string recreates the template entry for the node. group delimiters that
// have no effect are not output. for example:
//
//	TEST [1 [2] [3]]
//
// is output as:
//
//	TEST [1 2 3]
func (n node) string(useLabels bool) string {
	s := strings.Builder{}

	if n.isPlaceholder() && n.placeholderLabel != "" {
		if useLabels {
			fmt.Fprintf(&s, "<%s>", n.placeholderLabel)
		} else {
			fmt.Fprintf(&s, "%%<%s>%c", n.placeholderLabel, n.tag[1])
		}
	} else {
		s.WriteString(n.tag)
	}

	for _, nx := range n.next {
		s.WriteString(" ")

		if nx.repeatStart {
			s.WriteString("{")
		}

		// a group is delimited when the type changes, when there are
		// alternatives or when the group starts with a nested group. repeat
		// groups are optional by definition and don't need the optional
		// delimiter
		var openDelim, closeDelim string
		delimit := n.typ != nx.typ || nx.branch != nil || nx.tag == ""
		switch {
		case nx.typ == nodeRequired && delimit:
			openDelim, closeDelim = "[", "]"
		case nx.typ == nodeOptional && delimit && !nx.repeatStart:
			openDelim, closeDelim = "(", ")"
		}

		s.WriteString(openDelim)
		s.WriteString(nx.string(useLabels))
		s.WriteString(closeDelim)
	}

	for _, b := range n.branch {
		s.WriteString("|")
		s.WriteString(b.string(useLabels))
	}

	// the repeat group is closed by the node that opened it
	if n.repeatStart {
		s.WriteString("}")
	}

	return strings.TrimSpace(s.String())
}

// nodeVerbose returns a readable description of the node and its branches.
// used in error messages.
func (n node) nodeVerbose() string {
	if n.tag == "" && len(n.next) > 0 {
		return n.next[0].nodeVerbose()
	}

	s := strings.Builder{}
	s.WriteString(n.tagVerbose())
	for _, b := range n.branch {
		if b.tag != "" {
			s.WriteString(" or ")
			s.WriteString(b.tagVerbose())
		}
	}
	return s.String()
}

// tagVerbose returns a readable version of the tag, using the placeholder
// label if there is one.
func (n node) tagVerbose() string {
	if n.isPlaceholder() {
		if n.placeholderLabel != "" {
			return n.placeholderLabel
		}

		switch n.tag {
		case "%S":
			return "string argument"
		case "%N":
			return "numeric argument"
		case "%P":
			return "floating-point argument"
		case "%F":
			return "filename argument"
		default:
			return "placeholder argument"
		}
	}
	return n.tag
}

// isPlaceholder checks tag to see if it is a placeholder. It does not check
// that the placeholder type is valid.
func (n node) isPlaceholder() bool {
	return len(n.tag) == 2 && n.tag[0] == '%'
}
