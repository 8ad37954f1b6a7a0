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
	"strconv"
	"strings"

	"github.com/jetsetilly/msp430sim/curated"
)

// Sentinal error patterns returned by Validate() and ValidateTokens().
const (
	UnrecognisedCommand  = "unrecognised command (%s)"
	UnrecognisedArgument = "unrecognised argument (%s)"
	UnexpectedArgument   = "unrecognised argument (%s) for %s"
	ArgumentRequired     = "%s required"
	NoHelp               = "no help for %s"
)

// Validate input string against the command definitions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens is like Validate but works on tokens rather than an input
// string. The tokens are normalised as they are validated. Call Reset() on
// the tokens before processing them.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	cmd, ok := tokens.Peek()
	if !ok {
		return nil
	}
	cmd = strings.ToUpper(cmd)

	n, ok := cmds.Index[cmd]
	if !ok {
		return curated.Errorf(UnrecognisedCommand, cmd)
	}

	err := n.validate(tokens, false)
	if err != nil {
		return err
	}

	// tokens that are left over once the command has been validated cannot
	// be matched to anything
	if tokens.Remaining() > 0 {
		arg, _ := tokens.Get()
		if cmd == cmds.helpCommand {
			return curated.Errorf(NoHelp, strings.ToUpper(arg))
		}
		return curated.Errorf(UnexpectedArgument, arg, cmd)
	}

	return nil
}

// validate the next token against the node. speculative is true when the
// caller is trying the node as one of several alternatives. an optional node
// that does not match is an error when validation is speculative.
func (n *node) validate(tokens *Tokens, speculative bool) error {
	tok, ok := tokens.Get()
	if !ok {
		// arguments in the root group are treated as though they are required
		if n.typ == nodeRequired || n.typ == nodeRoot {
			return curated.Errorf(ArgumentRequired, n.nodeVerbose())
		}
		return nil
	}

	// a node with an empty tag is the start of a nested group. the token is
	// validated against the group instead
	if n.tag == "" {
		if n.next == nil {
			return fmt.Errorf("commandline: illegal empty node")
		}

		tokens.Unget()
		mark := tokens.curr

		var err error
		for _, nx := range n.next {
			err = nx.validate(tokens, true)
			if err != nil {
				break
			}
		}

		if err != nil {
			for _, b := range n.branch {
				tokens.curr = mark
				if b.validate(tokens, true) == nil {
					return nil
				}
			}

			// an optional group that doesn't match leaves the tokens for the
			// nodes that follow
			if n.typ == nodeOptional && !speculative {
				tokens.curr = mark
				return nil
			}

			return err
		}

		if n.repeat != nil && tokens.Remaining() > 0 {
			return n.repeat.validate(tokens, false)
		}

		return nil
	}

	// numbers can be written with the $ prefix but the strconv package only
	// understands 0x
	if len(tok) > 0 && tok[0] == '$' {
		tok = fmt.Sprintf("0x%s", tok[1:])
		tokens.Update(tok)
	}

	// a tentative match is a match that should be used only if none of the
	// branches are a better match. a filename matches anything but a keyword
	// in a branch would be a better match
	match := false
	tentativeMatch := false

	switch n.tag {
	case "%N":
		_, err := strconv.ParseInt(tok, 0, 32)
		match = err == nil

	case "%P":
		_, err := strconv.ParseFloat(tok, 64)
		match = err == nil

	case "%S":
		match = true

	case "%F":
		tentativeMatch = true
		match = n.branch == nil

	default:
		// keywords are matched without regard to case and are normalised
		tok = strings.ToUpper(tok)
		match = tok == n.tag
		if match {
			tokens.Update(tok)
		}
	}

	if !match {
		for _, b := range n.branch {
			tokens.Unget()
			if b.validate(tokens, true) == nil {
				return nil
			}
		}
		match = tentativeMatch
	}

	if !match {
		// a bad argument gets the same error whatever the node expects. an
		// error saying that the argument is not a number is misleading if
		// the argument is a mistyped keyword of an optional group
		err := curated.Errorf(UnrecognisedArgument, tok)
		if speculative || n.typ != nodeOptional {
			return err
		}

		// the node is optional so the token might be for the nodes that
		// follow
		tokens.Unget()
		return nil
	}

	for _, nx := range n.next {
		err := nx.validate(tokens, false)
		if err != nil {
			return err
		}
	}

	// continue with the repeat group if there are more tokens
	if n.repeat != nil && tokens.Remaining() > 0 {
		return n.repeat.validate(tokens, false)
	}

	return nil
}
