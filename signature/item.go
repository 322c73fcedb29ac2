// This file is part of specials.
//
// specials is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// specials is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with specials.  If not, see <https://www.gnu.org/licenses/>.

package signature

import "strings"

// Item matches a single instruction in a Variant.
type Item struct {
	// optional items are skipped if they don't match
	Required bool

	// acceptable mnemonics. an empty list matches any mnemonic
	Opcodes []string

	// acceptable operands. an empty list matches any operand
	Operands []Operand
}

func (it Item) opcodeMatch(mnemonic string) bool {
	for _, o := range it.Opcodes {
		if o == mnemonic {
			return true
		}
	}
	return false
}

func (it Item) operandMatch(operand string) bool {
	if len(it.Operands) == 0 {
		return true
	}
	for _, o := range it.Operands {
		if o.Matches(operand) {
			return true
		}
	}
	return false
}

// Match returns true if the decoded instruction is acceptable to the item.
// Empty opcode and operand lists act as wildcards.
func (it Item) Match(mnemonic string, operand string) bool {
	if len(it.Opcodes) > 0 && !it.opcodeMatch(mnemonic) {
		return false
	}
	return it.operandMatch(operand)
}

// MatchExplicit is like Match() except that an empty opcode list matches
// nothing. Used when extending a match backwards over leading optional items,
// where a wildcard would always succeed.
func (it Item) MatchExplicit(mnemonic string, operand string) bool {
	if !it.opcodeMatch(mnemonic) {
		return false
	}
	return it.operandMatch(operand)
}

func (it Item) clone() Item {
	c := Item{Required: it.Required}
	if it.Opcodes != nil {
		c.Opcodes = append([]string{}, it.Opcodes...)
	}
	if it.Operands != nil {
		c.Operands = append([]Operand{}, it.Operands...)
	}
	return c
}

func (it Item) String() string {
	s := strings.Builder{}
	if it.Required {
		s.WriteString("required ")
	} else {
		s.WriteString("optional ")
	}
	if len(it.Opcodes) == 0 {
		s.WriteString("*")
	} else {
		s.WriteString(strings.Join(it.Opcodes, "|"))
	}
	if len(it.Operands) > 0 {
		s.WriteString(" ")
		for i, o := range it.Operands {
			if i > 0 {
				s.WriteString("|")
			}
			s.WriteString(o.String())
		}
	}
	return s.String()
}
