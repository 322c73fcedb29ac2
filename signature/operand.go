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

import "fmt"

// Operand is an entry in the operand list of an Item. It is either literal
// text or a placeholder naming another symbol.
type Operand struct {
	text        string
	placeholder bool
}

// Literal returns an operand that matches the decoded operand text exactly.
func Literal(text string) Operand {
	return Operand{text: text}
}

// Placeholder returns an operand standing in for the address of another
// symbol. It will not match anything until it is rewritten.
func Placeholder(symbol string) Operand {
	return Operand{text: symbol, placeholder: true}
}

// IsPlaceholder returns true if the operand has not yet been rewritten as a
// literal.
func (op Operand) IsPlaceholder() bool {
	return op.placeholder
}

// Text returns the literal text of the operand or, for placeholders, the name
// of the symbol.
func (op Operand) Text() string {
	return op.text
}

// Matches returns true if the operand is a literal equal to the decoded
// operand text.
func (op Operand) Matches(operand string) bool {
	return !op.placeholder && op.text == operand
}

func (op Operand) String() string {
	if op.placeholder {
		return fmt.Sprintf("<%s>", op.text)
	}
	return op.text
}
