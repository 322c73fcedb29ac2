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

// Start is the first offset of an AddressRange. It is either a number or the
// name of a symbol, in which case the range starts on the word following the
// symbol.
type Start struct {
	offset int
	symbol string
}

// At returns a Start for a numeric offset.
func At(offset int) Start {
	return Start{offset: offset}
}

// After returns a Start that will be resolved during the search to the offset
// after the named symbol. Used to avoid finding a symbol again when two
// symbols have similar patterns.
func After(symbol string) Start {
	return Start{symbol: symbol}
}

// Symbol returns the name of the symbol the Start refers to. The boolean is
// false if the Start is numeric.
func (s Start) Symbol() (string, bool) {
	return s.symbol, s.symbol != ""
}

// Offset returns the numeric offset. Meaningless if Symbol() returns true.
func (s Start) Offset() int {
	return s.offset
}

func (s Start) String() string {
	if s.symbol != "" {
		return fmt.Sprintf("%s+1", s.symbol)
	}
	return fmt.Sprintf("%04o", s.offset)
}

// AddressRange is an area of memory to search. End is the first offset not in
// the range.
type AddressRange struct {
	Bank  int
	Start Start
	End   int
}

func (r AddressRange) String() string {
	return fmt.Sprintf("%02o,%s-%04o", r.Bank, r.Start, r.End)
}
