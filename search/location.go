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

package search

import (
	"fmt"

	"github.com/virtualagc/specials/signature"
)

// Location is the result of searching for a symbol.
type Location struct {
	Symbol string

	// if Found is false then none of the other fields are meaningful
	Found bool

	Bank   int
	Offset int

	// address in the canonical window. only meaningful if HasCanonical is
	// true
	Canonical    int
	HasCanonical bool

	// the variant that matched and its index in the entry
	Variant      *signature.Variant
	VariantIndex int

	// copied from the matching variant
	DataWords int
	NoReturn  bool
}

// unresolved returns the Location for a symbol that could not be found.
func unresolved(symbol string) Location {
	return Location{Symbol: symbol}
}

func (loc Location) String() string {
	if !loc.Found {
		return fmt.Sprintf("%s unresolved", loc.Symbol)
	}
	if loc.HasCanonical {
		return fmt.Sprintf("%s %02o,%04o (%04o)", loc.Symbol, loc.Bank, loc.Offset, loc.Canonical)
	}
	return fmt.Sprintf("%s %02o,%04o", loc.Symbol, loc.Bank, loc.Offset)
}
