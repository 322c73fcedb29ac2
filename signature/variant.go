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

// VariableDataWords is the DataWords value for subroutines where the number
// of data words following the call is not fixed.
const VariableDataWords = -1

// Variant is one pattern of instructions identifying a symbol.
type Variant struct {
	// address ranges searched in order
	Ranges []AddressRange

	// the instruction pattern. the last item must be required
	Items []Item

	// number of data words following a call to the subroutine. can be
	// VariableDataWords
	DataWords int

	// a call to the subroutine does not return
	NoReturn bool
}

// FallsThrough returns true if execution continues after a call to the
// subroutine and its data words.
func (v *Variant) FallsThrough() bool {
	return !v.NoReturn
}

// FirstRequired returns the index of the first required item. Items before
// this index are leading optional items. Returns -1 if there are no required
// items, which is never the case for a validated variant.
func (v *Variant) FirstRequired() int {
	for i := range v.Items {
		if v.Items[i].Required {
			return i
		}
	}
	return -1
}

// validate checks the variant for construction errors. The returned string is
// empty if there is no problem.
func (v *Variant) validate() string {
	if len(v.Items) == 0 {
		return "pattern is empty"
	}
	if !v.Items[len(v.Items)-1].Required {
		return "pattern ends with an optional item"
	}
	if len(v.Ranges) == 0 {
		return "no address ranges"
	}
	for _, r := range v.Ranges {
		if r.Bank < 0 || r.End < 0 {
			return "negative address in range " + r.String()
		}
		if _, ok := r.Start.Symbol(); !ok {
			if r.Start.Offset() < 0 || r.Start.Offset() > r.End {
				return "start after end in range " + r.String()
			}
		}
	}
	if v.DataWords < VariableDataWords {
		return "invalid data word count"
	}
	return ""
}

func (v *Variant) clone() *Variant {
	c := &Variant{
		Ranges:    append([]AddressRange{}, v.Ranges...),
		Items:     make([]Item, len(v.Items)),
		DataWords: v.DataWords,
		NoReturn:  v.NoReturn,
	}
	for i := range v.Items {
		c.Items[i] = v.Items[i].clone()
	}
	return c
}

// rewrite replaces placeholders for symbol with literal text. Returns the
// number of replacements.
func (v *Variant) rewrite(symbol string, text string) int {
	n := 0
	for i := range v.Items {
		for j, o := range v.Items[i].Operands {
			if o.IsPlaceholder() && o.Text() == symbol {
				v.Items[i].Operands[j] = Literal(text)
				n++
			}
		}
	}
	return n
}
