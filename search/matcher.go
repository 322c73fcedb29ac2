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
	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/decode"
	"github.com/virtualagc/specials/signature"
)

// matcher finds a variant pattern in a range of memory.
type matcher struct {
	cache *decode.Cache
}

// forward tries every offset in the range [start, end) and returns the first
// at which the pattern matches. No instruction at or beyond end is examined.
//
// The returned offset is the location of the first required item. Leading
// optional items are not considered. See backward().
func (m *matcher) forward(v *signature.Variant, bank int, start int, end int) (int, bool, error) {
	first := v.FirstRequired()
	if first < 0 {
		return 0, false, nil
	}

	for candidate := start; candidate < end; candidate++ {
		ok, err := m.walk(v, first, bank, candidate, end)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return candidate, true, nil
		}
	}

	return 0, false, nil
}

// walk compares the pattern, from item idx onwards, with the instructions
// starting at offset.
func (m *matcher) walk(v *signature.Variant, idx int, bank int, offset int, end int) (bool, error) {
	// every candidate begins with the decode state at baseline
	m.cache.Reset()

	for idx < len(v.Items) {
		if offset >= end {
			return false, nil
		}

		ins, err := m.cache.Decode(bank, offset)
		if err != nil {
			// a gap in memory can't match anything
			if curated.Has(err, decode.NoWord) {
				return false, nil
			}
			return false, err
		}

		it := v.Items[idx]
		if it.Match(ins.Mnemonic, ins.Operand) {
			idx++
			offset++
			continue
		}

		if it.Required {
			return false, nil
		}

		// optional item didn't match. the same instruction is compared with
		// the next item
		idx++
	}

	return true, nil
}

// backward extends a match found by forward() over any leading optional items
// that are present immediately before it. The returned offset is never less
// than or equal to start.
//
// Each instruction is decoded with the decode state at baseline, rather than
// being chained from the instruction before it. Decoding backwards cannot
// know the state left by the preceding instruction.
func (m *matcher) backward(v *signature.Variant, bank int, start int, offset int) (int, error) {
	best := offset

	for idx := v.FirstRequired() - 1; idx >= 0; idx-- {
		if offset-1 <= start {
			break
		}
		offset--

		ins, err := m.cache.Fresh(bank, offset)
		if err != nil {
			if curated.Has(err, decode.NoWord) {
				break
			}
			return best, err
		}

		if !v.Items[idx].MatchExplicit(ins.Mnemonic, ins.Operand) {
			break
		}

		best = offset
	}

	return best, nil
}
