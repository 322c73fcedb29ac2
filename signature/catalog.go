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

import (
	"github.com/virtualagc/specials/curated"
)

// Sentinal patterns for construction errors.
const (
	MalformedVariant = "signature: %s: variant %d: %s"
	UnknownSymbol    = "signature: %s: refers to %s which is not declared before it"
	DuplicateSymbol  = "signature: %s: declared more than once"
	EmptySymbol      = "signature: entry %d: no symbol name"
	NoVariants       = "signature: %s: no variants"
)

// Entry is a symbol and the variants of the pattern that identify it.
type Entry struct {
	Symbol   string
	Variants []*Variant
}

// Catalog is the ordered list of symbols to search for. The order is
// significant because a symbol can only refer to symbols before it.
//
// Once created, the only change made to a Catalog is the rewriting of operand
// placeholders.
type Catalog struct {
	entries []*Entry

	// index into entries by symbol name
	index map[string]int
}

// NewCatalog is the preferred method of initialisation for the Catalog type.
// Entries are validated and an error is returned for the first malformed
// entry.
func NewCatalog(entries ...*Entry) (*Catalog, error) {
	cat := &Catalog{
		entries: make([]*Entry, 0, len(entries)),
		index:   make(map[string]int),
	}

	for i, e := range entries {
		if e.Symbol == "" {
			return nil, curated.Errorf(EmptySymbol, i)
		}
		if _, ok := cat.index[e.Symbol]; ok {
			return nil, curated.Errorf(DuplicateSymbol, e.Symbol)
		}
		if len(e.Variants) == 0 {
			return nil, curated.Errorf(NoVariants, e.Symbol)
		}

		for vi, v := range e.Variants {
			if s := v.validate(); s != "" {
				return nil, curated.Errorf(MalformedVariant, e.Symbol, vi, s)
			}

			// references must be to symbols already in the index. this
			// excludes references to the symbol itself
			for _, r := range v.Ranges {
				if ref, ok := r.Start.Symbol(); ok {
					if _, ok := cat.index[ref]; !ok {
						return nil, curated.Errorf(UnknownSymbol, e.Symbol, ref)
					}
				}
			}
			for _, it := range v.Items {
				for _, o := range it.Operands {
					if o.IsPlaceholder() {
						if _, ok := cat.index[o.Text()]; !ok {
							return nil, curated.Errorf(UnknownSymbol, e.Symbol, o.Text())
						}
					}
				}
			}
		}

		cat.index[e.Symbol] = len(cat.entries)
		cat.entries = append(cat.entries, e)
	}

	return cat, nil
}

// Entries returns the entries in the catalog in declaration order.
func (cat *Catalog) Entries() []*Entry {
	return cat.entries
}

// Len returns the number of symbols in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.entries)
}

// Lookup returns the entry for the named symbol.
func (cat *Catalog) Lookup(symbol string) (*Entry, bool) {
	if i, ok := cat.index[symbol]; ok {
		return cat.entries[i], true
	}
	return nil, false
}

// Clone returns a deep copy of the catalog. Rewriting the operands of the
// clone does not affect the original.
func (cat *Catalog) Clone() *Catalog {
	c := &Catalog{
		entries: make([]*Entry, len(cat.entries)),
		index:   make(map[string]int, len(cat.index)),
	}
	for i, e := range cat.entries {
		ce := &Entry{
			Symbol:   e.Symbol,
			Variants: make([]*Variant, len(e.Variants)),
		}
		for j, v := range e.Variants {
			ce.Variants[j] = v.clone()
		}
		c.entries[i] = ce
		c.index[e.Symbol] = i
	}
	return c
}

// Rewrite replaces every placeholder for symbol, in every variant of every
// entry, with the literal text. Returns the number of replacements made.
func (cat *Catalog) Rewrite(symbol string, text string) int {
	n := 0
	for _, e := range cat.entries {
		for _, v := range e.Variants {
			n += v.rewrite(symbol, text)
		}
	}
	return n
}

// Pending returns the names of symbols that are still referred to by operand
// placeholders, in the order they are first seen.
func (cat *Catalog) Pending() []string {
	var pending []string
	seen := make(map[string]bool)
	for _, e := range cat.entries {
		for _, v := range e.Variants {
			for _, it := range v.Items {
				for _, o := range it.Operands {
					if o.IsPlaceholder() && !seen[o.Text()] {
						seen[o.Text()] = true
						pending = append(pending, o.Text())
					}
				}
			}
		}
	}
	return pending
}
