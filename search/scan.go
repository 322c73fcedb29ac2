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
	"strings"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/decode"
	"github.com/virtualagc/specials/logger"
	"github.com/virtualagc/specials/signature"
)

// Sentinal patterns for search errors.
const (
	DecodeError        = "search: %s: %v"
	PendingPlaceholder = "search: operand placeholders never resolved: %s"
)

// Scan searches for every symbol in the catalog and returns the registry of
// results.
//
// Operand placeholders in the catalog are rewritten as symbols are found.
// Scanning the same catalog a second time is possible but the catalog will no
// longer contain placeholders. Use Catalog.Clone() if the original is
// required.
//
// If placeholders remain in the catalog once every symbol has been processed
// then the registry is returned along with a PendingPlaceholder error. A
// decoding error stops the scan and the partial registry is returned. A word
// missing from memory is not an error, it is a mismatch.
func Scan(cat *signature.Catalog, dec decode.Decoder, cfg Config) (*Registry, error) {
	reg := newRegistry()
	m := &matcher{cache: decode.NewCache(dec)}

	for _, e := range cat.Entries() {
		loc, err := m.locate(e, reg)
		if err != nil {
			return reg, curated.Errorf(DecodeError, e.Symbol, err)
		}

		if loc.Found {
			loc.Canonical, loc.HasCanonical = cfg.Canonical(loc.Bank, loc.Offset)
			logger.Logf(logger.Allow, "search", "%s", loc)
		} else {
			logger.Logf(logger.Allow, "search", "%s not found", e.Symbol)
		}

		if err := reg.record(loc); err != nil {
			return reg, err
		}

		// placeholders can only be rewritten with canonical addresses
		if loc.HasCanonical {
			text := cfg.FormatOperand(loc.Canonical)
			if n := cat.Rewrite(e.Symbol, text); n > 0 {
				logger.Logf(logger.Allow, "search", "%d operand(s) referring to %s are now %s", n, e.Symbol, text)
			}
		}
	}

	if pending := cat.Pending(); len(pending) > 0 {
		return reg, curated.Errorf(PendingPlaceholder, strings.Join(pending, ", "))
	}

	return reg, nil
}

// locate tries every variant and every range of the entry until the symbol
// is found.
func (m *matcher) locate(e *signature.Entry, reg *Registry) (Location, error) {
	for vi, v := range e.Variants {
		for _, r := range v.Ranges {
			start, ok := rangeStart(r, reg)
			if !ok {
				ref, _ := r.Start.Symbol()
				logger.Logf(logger.Allow, "search", "%s: skipping range %s because %s is unresolved", e.Symbol, r, ref)
				continue
			}

			offset, ok, err := m.forward(v, r.Bank, start, r.End)
			if err != nil {
				return Location{}, err
			}
			if !ok {
				continue
			}

			offset, err = m.backward(v, r.Bank, start, offset)
			if err != nil {
				return Location{}, err
			}

			return Location{
				Symbol:       e.Symbol,
				Found:        true,
				Bank:         r.Bank,
				Offset:       offset,
				Variant:      v,
				VariantIndex: vi,
				DataWords:    v.DataWords,
				NoReturn:     v.NoReturn,
			}, nil
		}
	}

	return unresolved(e.Symbol), nil
}

// rangeStart returns the first offset of the range. If the start refers to a
// symbol then the range begins on the word after that symbol. The boolean is
// false if the referred to symbol has not been found.
func rangeStart(r signature.AddressRange, reg *Registry) (int, bool) {
	ref, ok := r.Start.Symbol()
	if !ok {
		return r.Start.Offset(), true
	}
	loc, ok := reg.Resolved(ref)
	if !ok {
		return 0, false
	}
	return loc.Offset + 1, true
}
