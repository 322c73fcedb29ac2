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
	"testing"

	"github.com/virtualagc/specials/decode"
	"github.com/virtualagc/specials/listing"
	"github.com/virtualagc/specials/signature"
	"github.com/virtualagc/specials/test"
)

func words(bank int, instructions ...decode.Instruction) *listing.Listing {
	l := listing.NewListing()
	for i, ins := range instructions {
		l.Add(bank, i, ins)
	}
	return l
}

func ins(mnemonic string) decode.Instruction {
	return decode.Instruction{Mnemonic: mnemonic}
}

func pattern(items ...signature.Item) *signature.Variant {
	return &signature.Variant{Items: items}
}

func required(opcode string) signature.Item {
	return signature.Item{Required: true, Opcodes: []string{opcode}}
}

func optional(opcode string) signature.Item {
	if opcode == "" {
		return signature.Item{}
	}
	return signature.Item{Opcodes: []string{opcode}}
}

func TestForwardRequiredMismatch(t *testing.T) {
	l := words(2, ins("TC"), ins("CA"), ins("TS"))
	m := &matcher{cache: decode.NewCache(l)}

	_, ok, err := m.forward(pattern(required("TC"), required("TS")), 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestForwardOptionalSkip(t *testing.T) {
	v := pattern(required("TC"), optional("NOOP"), required("TS"))

	// optional item absent. the skipped item must not consume the TS
	l := words(2, ins("TC"), ins("TS"))
	m := &matcher{cache: decode.NewCache(l)}
	offset, ok, err := m.forward(v, 2, 0, 2)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, offset, 0)

	// the TS was compared against two items but decoded only once
	test.ExpectEquality(t, m.cache.Decodes(), 2)

	// optional item present
	l = words(2, ins("TC"), ins("NOOP"), ins("TS"))
	m = &matcher{cache: decode.NewCache(l)}
	offset, ok, err = m.forward(v, 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, offset, 0)
}

func TestForwardRangeEnd(t *testing.T) {
	l := words(2, ins("NOOP"), ins("TC"), ins("TS"))
	m := &matcher{cache: decode.NewCache(l)}
	v := pattern(required("TC"), required("TS"))

	// the pattern straddles the end of the range
	_, ok, err := m.forward(v, 2, 0, 2)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)

	offset, ok, err := m.forward(v, 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, offset, 1)
}

func TestForwardFirstMatchWins(t *testing.T) {
	l := words(2, ins("TS"), ins("NOOP"), ins("TS"))
	m := &matcher{cache: decode.NewCache(l)}

	offset, ok, err := m.forward(pattern(required("TS")), 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, offset, 0)
}

func TestForwardChainedState(t *testing.T) {
	l := listing.NewListing()
	l.Add(2, 0, ins("EXTEND"))
	l.AddExtended(2, 1, decode.Instruction{Mnemonic: "CA", Operand: "0004"}, decode.Instruction{Mnemonic: "DCA", Operand: "0004"})

	m := &matcher{cache: decode.NewCache(l)}
	offset, ok, err := m.forward(pattern(required("EXTEND"), required("DCA")), 2, 0, 2)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, offset, 0)

	// starting on the second word the state is at baseline
	_, ok, err = m.forward(pattern(required("DCA")), 2, 1, 2)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestBackwardNeverReachesStart(t *testing.T) {
	l := words(2, ins("RELINT"), ins("EXTEND"), ins("TS"))
	m := &matcher{cache: decode.NewCache(l)}
	v := pattern(optional("RELINT"), required("EXTEND"), required("TS"))

	// RELINT is on the first word of the range and is not included
	offset, err := m.backward(v, 2, 0, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 1)
}

func TestBackwardStopsAtMismatch(t *testing.T) {
	v := pattern(optional("INHINT"), optional("RELINT"), required("EXTEND"))

	// the RELINT is absent so the INHINT is not reached, even though it
	// is present two words earlier
	l := words(2, ins("NOOP"), ins("INHINT"), ins("NOOP"), ins("EXTEND"))
	m := &matcher{cache: decode.NewCache(l)}
	offset, err := m.backward(v, 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 3)

	// both present
	l = words(2, ins("NOOP"), ins("INHINT"), ins("RELINT"), ins("EXTEND"))
	m = &matcher{cache: decode.NewCache(l)}
	offset, err = m.backward(v, 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 1)

	// only the nearer present
	l = words(2, ins("NOOP"), ins("NOOP"), ins("RELINT"), ins("EXTEND"))
	m = &matcher{cache: decode.NewCache(l)}
	offset, err = m.backward(v, 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 2)
}

func TestBackwardNeedsExplicitOpcode(t *testing.T) {
	l := words(2, ins("NOOP"), ins("NOOP"), ins("EXTEND"))
	m := &matcher{cache: decode.NewCache(l)}

	// a wildcard leading item would match anything so never extends the match
	offset, err := m.backward(pattern(optional(""), required("EXTEND")), 2, 0, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 2)
}

func TestBackwardOperands(t *testing.T) {
	l := listing.NewListing()
	l.Add(2, 0, ins("NOOP"))
	l.Add(2, 1, decode.Instruction{Mnemonic: "CA", Operand: "0006"})
	l.Add(2, 2, ins("EXTEND"))
	m := &matcher{cache: decode.NewCache(l)}

	ca := signature.Item{Opcodes: []string{"CA"}, Operands: []signature.Operand{signature.Literal("0004")}}
	offset, err := m.backward(pattern(ca, required("EXTEND")), 2, 0, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 2)

	ca.Operands = append(ca.Operands, signature.Literal("0006"))
	offset, err = m.backward(pattern(ca, required("EXTEND")), 2, 0, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 1)
}

func TestBackwardBaselineState(t *testing.T) {
	// the word before the match decodes as DCA only if the decode state is
	// chained from the EXTEND before it. the backward phase decodes with the
	// state at baseline and so sees CA
	l := listing.NewListing()
	l.Add(2, 0, ins("NOOP"))
	l.Add(2, 1, ins("EXTEND"))
	l.AddExtended(2, 2, decode.Instruction{Mnemonic: "CA", Operand: "0004"}, decode.Instruction{Mnemonic: "DCA", Operand: "0004"})
	l.Add(2, 3, ins("TS"))
	m := &matcher{cache: decode.NewCache(l)}

	offset, err := m.backward(pattern(optional("DCA"), required("TS")), 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 3)

	offset, err = m.backward(pattern(optional("CA"), required("TS")), 2, 0, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, offset, 2)
}
