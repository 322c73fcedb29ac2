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

// Package signature defines the catalog of instruction patterns used to
// locate special subroutines in disassembled code.
//
// A Catalog is an ordered list of Entry, one per symbol. Each Entry has one or
// more Variant, tried in order during the search. A Variant is a list of
// AddressRange to search and a sequence of Item. An Item matches a single
// instruction and may be required or optional:
//
//	v := &signature.Variant{
//		Ranges: []signature.AddressRange{
//			{Bank: 3, Start: signature.At(0o0000), End: 0o0200},
//		},
//		Items: []signature.Item{
//			{Required: false, Opcodes: []string{"RELINT"}},
//			{Required: true, Opcodes: []string{"EXTEND"}},
//			{Required: true, Opcodes: []string{"QXCH"}},
//			{Required: true, Opcodes: []string{"CA"}, Operands: []signature.Operand{
//				signature.Literal("0004"), signature.Literal("0006"),
//			}},
//		},
//	}
//
// An empty opcode or operand list matches anything.
//
// Operands are either literal text, exactly as produced by the decoder, or a
// placeholder naming another symbol in the catalog. Placeholders never match
// an instruction. When the named symbol is located the placeholder is replaced
// with the literal text of the symbol's address with Catalog.Rewrite().
//
// Similarly, the start of an AddressRange can name another symbol with
// After(). The range then begins on the word after that symbol.
//
// The catalog is validated when it is created with NewCatalog(). Symbols can
// only refer to symbols declared before them.
package signature
