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

// Package decode defines the interface to the instruction decoder and caches
// decoding results during a forward scan.
//
// The decoder is context sensitive. A single bit of state is carried from one
// instruction to the next, changing how the next word is decoded (the effect
// of an EXTEND instruction, for example). Decoding the same word twice with a
// different state can give a different, wrong, result. The Cache type makes
// sure that a word is decoded only once as a scan walks forward through
// memory, even if it is tested against more than one pattern item.
package decode

import "fmt"

// Instruction is the result of decoding a single word.
type Instruction struct {
	Mnemonic string
	Operand  string
}

func (ins Instruction) String() string {
	if ins.Operand == "" {
		return ins.Mnemonic
	}
	return fmt.Sprintf("%s %s", ins.Mnemonic, ins.Operand)
}

// NoWord is the pattern for errors returned by a Decoder when there is no word
// at bank/offset. A search treats a missing word as a mismatch rather than a
// failure.
const NoWord = "decode: no word at %02o,%04o"

// Decoder implementations turn the word at bank/offset into an Instruction.
// The extended argument is the state resulting from the previous instruction
// and the returned boolean is the state for the next instruction.
//
// Implementations must be deterministic. Missing words should be reported
// with a curated error using the NoWord pattern.
type Decoder interface {
	Decode(bank int, offset int, extended bool) (Instruction, bool, error)
}
