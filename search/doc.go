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

// Package search locates the symbols of a signature.Catalog in disassembled
// memory.
//
// Scan() processes the symbols of the catalog in order. For each symbol the
// variants are tried in order and for each variant the address ranges are
// tried in order. The first offset in a range where the pattern matches is the
// location of the symbol.
//
// Matching happens in two phases. The forward phase walks from the candidate
// offset, starting with the first required item of the pattern. An item that
// doesn't match ends the attempt if it is required and is skipped if it is
// optional. Skipping an item does not move on to the next instruction. The
// decode state is carried from one instruction to the next.
//
// Once a match has been found, the backward phase checks the leading optional
// items that were skipped by the forward phase. Each is compared with the
// instruction immediately before the match, and if it matches then the
// location of the symbol moves back by one word. Instructions are decoded
// individually in the backward phase, with the decode state at baseline, and
// an optional item needs an explicit opcode to match.
//
// Each symbol found is recorded in the Registry. If the symbol is in the
// canonical window then its canonical address is substituted for operand
// placeholders in the catalog, so that symbols processed afterwards can match
// instructions referring to it.
//
// Symbols that are not found are recorded as unresolved. This is not an
// error. Nor is a gap in memory: a word the decoder reports as decode.NoWord
// never matches a pattern item.
package search
