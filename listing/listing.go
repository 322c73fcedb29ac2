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

// Package listing provides a decode.Decoder over an already disassembled
// listing of memory.
//
// The listing is a text file with one word per line:
//
//	# bank offset mnemonic [operand] [/ mnemonic [operand]]
//	03 0000 RELINT
//	03 0001 EXTEND
//	03 0002 QXCH 0014
//	03 0003 CA 0004 / DCA 0004
//
// Bank and offset are octal. The optional decoding after the slash is used
// when the word follows an instruction that sets the decode state. Comments
// begin with '#' or ';'.
//
// By default the EXTEND mnemonic sets the decode state for the next word.
// SetPrefix() changes the list of mnemonics that do so.
package listing

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/decode"
	"github.com/virtualagc/specials/logger"
)

// Sentinal patterns for listing errors.
const (
	ListingError = "listing: %v"
	NoWord       = decode.NoWord
	ParseError   = "listing: line %d: %s"
)

type word struct {
	normal   decode.Instruction
	extended decode.Instruction

	// extended is only meaningful if hasExtended is true
	hasExtended bool
}

type bankAddress struct {
	bank   int
	offset int
}

// Listing is the disassembled contents of memory.
type Listing struct {
	words  map[bankAddress]word
	prefix map[string]bool
}

// NewListing is the preferred method of initialisation for the Listing type.
func NewListing() *Listing {
	l := &Listing{
		words: make(map[bankAddress]word),
	}
	l.SetPrefix("EXTEND")
	return l
}

// SetPrefix sets the mnemonics that set the decode state for the following
// word. Replaces any previous list.
func (l *Listing) SetPrefix(mnemonics ...string) {
	l.prefix = make(map[string]bool)
	for _, m := range mnemonics {
		l.prefix[m] = true
	}
}

// Add a word to the listing. Any existing word at the address is replaced.
func (l *Listing) Add(bank int, offset int, ins decode.Instruction) {
	l.words[bankAddress{bank: bank, offset: offset}] = word{normal: ins}
}

// AddExtended adds a word with a second decoding, used when the decode state
// is set.
func (l *Listing) AddExtended(bank int, offset int, ins decode.Instruction, extended decode.Instruction) {
	l.words[bankAddress{bank: bank, offset: offset}] = word{
		normal:      ins,
		extended:    extended,
		hasExtended: true,
	}
}

// Len returns the number of words in the listing.
func (l *Listing) Len() int {
	return len(l.words)
}

// Banks returns the banks that have at least one word in the listing, in
// ascending order.
func (l *Listing) Banks() []int {
	seen := make(map[int]bool)
	var banks []int
	for a := range l.words {
		if !seen[a.bank] {
			seen[a.bank] = true
			banks = append(banks, a.bank)
		}
	}
	sort.Ints(banks)
	return banks
}

// Decode implements the decode.Decoder interface.
func (l *Listing) Decode(bank int, offset int, extended bool) (decode.Instruction, bool, error) {
	w, ok := l.words[bankAddress{bank: bank, offset: offset}]
	if !ok {
		return decode.Instruction{}, false, curated.Errorf(NoWord, bank, offset)
	}

	ins := w.normal
	if extended && w.hasExtended {
		ins = w.extended
	}

	return ins, l.prefix[ins.Mnemonic], nil
}

// Parse a listing from io.Reader.
func Parse(r io.Reader) (*Listing, error) {
	l := NewListing()

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++

		line := scanner.Text()
		if i := strings.IndexAny(line, "#;"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		normal, extended, hasExtended := strings.Cut(line, "/")

		f := strings.Fields(normal)
		if len(f) < 3 || len(f) > 4 {
			return nil, curated.Errorf(ParseError, n, "expected bank, offset, mnemonic and optional operand")
		}

		bank, err := strconv.ParseInt(f[0], 8, 0)
		if err != nil || bank < 0 {
			return nil, curated.Errorf(ParseError, n, "bank is not an octal number")
		}
		offset, err := strconv.ParseInt(f[1], 8, 0)
		if err != nil || offset < 0 {
			return nil, curated.Errorf(ParseError, n, "offset is not an octal number")
		}

		ins := instruction(f[2:])
		if !hasExtended {
			l.Add(int(bank), int(offset), ins)
			continue
		}

		e := strings.Fields(extended)
		if len(e) < 1 || len(e) > 2 {
			return nil, curated.Errorf(ParseError, n, "expected mnemonic and optional operand after '/'")
		}
		l.AddExtended(int(bank), int(offset), ins, instruction(e))
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ListingError, err)
	}

	logger.Logf(logger.Allow, "listing", "%d words in %d banks", l.Len(), len(l.Banks()))

	return l, nil
}

func instruction(f []string) decode.Instruction {
	ins := decode.Instruction{Mnemonic: f[0]}
	if len(f) > 1 {
		ins.Operand = f[1]
	}
	return ins
}
