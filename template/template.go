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

// Package template helps with writing new signatures. It decodes a range of
// memory and writes it out in the signature file format, ready to be pasted
// into a signature file and edited by hand.
package template

import (
	"fmt"
	"io"
	"strconv"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/decode"
)

// Sentinal pattern for template errors.
const TemplateError = "template: %v"

// Write a pattern for the words in bank from start up to, but not including,
// end. Every item in the pattern is required and has the opcode and operand of
// the decoded word. The decode state is carried from one word to the next in
// the same way as the forward phase of a search.
func Write(output io.Writer, dec decode.Decoder, symbol string, bank int, start int, end int) error {
	if start >= end {
		return curated.Errorf(TemplateError, "empty range")
	}

	cache := decode.NewCache(dec)

	fmt.Fprintf(output, "  - name: %s\n", symbol)
	fmt.Fprintf(output, "    variants:\n")
	fmt.Fprintf(output, "      - ranges: [[0o%o, 0o%o, 0o%o]]\n", bank, start, end)
	fmt.Fprintf(output, "        datawords: 0\n")
	fmt.Fprintf(output, "        noreturn: false\n")
	fmt.Fprintf(output, "        pattern:\n")

	for offset := start; offset < end; offset++ {
		ins, err := cache.Decode(bank, offset)
		if err != nil {
			return curated.Errorf(TemplateError, err)
		}

		if ins.Operand == "" {
			fmt.Fprintf(output, "          - {required: true, opcodes: [%s]}", strconv.Quote(ins.Mnemonic))
		} else {
			fmt.Fprintf(output, "          - {required: true, opcodes: [%s], operands: [%s]}",
				strconv.Quote(ins.Mnemonic), strconv.Quote(ins.Operand))
		}
		fmt.Fprintf(output, " # %02o,%04o\n", bank, offset)
	}

	return nil
}
