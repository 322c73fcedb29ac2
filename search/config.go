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

import "fmt"

// Config specifies the canonical window and the text format of numeric
// operands.
type Config struct {
	// number of words in a bank
	WindowSize int

	// banks that are mapped into the canonical window
	CanonicalBanks []int

	// fmt pattern used to produce the operand text of a canonical address.
	// should be the same format the decoder uses for numeric operands
	OperandFormat string
}

// DefaultConfig returns the configuration for the fixed-fixed memory of the
// AGC: banks 02 and 03, each of 0o2000 words.
func DefaultConfig() Config {
	return Config{
		WindowSize:     0o2000,
		CanonicalBanks: []int{2, 3},
		OperandFormat:  "%04o",
	}
}

// Canonical returns the address of bank/offset in the canonical window. The
// boolean is false if the bank is not in the window.
func (cfg Config) Canonical(bank int, offset int) (int, bool) {
	for _, b := range cfg.CanonicalBanks {
		if b == bank {
			return bank*cfg.WindowSize + offset, true
		}
	}
	return 0, false
}

// FormatOperand returns the operand text for a canonical address.
func (cfg Config) FormatOperand(address int) string {
	return fmt.Sprintf(cfg.OperandFormat, address)
}
