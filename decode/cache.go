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

package decode

// Cache wraps a Decoder and remembers the most recently decoded word. The
// decode state is threaded from one call to the next.
type Cache struct {
	dec Decoder

	// most recent decoding. valid is false after a Reset()
	valid    bool
	bank     int
	offset   int
	ins      Instruction
	extended bool

	// number of calls made to the underlying decoder
	decodes int
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache(dec Decoder) *Cache {
	return &Cache{dec: dec}
}

// Reset forgets the most recent decoding and returns the decode state to
// baseline. Should be called before walking forward from a new address.
func (c *Cache) Reset() {
	c.valid = false
	c.extended = false
}

// Decode the word at bank/offset using the state left by the previous call.
// If the word is the same as the previous call then the cached result is
// returned and the decoder is not consulted.
func (c *Cache) Decode(bank int, offset int) (Instruction, error) {
	if c.valid && c.bank == bank && c.offset == offset {
		return c.ins, nil
	}

	ins, extended, err := c.dec.Decode(bank, offset, c.extended)
	c.decodes++
	if err != nil {
		c.valid = false
		return Instruction{}, err
	}

	c.valid = true
	c.bank = bank
	c.offset = offset
	c.ins = ins
	c.extended = extended

	return ins, nil
}

// Fresh decodes the word at bank/offset with the decode state at baseline.
// The cache and the threaded state are not affected.
func (c *Cache) Fresh(bank int, offset int) (Instruction, error) {
	ins, _, err := c.dec.Decode(bank, offset, false)
	c.decodes++
	return ins, err
}

// Decodes returns the number of times the underlying decoder has been called.
func (c *Cache) Decodes() int {
	return c.decodes
}
