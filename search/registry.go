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
	"fmt"
	"io"
	"strings"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/signature"
)

// RegistryWrite is the pattern for errors caused by recording a symbol twice.
const RegistryWrite = "registry: %s has already been recorded"

// Registry is the result of a Scan(). Every symbol in the catalog has a
// Location in the registry, found or not. Entries are never changed once
// recorded.
type Registry struct {
	locations map[string]Location

	// symbol names in the order they were recorded
	order []string
}

func newRegistry() *Registry {
	return &Registry{
		locations: make(map[string]Location),
	}
}

func (reg *Registry) record(loc Location) error {
	if _, ok := reg.locations[loc.Symbol]; ok {
		return curated.Errorf(RegistryWrite, loc.Symbol)
	}
	reg.locations[loc.Symbol] = loc
	reg.order = append(reg.order, loc.Symbol)
	return nil
}

// Lookup returns the Location of a symbol. The boolean is false if the symbol
// was never recorded. A symbol that was searched for but not found returns
// true, with Location.Found set to false.
func (reg *Registry) Lookup(symbol string) (Location, bool) {
	loc, ok := reg.locations[symbol]
	return loc, ok
}

// Resolved returns the Location of a symbol only if it was found.
func (reg *Registry) Resolved(symbol string) (Location, bool) {
	loc, ok := reg.locations[symbol]
	if !ok || !loc.Found {
		return Location{}, false
	}
	return loc, true
}

// Symbols returns the symbols in the registry in the order they were
// processed.
func (reg *Registry) Symbols() []string {
	return append([]string{}, reg.order...)
}

// Len returns the number of symbols in the registry.
func (reg *Registry) Len() int {
	return len(reg.order)
}

// Unresolved returns the symbols that were not found.
func (reg *Registry) Unresolved() []string {
	var u []string
	for _, s := range reg.order {
		if !reg.locations[s].Found {
			u = append(u, s)
		}
	}
	return u
}

// Write a table of the registry to io.Writer.
func (reg *Registry) Write(output io.Writer) {
	width := 0
	for _, s := range reg.order {
		if len(s) > width {
			width = len(s)
		}
	}

	for _, s := range reg.order {
		loc := reg.locations[s]
		line := strings.Builder{}
		line.WriteString(fmt.Sprintf("%-*s ", width, s))

		if !loc.Found {
			line.WriteString("unresolved")
		} else {
			line.WriteString(fmt.Sprintf("%02o,%04o", loc.Bank, loc.Offset))
			if loc.HasCanonical {
				line.WriteString(fmt.Sprintf(" %04o", loc.Canonical))
			} else {
				line.WriteString("     ")
			}
			switch loc.DataWords {
			case 0:
			case signature.VariableDataWords:
				line.WriteString(" data=variable")
			default:
				line.WriteString(fmt.Sprintf(" data=%d", loc.DataWords))
			}
			if loc.NoReturn {
				line.WriteString(" noreturn")
			}
		}

		output.Write([]byte(strings.TrimRight(line.String(), " ")))
		output.Write([]byte("\n"))
	}
}
