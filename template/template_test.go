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

package template_test

import (
	"strings"
	"testing"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/decode"
	"github.com/virtualagc/specials/importer"
	"github.com/virtualagc/specials/listing"
	"github.com/virtualagc/specials/search"
	"github.com/virtualagc/specials/template"
	"github.com/virtualagc/specials/test"
)

func example() *listing.Listing {
	l := listing.NewListing()
	l.Add(2, 0o10, decode.Instruction{Mnemonic: "NOOP"})
	l.Add(2, 0o11, decode.Instruction{Mnemonic: "EXTEND"})
	l.AddExtended(2, 0o12, decode.Instruction{Mnemonic: "CA", Operand: "0004"}, decode.Instruction{Mnemonic: "DCA", Operand: "0004"})
	l.Add(2, 0o13, decode.Instruction{Mnemonic: "TS", Operand: "0015"})
	return l
}

func TestTemplate(t *testing.T) {
	w := &test.CompareWriter{}
	err := template.Write(w, example(), "NEWSYM", 2, 0o11, 0o14)
	test.DemandSuccess(t, err)

	expected := "  - name: NEWSYM\n" +
		"    variants:\n" +
		"      - ranges: [[0o2, 0o11, 0o14]]\n" +
		"        datawords: 0\n" +
		"        noreturn: false\n" +
		"        pattern:\n" +
		"          - {required: true, opcodes: [\"EXTEND\"]} # 02,0011\n" +
		"          - {required: true, opcodes: [\"DCA\"], operands: [\"0004\"]} # 02,0012\n" +
		"          - {required: true, opcodes: [\"TS\"], operands: [\"0015\"]} # 02,0013\n"

	test.ExpectEquality(t, w.String(), expected)
}

// the output of the template can be imported and will find the symbol it was
// made from
func TestTemplateRoundTrip(t *testing.T) {
	l := example()

	w := &strings.Builder{}
	w.WriteString("symbols:\n")
	err := template.Write(w, l, "NEWSYM", 2, 0o11, 0o14)
	test.DemandSuccess(t, err)

	cat, cfg, err := importer.ImportReader(strings.NewReader(w.String()), "yaml")
	test.DemandSuccess(t, err)

	reg, err := search.Scan(cat, l, cfg)
	test.DemandSuccess(t, err)

	loc, ok := reg.Resolved("NEWSYM")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, loc.Bank, 2)
	test.ExpectEquality(t, loc.Offset, 0o11)
	test.ExpectEquality(t, loc.Canonical, 0o4011)
}

func TestTemplateErrors(t *testing.T) {
	w := &test.CompareWriter{}

	err := template.Write(w, example(), "NEWSYM", 2, 0o11, 0o11)
	test.ExpectSuccess(t, curated.Is(err, template.TemplateError))

	err = template.Write(w, example(), "NEWSYM", 2, 0o12, 0o20)
	test.ExpectSuccess(t, curated.Is(err, template.TemplateError))
	test.ExpectSuccess(t, curated.Has(err, listing.NoWord))
}
