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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/virtualagc/specials/curated"
	"github.com/virtualagc/specials/test"
)

const testPattern = "test: %d"
const wrapPattern = "wrap: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
	test.ExpectFailure(t, curated.Has(f, "other"))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("read: %v", io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("search: %v", curated.Errorf("search: no listing"))
	test.ExpectEquality(t, e.Error(), "search: no listing")

	f := curated.Errorf("a: %v", curated.Errorf("b: c"))
	test.ExpectEquality(t, f.Error(), "a: b: c")
}
