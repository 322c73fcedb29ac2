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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with Errorf(). The pattern given to Errorf() is
// the identity of the error. Packages export their patterns as const strings
// and callers test for them with Is() and Has():
//
//	const MalformedVariant = "signature: %s: variant %d: %s"
//
//	err := curated.Errorf(MalformedVariant, "INTPRET", 0, "pattern is empty")
//	if curated.Is(err, MalformedVariant) {
//		...
//	}
//
// Is() only looks at the outermost error. Has() walks the chain of wrapped
// errors looking for the pattern.
//
// The Error() implementation removes duplicate adjacent parts from the
// message, parts being separated by the sub-string ": ". This means that
// wrapping an error with a pattern that repeats the prefix of the wrapped error
// does not produce stuttering messages:
//
//	e := curated.Errorf("search: %v", curated.Errorf("search: no listing"))
//
// prints as "search: no listing".
package curated
