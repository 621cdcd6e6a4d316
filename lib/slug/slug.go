// Copyright (C) 2026 The Reel Authors.
//
// This file is part of Reel.
//
// Reel is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Reel is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Reel.  If not, see <https://www.gnu.org/licenses/>.

// Package slug turns titles into url safe identifiers.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/reelhouse/reel/lib/str"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnumRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// fold removes combining marks after canonical decomposition so accented
// latin letters map to their base letter.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// Slugify lower-cases the title, replaces every run of characters other than
// a-z and 0-9 with a single hyphen and trims hyphens from both ends.
// Distinct titles may produce the same slug.
func Slugify(title string) string {
	s := strings.ToLower(fold(title))
	s = nonAlnumRegexp.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Number returns the slug of the i-th item in a sequence, e.g. episode-3.
func Number(prefix string, i int) string {
	return Slugify(prefix) + "-" + str.Itoa(i)
}
