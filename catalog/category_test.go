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

package catalog

import (
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		prefix string
		folder string
		series bool
	}{
		{"action", KindAction, "a", "movies/action", false},
		{" Adventure ", KindAdventure, "ad", "movies/adventure", false},
		{"Sci-Fi", KindSciFi, "s", "movies/sci-fi", false},
		{"TV Series", KindTVSeries, "tv", "tv-series", true},
		{"cartoon", KindCartoon, "ca", "cartoons", true},
		{"western", KindUnknown, "m", "movies/western", false},
		{"Film  Noir", KindUnknown, "m", "movies/film-noir", false},
	}
	for _, tc := range tests {
		c := ParseCategory(tc.name)
		if c.Kind() != tc.kind {
			t.Errorf("%q kind %d, want %d", tc.name, c.Kind(), tc.kind)
		}
		if c.Prefix() != tc.prefix {
			t.Errorf("%q prefix %q, want %q", tc.name, c.Prefix(), tc.prefix)
		}
		if c.Folder() != tc.folder {
			t.Errorf("%q folder %q, want %q", tc.name, c.Folder(), tc.folder)
		}
		if c.Series() != tc.series {
			t.Errorf("%q series %v", tc.name, c.Series())
		}
		if c.Known() != (tc.kind != KindUnknown) {
			t.Errorf("%q known %v", tc.name, c.Known())
		}
	}
}

func TestEmptyCategory(t *testing.T) {
	if !ParseCategory("   ").Empty() {
		t.Error("blank category not empty")
	}
	if ParseCategory("drama").Empty() {
		t.Error("drama is empty")
	}
}

func TestCategories(t *testing.T) {
	list := Categories()
	if len(list) != len(kinds) {
		t.Fatalf("got %d categories, want %d", len(list), len(kinds))
	}
	prefixes := make(map[string]bool)
	for _, c := range list {
		if !c.Known() {
			t.Errorf("%s not known", c)
		}
		if ParseCategory(c.String()) != c {
			t.Errorf("%s does not round trip", c)
		}
		if prefixes[c.Prefix()] {
			t.Errorf("duplicate prefix %s", c.Prefix())
		}
		prefixes[c.Prefix()] = true
	}
	if prefixes[FallbackPrefix] {
		t.Errorf("fallback prefix %s used by a known category", FallbackPrefix)
	}
}
