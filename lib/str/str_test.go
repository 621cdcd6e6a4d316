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

package str

import (
	"testing"
)

func TestNumericSuffix(t *testing.T) {
	cases := []struct {
		s, prefix string
		n         int
		ok        bool
	}{
		{"a7", "a", 7, true},
		{"a007", "a", 7, true},
		{"ad3", "a", 0, false},
		{"a", "a", 0, false},
		{"a-1", "a", 0, false},
		{"tv12", "tv", 12, true},
		{"tv12", "t", 0, false},
		{"dr4", "a", 0, false},
		{"a99999999999999999999999", "a", 0, false},
	}
	for _, c := range cases {
		n, ok := NumericSuffix(c.s, c.prefix)
		if n != c.n || ok != c.ok {
			t.Errorf("NumericSuffix(%q, %q) = %d, %v\n", c.s, c.prefix, n, ok)
		}
	}
}

func TestSplit(t *testing.T) {
	a := Split("action, drama ,tv-series")
	if len(a) != 3 || a[1] != "drama" {
		t.Errorf("Split %v\n", a)
	}
	if len(Split("")) != 0 {
		t.Error("empty split")
	}
}
