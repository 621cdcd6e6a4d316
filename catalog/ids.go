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
	"github.com/reelhouse/reel/lib/str"
)

// MaxSuffix returns the largest n among ids of the form <prefix><n>. Ids
// with any other suffix are ignored, 0 when nothing matches.
func MaxSuffix(prefix string, ids []string) int {
	max := 0
	for _, id := range ids {
		n, ok := str.NumericSuffix(id, prefix)
		if ok && n > max {
			max = n
		}
	}
	return max
}

// FormatID builds the id for the n-th entry under prefix.
func FormatID(prefix string, n int) string {
	return prefix + str.Itoa(n)
}

// NextID is the id following the highest one already used in the category's
// prefix namespace. It does not guard against concurrent allocation, see
// AllocateID for that.
func NextID(c Category, existing []string) string {
	prefix := c.Prefix()
	return FormatID(prefix, MaxSuffix(prefix, existing)+1)
}
