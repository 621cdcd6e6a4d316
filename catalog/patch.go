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
	"context"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/samber/lo"
)

const (
	PatchContentType = "application/json-patch+json"
)

// InputFrom is the editable form of a stored entry.
func InputFrom(e *Entry) Input {
	in := Input{
		Title:       e.Title,
		Category:    e.Category,
		Year:        e.Year,
		Duration:    e.Duration,
		Rating:      e.Rating,
		Description: e.Description,
		Image:       ImageFile(e.PrimaryImagePath),
		VideoURL:    e.VideoURL,
	}
	if e.category().Series() {
		in.Episodes = EpisodeListFrom(e.Episodes, e.seriesInfo()).Slots()
		if in.Episodes == nil {
			in.Episodes = []Slot{}
		}
		in.EpisodeCount = lo.ToPtr(len(in.Episodes))
	}
	return in
}

// Patch applies an RFC 6902 patch to the editable form of entry id and saves
// the result the same way Update does.
func (c *Catalog) Patch(ctx context.Context, id string, patch []byte) (*Entry, error) {
	e, err := c.LookupEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	before, err := json.Marshal(InputFrom(e))
	if err != nil {
		return nil, err
	}

	jp, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPatch, err)
	}
	after, err := jp.Apply(before)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPatch, err)
	}
	if jsonpatch.Equal(before, after) {
		return e, nil
	}

	var in Input
	if err := json.Unmarshal(after, &in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPatch, err)
	}
	if in.Episodes != nil && in.EpisodeCount != nil && *in.EpisodeCount == len(e.Episodes) {
		// episodes added or removed through the list itself
		in.EpisodeCount = lo.ToPtr(len(in.Episodes))
	}
	return c.Update(ctx, id, in)
}
