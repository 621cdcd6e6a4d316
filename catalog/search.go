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
	"errors"
	"fmt"
	"strconv"

	"github.com/reelhouse/reel/lib/cache"
	"github.com/reelhouse/reel/lib/log"
	"github.com/reelhouse/reel/lib/search"
	"github.com/samber/lo"
)

const (
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldRating      = "rating"
	FieldSlug        = "slug"
	FieldTitle       = "title"
	FieldYear        = "year"
	FieldEpisode     = "episode"
)

func (c *Catalog) openSearch() error {
	s := search.NewSearch(c.config)
	s.Keywords = []string{
		FieldCategory,
		FieldRating,
		FieldSlug,
	}
	if err := s.Open("catalog"); err != nil {
		return err
	}
	c.index = s
	return nil
}

func entryFields(e Entry) search.FieldMap {
	fields := search.FieldMap{
		FieldCategory:    e.Category,
		FieldDescription: e.Description,
		FieldRating:      e.Rating,
		FieldSlug:        e.Slug,
		FieldTitle:       e.Title,
	}
	if e.Year > 0 {
		fields[FieldYear] = e.Year
	}
	if len(e.Episodes) > 0 {
		fields[FieldEpisode] = lo.Map(e.Episodes, func(ep Episode, _ int) string {
			return ep.Title
		})
	}
	return fields
}

func (c *Catalog) indexEntries(entries ...Entry) error {
	m := make(search.IndexMap, len(entries))
	for _, e := range entries {
		m[e.CID] = entryFields(e)
	}
	return c.index.Index(m)
}

func (c *Catalog) unindex(ids ...string) error {
	return c.index.Delete(ids...)
}

func searchKey(q string, limit int) string {
	return strconv.Itoa(limit) + ":" + q
}

// Search runs q against the full-text index. Result ids are cached for the
// cache TTL and every catalog mutation drops them.
func (c *Catalog) Search(ctx context.Context, q string, limit ...int) ([]Entry, error) {
	l := c.config.Catalog.SearchLimit
	if len(limit) == 1 {
		l = limit[0]
	}
	key := searchKey(q, l)

	var ids []string
	data, err := c.cache.Get(ctx, key)
	if err == nil {
		err = json.Unmarshal(data, &ids)
	}
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Warnf("cache get %q: %s\n", key, err)
		}
		ids, err = c.index.Search(q, l)
		if errors.Is(err, search.ErrQuery) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, err)
		} else if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(ids); err == nil {
			if err := c.cache.Put(ctx, key, data); err != nil {
				log.Warnf("cache put %q: %s\n", key, err)
			}
		}
	}

	if len(ids) == 0 {
		return []Entry{}, nil
	}

	// split potentially large # of result keys into chunks to query
	var entries []Entry
	for _, chunk := range lo.Chunk(ids, 100) {
		list, err := c.entriesFor(ctx, chunk)
		if err != nil {
			return nil, err
		}
		entries = append(entries, list...)
	}

	// keep search rank order, skip ids that were removed meanwhile
	byID := lo.KeyBy(entries, func(e Entry) string {
		return e.CID
	})
	return lo.FilterMap(ids, func(id string, _ int) (Entry, bool) {
		e, ok := byID[id]
		return e, ok
	}), nil
}

// Reindex rebuilds the search index from the record store and flushes the
// query cache.
func (c *Catalog) Reindex(ctx context.Context) error {
	entries, err := c.allEntries(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if err := c.loadEpisodes(ctx, &entries[i]); err != nil {
			return err
		}
	}

	indexed, err := c.index.Keys()
	if err != nil {
		return err
	}
	current := lo.Map(entries, func(e Entry, _ int) string {
		return e.CID
	})
	if stale := lo.Without(indexed, current...); len(stale) > 0 {
		if err := c.unindex(stale...); err != nil {
			return err
		}
	}
	if len(entries) > 0 {
		if err := c.indexEntries(entries...); err != nil {
			return err
		}
	}
	log.Printf("reindexed %d entries\n", len(entries))
	return c.cache.InvalidateAll(ctx)
}

// FlushCache drops all cached query results.
func (c *Catalog) FlushCache(ctx context.Context) error {
	return c.cache.InvalidateAll(ctx)
}
