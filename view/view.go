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

package view

import (
	"sort"
	"time"

	"github.com/reelhouse/reel/catalog"
)

type Context interface {
	ImageURL(string) string
}

// swagger:model
type Entry struct {
	*catalog.Entry
	PrimaryImageURL   string `json:"primaryImageUrl,omitempty"`
	SecondaryImageURL string `json:"secondaryImageUrl,omitempty"`
}

// swagger:model
type Category struct {
	Name    string  `json:"name"`
	Known   bool    `json:"known"`
	Series  bool    `json:"series"`
	Entries []Entry `json:"entries"`
}

type CategoryCount struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	Folder string `json:"folder"`
	Series bool   `json:"series"`
	Count  int64  `json:"count"`
}

// swagger:model
type Index struct {
	Time       int64           `json:"time"`
	Entries    int64           `json:"entries"`
	Categories []CategoryCount `json:"categories"`
}

// swagger:model
type Recent struct {
	Since   time.Time `json:"since"`
	Entries []Entry   `json:"entries"`
}

// swagger:model
type Search struct {
	Query   string  `json:"query"`
	Hits    int     `json:"hits"`
	Entries []Entry `json:"entries"`
}

type SeriesRef struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// swagger:model
type Episode struct {
	Series    SeriesRef       `json:"series"`
	Episode   catalog.Episode `json:"episode"`
	Available bool            `json:"available"`
	Total     int             `json:"total"`
}

func EntryView(ctx Context, e *catalog.Entry) Entry {
	return Entry{
		Entry:             e,
		PrimaryImageURL:   ctx.ImageURL(e.PrimaryImagePath),
		SecondaryImageURL: ctx.ImageURL(e.SecondaryImagePath),
	}
}

func EntriesView(ctx Context, entries []catalog.Entry) []Entry {
	list := make([]Entry, len(entries))
	for i := range entries {
		list[i] = EntryView(ctx, &entries[i])
	}
	return list
}

func CategoryView(ctx Context, c catalog.Category, entries []catalog.Entry) Category {
	return Category{
		Name:    c.String(),
		Known:   c.Known(),
		Series:  c.Series(),
		Entries: EntriesView(ctx, entries),
	}
}

// IndexView lists the known categories followed by any others in use.
func IndexView(counts map[string]int64) Index {
	view := Index{Time: time.Now().UnixMilli()}
	seen := make(map[string]bool)
	add := func(c catalog.Category) {
		n := counts[c.String()]
		view.Entries += n
		view.Categories = append(view.Categories, CategoryCount{
			Name:   c.String(),
			Prefix: c.Prefix(),
			Folder: c.Folder(),
			Series: c.Series(),
			Count:  n,
		})
		seen[c.String()] = true
	}
	for _, c := range catalog.Categories() {
		add(c)
	}
	var others []string
	for name := range counts {
		if !seen[name] {
			others = append(others, name)
		}
	}
	sort.Strings(others)
	for _, name := range others {
		add(catalog.ParseCategory(name))
	}
	return view
}

func RecentView(ctx Context, since time.Time, entries []catalog.Entry) Recent {
	return Recent{Since: since, Entries: EntriesView(ctx, entries)}
}

func SearchView(ctx Context, q string, entries []catalog.Entry) Search {
	return Search{Query: q, Hits: len(entries), Entries: EntriesView(ctx, entries)}
}

func EpisodeView(series *catalog.Entry, e *catalog.Episode) Episode {
	return Episode{
		Series: SeriesRef{
			ID:    series.CID,
			Slug:  series.Slug,
			Title: series.Title,
		},
		Episode:   *e,
		Available: e.Available(),
		Total:     len(series.Episodes),
	}
}
