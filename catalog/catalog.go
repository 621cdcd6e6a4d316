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
	"fmt"
	"strings"
	"sync"

	"github.com/reelhouse/reel/config"
	"github.com/reelhouse/reel/lib/bucket"
	"github.com/reelhouse/reel/lib/cache"
	"github.com/reelhouse/reel/lib/log"
	"github.com/reelhouse/reel/lib/search"
	"github.com/reelhouse/reel/lib/slug"
	"gorm.io/gorm"
)

// Listener receives an Event after each successful mutation.
type Listener func(Event)

type Catalog struct {
	config *config.Config
	db     *gorm.DB
	index  *search.Search
	cache  cache.Cache
	bucket *bucket.Bucket

	mu        sync.RWMutex
	listeners []Listener
}

func NewCatalog(config *config.Config) *Catalog {
	return &Catalog{
		config: config,
	}
}

func (c *Catalog) Open() (err error) {
	err = c.openDB()
	if err == nil {
		c.cache, err = cache.Open(c.config.Cache)
	}
	if err == nil {
		err = c.openSearch()
	}
	if err == nil && c.config.Images.Bucket.Enabled() {
		c.bucket, err = bucket.Open(c.config.Images.Bucket)
	}
	return
}

func (c *Catalog) Close() {
	c.closeDB()
	if c.index != nil {
		c.index.Close()
	}
	if c.cache != nil {
		c.cache.Close()
	}
}

// OnChange registers l to receive catalog events.
func (c *Catalog) OnChange(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

func (c *Catalog) publish(e Event) {
	c.mu.RLock()
	listeners := c.listeners
	c.mu.RUnlock()
	for _, l := range listeners {
		l(e)
	}
}

// changed refreshes derived state after a mutation and notifies listeners.
func (c *Catalog) changed(ctx context.Context, eventType string, e *Entry) {
	var err error
	if eventType == EventDelete {
		err = c.unindex(e.CID)
	} else {
		err = c.indexEntries(*e)
	}
	if err != nil {
		log.Warnf("index %s: %s\n", e.CID, err)
	}
	if err := c.cache.InvalidateAll(ctx); err != nil {
		log.Warnf("cache invalidate: %s\n", err)
	}
	event := Event{Type: eventType, ID: e.CID, Slug: e.Slug}
	if eventType != EventDelete {
		event.Entry = e
	}
	c.publish(event)
}

func validate(in Input) (Category, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Category{}, ErrMissingTitle
	}
	category := ParseCategory(in.Category)
	if category.Empty() {
		return Category{}, ErrMissingCategory
	}
	return category, nil
}

func entrySlug(title string) (string, error) {
	s := slug.Slugify(title)
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, title)
	}
	return s, nil
}

func (e *Entry) seriesInfo() SeriesInfo {
	return SeriesInfo{
		Description: e.Description,
		Duration:    e.Duration,
		Thumbnail:   e.SecondaryImagePath,
	}
}

func (e *Entry) apply(category Category, in Input) {
	e.Title = strings.TrimSpace(in.Title)
	e.Category = category.String()
	e.Year = in.Year
	e.Duration = in.Duration
	e.Rating = in.Rating
	e.Description = in.Description
	if category.Series() {
		e.VideoURL = ""
	} else {
		e.VideoURL = in.VideoURL
	}
}

// episodeList builds the desired slot list from the input, starting from
// base when the input carries no slots. EpisodeCount, when set, is the
// final length, zero included.
func episodeList(in Input, base *EpisodeList) *EpisodeList {
	list := base
	if in.Episodes != nil || list == nil {
		list = NewEpisodeList(in.Episodes...)
	}
	if in.EpisodeCount != nil {
		list.Resize(*in.EpisodeCount)
	}
	return list
}

// Create validates in, allocates an id and stores the new entry along with
// its episodes.
func (c *Catalog) Create(ctx context.Context, in Input) (*Entry, error) {
	category, err := validate(in)
	if err != nil {
		return nil, err
	}
	if !category.Series() && in.hasEpisodes() {
		return nil, ErrNotSeries
	}
	s, err := entrySlug(in.Title)
	if err != nil {
		return nil, err
	}
	exists, err := c.slugExists(ctx, s)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrSlugExists, s)
	}

	id, err := c.AllocateID(ctx, category)
	if err != nil {
		return nil, err
	}

	e := &Entry{CID: id, Prefix: category.Prefix(), Slug: s}
	e.apply(category, in)
	images := ResolveImages(category, in.Image)
	e.PrimaryImagePath = images.Primary
	e.SecondaryImagePath = images.Secondary
	if category.Series() {
		e.Episodes = episodeList(in, nil).Materialize(e.Slug, e.seriesInfo())
	}

	if err := c.createEntry(ctx, e); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"id": e.CID, "slug": e.Slug}).Info("created")
	c.changed(ctx, EventCreate, e)
	return e, nil
}

// Update replaces the editable fields of entry id. A new title produces a
// new slug, a new category moves the artwork paths; the id never changes.
func (c *Catalog) Update(ctx context.Context, id string, in Input) (*Entry, error) {
	category, err := validate(in)
	if err != nil {
		return nil, err
	}
	if !category.Series() && in.hasEpisodes() {
		return nil, ErrNotSeries
	}
	e, err := c.LookupEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	s, err := entrySlug(in.Title)
	if err != nil {
		return nil, err
	}
	if s != e.Slug {
		exists, err := c.slugExists(ctx, s)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrSlugExists, s)
		}
	}

	var base *EpisodeList
	if e.category().Series() {
		base = EpisodeListFrom(e.Episodes, e.seriesInfo())
	}

	file := ImageFile(in.Image)
	if file == "" {
		file = ImageFile(e.PrimaryImagePath)
	}

	e.Slug = s
	e.apply(category, in)
	images := ResolveImages(category, file)
	e.PrimaryImagePath = images.Primary
	e.SecondaryImagePath = images.Secondary

	episodes := []Episode{}
	if category.Series() {
		episodes = episodeList(in, base).Materialize(e.Slug, e.seriesInfo())
	}
	e.Episodes = nil
	if err := c.updateEntry(ctx, e, episodes); err != nil {
		return nil, err
	}
	if category.Series() {
		e.Episodes = episodes
	}
	c.changed(ctx, EventUpdate, e)
	return e, nil
}

// Delete removes entry id and its episodes.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	e, err := c.lookupEntry(ctx, "cid", id)
	if err != nil {
		return err
	}
	if err := c.deleteEntry(ctx, e); err != nil {
		return err
	}
	log.WithField("id", e.CID).Info("deleted")
	c.changed(ctx, EventDelete, e)
	return nil
}

func (c *Catalog) seriesList(ctx context.Context, id string) (*Entry, *EpisodeList, error) {
	e, err := c.LookupEntry(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !e.category().Series() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotSeries, e.Category)
	}
	return e, EpisodeListFrom(e.Episodes, e.seriesInfo()), nil
}

func (c *Catalog) storeList(ctx context.Context, e *Entry, list *EpisodeList) (*Entry, error) {
	episodes := list.Materialize(e.Slug, e.seriesInfo())
	if err := c.saveEpisodes(ctx, e.CID, episodes); err != nil {
		return nil, err
	}
	e.Episodes = episodes
	c.changed(ctx, EventEpisodes, e)
	return e, nil
}

// ResizeEpisodes grows or truncates the episode list of series id to n.
// Existing links keep their position.
func (c *Catalog) ResizeEpisodes(ctx context.Context, id string, n int) (*Entry, error) {
	e, list, err := c.seriesList(ctx, id)
	if err != nil {
		return nil, err
	}
	list.Resize(n)
	return c.storeList(ctx, e, list)
}

// SetEpisodeLink sets the video url of episode number (1-based) of series id.
func (c *Catalog) SetEpisodeLink(ctx context.Context, id string, number int, url string) (*Entry, error) {
	e, list, err := c.seriesList(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := list.SetLink(number-1, url); err != nil {
		return nil, err
	}
	return c.storeList(ctx, e, list)
}

// Episode finds an episode of the series with slug seriesSlug.
func (c *Catalog) Episode(ctx context.Context, seriesSlug, episodeSlug string) (*Entry, *Episode, error) {
	e, err := c.LookupSlug(ctx, seriesSlug)
	if err != nil {
		return nil, nil, err
	}
	for i := range e.Episodes {
		if e.Episodes[i].Slug == episodeSlug {
			return e, &e.Episodes[i], nil
		}
	}
	return e, nil, ErrEpisodeNotFound
}

// ImageURL maps a stored image path to a url the browser can load.
func (c *Catalog) ImageURL(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if c.bucket != nil {
		u, err := c.bucket.Presign(p)
		if err != nil {
			return "", err
		}
		return u.String(), nil
	}
	return strings.TrimSuffix(c.config.Images.BaseURL, "/") + "/" + strings.TrimPrefix(p, "/"), nil
}
