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
	"errors"
	"fmt"
	"time"

	"github.com/reelhouse/reel/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func (c *Catalog) openDB() (err error) {
	db := c.config.Catalog.DB
	cfg := db.GormConfig()

	switch db.Driver {
	case config.DriverSqlite:
		c.db, err = gorm.Open(sqlite.Open(db.Source), cfg)
	case config.DriverMySQL:
		c.db, err = gorm.Open(mysql.Open(db.Source), cfg)
	case config.DriverPostgres:
		c.db, err = gorm.Open(postgres.Open(db.Source), cfg)
	default:
		err = ErrBadDriver
	}

	if err != nil {
		return
	}

	err = c.db.AutoMigrate(&Entry{}, &Episode{}, &Sequence{})
	return
}

func (c *Catalog) closeDB() {
	if c.db == nil {
		return
	}
	conn, err := c.db.DB()
	if err != nil {
		return
	}
	conn.Close()
}

// AllocateID hands out the next id for the category's prefix. The per-prefix
// sequence row is advanced with compare-and-swap so two concurrent callers
// never receive the same id; a lost swap is retried with fresh state.
func (c *Catalog) AllocateID(ctx context.Context, category Category) (string, error) {
	prefix := category.Prefix()
	retries := c.config.Catalog.AllocRetries
	if retries < 1 {
		retries = 1
	}
	for i := 0; i < retries; i++ {
		id, err := c.tryAllocate(ctx, prefix)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrAllocConflict) {
			return "", storeErr("allocate", err)
		}
	}
	return "", storeErr("allocate", ErrAllocConflict)
}

func (c *Catalog) tryAllocate(ctx context.Context, prefix string) (id string, err error) {
	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&Entry{}).Where("prefix = ?", prefix).
			Pluck("cid", &ids).Error; err != nil {
			return err
		}
		last := MaxSuffix(prefix, ids)

		var seq Sequence
		result := tx.Where("prefix = ?", prefix).Limit(1).Find(&seq)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// first id for this prefix; a concurrent insert fails on the
			// primary key
			next := last + 1
			if err := tx.Create(&Sequence{Prefix: prefix, Last: next}).Error; err != nil {
				return ErrAllocConflict
			}
			id = FormatID(prefix, next)
			return nil
		}

		if seq.Last > last {
			last = seq.Last
		}
		next := last + 1
		result = tx.Model(&Sequence{}).
			Where("prefix = ? and last_id = ?", prefix, seq.Last).
			Update("last_id", next)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAllocConflict
		}
		id = FormatID(prefix, next)
		return nil
	})
	return
}

func (c *Catalog) slugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Entry{}).
		Where("slug = ?", slug).Count(&count).Error
	return count > 0, storeErr("slug", err)
}

// slugTaken reports whether another entry holds slug. A write that lost a
// race on the slug index is a conflict rather than a store failure.
func (c *Catalog) slugTaken(ctx context.Context, slug, cid string) bool {
	var count int64
	err := c.db.WithContext(ctx).Model(&Entry{}).
		Where("slug = ? and cid <> ?", slug, cid).Count(&count).Error
	return err == nil && count > 0
}

// createEntry inserts the entry and its episodes in one transaction.
func (c *Catalog) createEntry(ctx context.Context, e *Entry) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return replaceEpisodes(tx, e.CID, e.Episodes)
	})
	if err != nil && c.slugTaken(ctx, e.Slug, e.CID) {
		return fmt.Errorf("%w: %s", ErrSlugExists, e.Slug)
	}
	return storeErr("create", err)
}

// updateEntry saves the entry. Episodes are replaced when episodes is
// non-nil; an empty non-nil slice removes them all.
func (c *Catalog) updateEntry(ctx context.Context, e *Entry, episodes []Episode) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		if episodes == nil {
			return nil
		}
		return replaceEpisodes(tx, e.CID, episodes)
	})
	if err != nil && c.slugTaken(ctx, e.Slug, e.CID) {
		return fmt.Errorf("%w: %s", ErrSlugExists, e.Slug)
	}
	return storeErr("update", err)
}

func (c *Catalog) saveEpisodes(ctx context.Context, cid string, episodes []Episode) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceEpisodes(tx, cid, episodes)
	})
	return storeErr("episodes", err)
}

func replaceEpisodes(tx *gorm.DB, cid string, episodes []Episode) error {
	if err := tx.Unscoped().Where("cid = ?", cid).Delete(&Episode{}).Error; err != nil {
		return err
	}
	if len(episodes) == 0 {
		return nil
	}
	for i := range episodes {
		episodes[i].ID = 0
		episodes[i].CID = cid
	}
	return tx.Create(&episodes).Error
}

func (c *Catalog) deleteEntry(ctx context.Context, e *Entry) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("cid = ?", e.CID).Delete(&Episode{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(e).Error
	})
	return storeErr("delete", err)
}

func (c *Catalog) lookupEntry(ctx context.Context, column, value string) (*Entry, error) {
	var entries []Entry
	err := c.db.WithContext(ctx).Where(column+" = ?", value).Limit(1).Find(&entries).Error
	if err != nil {
		return nil, storeErr("lookup", err)
	}
	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}
	return &entries[0], nil
}

// LookupEntry finds the entry with the given id, episodes included.
func (c *Catalog) LookupEntry(ctx context.Context, id string) (*Entry, error) {
	e, err := c.lookupEntry(ctx, "cid", id)
	if err != nil {
		return nil, err
	}
	return e, c.loadEpisodes(ctx, e)
}

// LookupSlug finds the entry with the given slug, episodes included.
func (c *Catalog) LookupSlug(ctx context.Context, slug string) (*Entry, error) {
	e, err := c.lookupEntry(ctx, "slug", slug)
	if err != nil {
		return nil, err
	}
	return e, c.loadEpisodes(ctx, e)
}

func (c *Catalog) loadEpisodes(ctx context.Context, e *Entry) (err error) {
	if !e.category().Series() {
		return nil
	}
	e.Episodes, err = c.Episodes(ctx, e)
	return
}

// Episodes returns the entry's episodes in order.
func (c *Catalog) Episodes(ctx context.Context, e *Entry) ([]Episode, error) {
	var episodes []Episode
	err := c.db.WithContext(ctx).Where("cid = ?", e.CID).
		Order("seq").Find(&episodes).Error
	return episodes, storeErr("episodes", err)
}

// ListByCategory returns all entries of a category ordered by title.
func (c *Catalog) ListByCategory(ctx context.Context, category Category) ([]Entry, error) {
	var entries []Entry
	err := c.db.WithContext(ctx).Where("category = ?", category.String()).
		Order("title").Find(&entries).Error
	return entries, storeErr("list", err)
}

// RecentlyAdded returns entries created within Catalog.Recent, newest first.
func (c *Catalog) RecentlyAdded(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	since := time.Now().Add(-c.config.Catalog.Recent)
	err := c.db.WithContext(ctx).Where("created_at >= ?", since).
		Order("created_at desc").Limit(c.config.Catalog.RecentLimit).
		Find(&entries).Error
	return entries, storeErr("recent", err)
}

func (c *Catalog) entriesFor(ctx context.Context, ids []string) ([]Entry, error) {
	var entries []Entry
	err := c.db.WithContext(ctx).Where("cid in (?)", ids).Find(&entries).Error
	return entries, storeErr("entries", err)
}

func (c *Catalog) allEntries(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := c.db.WithContext(ctx).Order("cid").Find(&entries).Error
	return entries, storeErr("entries", err)
}

func (c *Catalog) EntryCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Entry{}).Count(&count).Error
	return count, storeErr("count", err)
}

func (c *Catalog) EpisodeCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Episode{}).Count(&count).Error
	return count, storeErr("count", err)
}

// CategoryCounts returns the number of entries per category name.
func (c *Catalog) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	err := c.db.WithContext(ctx).Model(&Entry{}).
		Select("category, count(*) as count").
		Group("category").Scan(&rows).Error
	if err != nil {
		return nil, storeErr("count", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Count
	}
	return counts, nil
}
