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

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/tidwall/buntdb"
)

// Memory is an in-process cache backed by an in-memory buntdb.
type Memory struct {
	db  *buntdb.DB
	ttl time.Duration
}

func NewMemory(ttl time.Duration) (*Memory, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, err
	}
	return &Memory{db: db, ttl: ttl}, nil
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := m.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, ErrMiss
	} else if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	var opts *buntdb.SetOptions
	if m.ttl > 0 {
		opts = &buntdb.SetOptions{Expires: true, TTL: m.ttl}
	}
	return m.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, string(value), opts)
		return err
	})
}

func (m *Memory) Invalidate(ctx context.Context, key string) error {
	err := m.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key)
		return err
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil
	}
	return err
}

func (m *Memory) InvalidateAll(ctx context.Context) error {
	return m.db.Update(func(tx *buntdb.Tx) error {
		return tx.DeleteAll()
	})
}

func (m *Memory) TTL() time.Duration {
	return m.ttl
}

func (m *Memory) Close() error {
	return m.db.Close()
}
