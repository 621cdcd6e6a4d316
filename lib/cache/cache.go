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

// Package cache holds query results for a bounded time. A cache is an
// explicit object handed to its users; nothing here is package state.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/reelhouse/reel/config"
)

var (
	ErrMiss      = errors.New("cache miss")
	ErrBadDriver = errors.New("cache driver not supported")
)

type Cache interface {
	// Get returns the value stored for key or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value for TTL().
	Put(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context, key string) error
	InvalidateAll(ctx context.Context) error
	TTL() time.Duration
	Close() error
}

// Open returns the cache selected by config.Driver.
func Open(config config.CacheConfig) (Cache, error) {
	switch config.Driver {
	case "", "memory":
		return NewMemory(config.TTL)
	case "redis":
		return NewRedis(config.Redis, config.TTL), nil
	case "none":
		return Disabled{}, nil
	}
	return nil, ErrBadDriver
}

// Disabled never stores anything.
type Disabled struct{}

func (Disabled) Get(context.Context, string) ([]byte, error) {
	return nil, ErrMiss
}

func (Disabled) Put(context.Context, string, []byte) error {
	return nil
}

func (Disabled) Invalidate(context.Context, string) error {
	return nil
}

func (Disabled) InvalidateAll(context.Context) error {
	return nil
}

func (Disabled) TTL() time.Duration {
	return 0
}

func (Disabled) Close() error {
	return nil
}
