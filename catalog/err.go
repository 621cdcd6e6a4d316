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
	"errors"
	"fmt"
)

var (
	ErrMissingTitle    = errors.New("title is required")
	ErrMissingCategory = errors.New("category is required")
	ErrInvalidSlug     = errors.New("title has no usable characters")
	ErrSlugExists      = errors.New("slug already in use")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrNotSeries       = errors.New("category has no episodes")
	ErrBadDriver       = errors.New("driver not supported")
	ErrAllocConflict   = errors.New("id allocation conflict")
	ErrInvalidPatch    = errors.New("invalid patch")
	ErrInvalidQuery    = errors.New("invalid search query")
)

// StoreError is a failure of the record store itself. The caller may retry
// the whole operation; the catalog never does.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Temporary() bool {
	return true
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Retryable reports whether err came from the record store.
func Retryable(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// ValidationError reports whether err is the caller's fault.
func ValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrMissingTitle),
		errors.Is(err, ErrMissingCategory),
		errors.Is(err, ErrInvalidSlug),
		errors.Is(err, ErrNotSeries),
		errors.Is(err, ErrSlotRange),
		errors.Is(err, ErrInvalidPatch),
		errors.Is(err, ErrInvalidQuery):
		return true
	}
	return false
}
