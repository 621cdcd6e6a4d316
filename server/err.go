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

package server

import (
	"errors"
	"net/http"

	"github.com/reelhouse/reel/catalog"
	"github.com/reelhouse/reel/lib/log"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrMissingQuery = errors.New("missing query")
	ErrBadBody      = errors.New("malformed request body")
)

const (
	// seconds a client should wait before retrying a store failure
	retryAfter = "5"
)

func serverErr(w http.ResponseWriter, err error) {
	if err != nil {
		log.Errorf("%s\n", err)
		handleErr(w, "bummer", http.StatusInternalServerError)
	}
}

func authErr(w http.ResponseWriter, err error) {
	if err != nil {
		handleErr(w, err.Error(), http.StatusUnauthorized)
	}
}

func notFoundErr(w http.ResponseWriter) {
	handleErr(w, ErrNotFound.Error(), http.StatusNotFound)
}

func badRequest(w http.ResponseWriter, err error) {
	handleErr(w, err.Error(), http.StatusBadRequest)
}

// catalogErr maps catalog failures to a response: validation 400, missing
// 404, conflict 409, store 503.
func catalogErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrEntryNotFound),
		errors.Is(err, catalog.ErrEpisodeNotFound):
		handleErr(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrSlugExists):
		handleErr(w, err.Error(), http.StatusConflict)
	case catalog.ValidationError(err):
		badRequest(w, err)
	case catalog.Retryable(err):
		log.Warnf("%s\n", err)
		w.Header().Set("Retry-After", retryAfter)
		handleErr(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		serverErr(w, err)
	}
}

func handleErr(w http.ResponseWriter, msg string, code int) {
	http.Error(w, msg, code)
}
