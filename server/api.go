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
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/reelhouse/reel/catalog"
	"github.com/reelhouse/reel/lib/str"
	"github.com/reelhouse/reel/view"
)

const (
	ApplicationJson = "application/json"

	HeaderContentType = "Content-Type"
	HeaderLocation    = "Location"

	// request bodies larger than this are rejected
	maxBody = 1 << 20
)

type resizeRequest struct {
	Count *int `json:"count"`
}

type linkRequest struct {
	VideoURL string `json:"videoUrl"`
}

func apiView(w http.ResponseWriter, r *http.Request, view interface{}) {
	apiViewStatus(w, r, http.StatusOK, view)
}

func apiViewStatus(w http.ResponseWriter, r *http.Request, code int, view interface{}) {
	w.Header().Set(HeaderContentType, ApplicationJson)
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.Encode(view)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
}

func recvJson(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, err := readBody(w, r)
	if err == nil {
		err = json.Unmarshal(body, v)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadBody, err)
	}
	return nil
}

func entryLocation(e *catalog.Entry) string {
	return fmt.Sprintf("/api/entries/%s", e.CID)
}

// GET /api/index > view.Index
func apiIndex(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	counts, err := ctx.Catalog().CategoryCounts(r.Context())
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.IndexView(counts))
}

// GET /api/catalog/:category > view.Category
func apiCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	category := catalog.ParseCategory(r.URL.Query().Get(":category"))
	entries, err := ctx.Catalog().ListByCategory(r.Context(), category)
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.CategoryView(ctx, category, entries))
}

// GET /api/entries/:id > view.Entry
func apiEntryGet(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	e, err := ctx.Catalog().LookupEntry(r.Context(), r.URL.Query().Get(":id"))
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.EntryView(ctx, e))
}

// GET /api/slugs/:slug > view.Entry
func apiSlugGet(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	e, err := ctx.Catalog().LookupSlug(r.Context(), r.URL.Query().Get(":slug"))
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.EntryView(ctx, e))
}

// GET /api/slugs/:slug/episodes/:episode > view.Episode
func apiEpisodeGet(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	series, ep, err := ctx.Catalog().Episode(r.Context(),
		r.URL.Query().Get(":slug"), r.URL.Query().Get(":episode"))
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.EpisodeView(series, ep))
}

// GET /api/recent > view.Recent
func apiRecent(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	entries, err := ctx.Catalog().RecentlyAdded(r.Context())
	if err != nil {
		catalogErr(w, err)
		return
	}
	since := time.Now().Add(-ctx.Config().Catalog.Recent)
	apiView(w, r, view.RecentView(ctx, since, entries))
}

// GET /api/search?q=query[&l=limit] > view.Search
func apiSearch(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		badRequest(w, ErrMissingQuery)
		return
	}
	limit := ctx.Config().Catalog.SearchLimit
	if l := str.Atoi(r.URL.Query().Get("l")); l > 0 && l < limit {
		limit = l
	}
	entries, err := ctx.Catalog().Search(r.Context(), q, limit)
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.SearchView(ctx, q, entries))
}

// GET /api/images/:category/:file[?landscape=true] > 307 image url
func apiImage(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	category := catalog.ParseCategory(r.URL.Query().Get(":category"))
	paths := catalog.ResolveImages(category, r.URL.Query().Get(":file"))
	p := paths.Primary
	if r.URL.Query().Get("landscape") == "true" {
		p = paths.Secondary
	}
	if p == "" {
		notFoundErr(w)
		return
	}
	url, err := ctx.Catalog().ImageURL(p)
	if err != nil {
		serverErr(w, err)
		return
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// POST /api/entries < catalog.Input > view.Entry
// 201: created
// 400: invalid input
// 409: slug in use
func apiEntryCreate(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	var in catalog.Input
	if err := recvJson(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	e, err := ctx.Catalog().Create(r.Context(), in)
	if err != nil {
		catalogErr(w, err)
		return
	}
	w.Header().Set(HeaderLocation, entryLocation(e))
	apiViewStatus(w, r, http.StatusCreated, view.EntryView(ctx, e))
}

// PUT /api/entries/:id < catalog.Input > view.Entry
func apiEntryUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	var in catalog.Input
	if err := recvJson(w, r, &in); err != nil {
		badRequest(w, err)
		return
	}
	e, err := ctx.Catalog().Update(r.Context(), r.URL.Query().Get(":id"), in)
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.EntryView(ctx, e))
}

// PATCH /api/entries/:id < json+patch > view.Entry
func apiEntryPatch(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	patch, err := readBody(w, r)
	if err != nil {
		badRequest(w, fmt.Errorf("%w: %s", ErrBadBody, err))
		return
	}
	e, err := ctx.Catalog().Patch(r.Context(), r.URL.Query().Get(":id"), patch)
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.EntryView(ctx, e))
}

// DELETE /api/entries/:id
// 204: no content
func apiEntryDelete(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	err := ctx.Catalog().Delete(r.Context(), r.URL.Query().Get(":id"))
	if err != nil {
		catalogErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PUT /api/entries/:id/episodes < {"count": n} > view.Entry
func apiEpisodesResize(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	var req resizeRequest
	if err := recvJson(w, r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if req.Count == nil {
		badRequest(w, fmt.Errorf("%w: count required", ErrBadBody))
		return
	}
	e, err := ctx.Catalog().ResizeEpisodes(r.Context(), r.URL.Query().Get(":id"), *req.Count)
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.EntryView(ctx, e))
}

// PUT /api/entries/:id/episodes/:n < {"videoUrl": url} > view.Entry
func apiEpisodeLink(w http.ResponseWriter, r *http.Request) {
	ctx := contextValue(r)
	var req linkRequest
	if err := recvJson(w, r, &req); err != nil {
		badRequest(w, err)
		return
	}
	n := str.Atoi(r.URL.Query().Get(":n"))
	e, err := ctx.Catalog().SetEpisodeLink(r.Context(), r.URL.Query().Get(":id"), n, req.VideoURL)
	if err != nil {
		catalogErr(w, err)
		return
	}
	apiView(w, r, view.EntryView(ctx, e))
}
