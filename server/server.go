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
	"net/http"
	"strings"

	"github.com/bmizerany/pat"
	"github.com/reelhouse/reel/catalog"
	"github.com/reelhouse/reel/config"
	"github.com/reelhouse/reel/lib/hub"
	"github.com/reelhouse/reel/lib/log"
	"github.com/reelhouse/reel/lib/token"
)

const (
	AuthorizationHeader = "Authorization"
	BearerAuthorization = "Bearer"
)

func bearerToken(r *http.Request) string {
	value := r.Header.Get(AuthorizationHeader)
	if value == "" {
		return ""
	}
	result := strings.Fields(value)
	switch len(result) {
	case 1:
		// Authorization: <token>
		return result[0]
	case 2:
		// Authorization: Bearer <token>
		if strings.EqualFold(result[0], BearerAuthorization) {
			return result[1]
		}
	}
	return ""
}

func authorizeAdmin(ctx Context, r *http.Request) (*token.Claims, error) {
	t := bearerToken(r)
	if t == "" {
		return nil, ErrUnauthorized
	}
	claims, err := ctx.Issuer().Validate(t, token.AudienceAdmin)
	if err != nil {
		log.Debugf("token: %s\n", err)
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func authHandler(ctx RequestContext, handler http.HandlerFunc) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		claims, err := authorizeAdmin(ctx, r)
		if err != nil {
			authErr(w, err)
			return
		}
		handler.ServeHTTP(w, withContext(r, makeContext(ctx, claims)))
	}
	return http.HandlerFunc(fn)
}

func requestHandler(ctx RequestContext, handler http.HandlerFunc) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, withContext(r, ctx))
	}
	return http.HandlerFunc(fn)
}

// liveAuth accepts admin tokens on the live socket.
type liveAuth struct {
	issuer *token.Issuer
}

func (a liveAuth) Authenticate(t string) bool {
	_, err := a.issuer.Validate(t, token.AudienceAdmin)
	return err == nil
}

func hubHandler(ctx RequestContext, h *hub.Hub) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		r = withContext(r, ctx)
		h.Handle(liveAuth{ctx.Issuer()}, w, r)
	}
	return http.HandlerFunc(fn)
}

func makeCatalog(config *config.Config) (*catalog.Catalog, error) {
	c := catalog.NewCatalog(config)
	err := c.Open()
	return c, err
}

// makeHub starts a hub that relays every catalog event to live clients.
func makeHub(c *catalog.Catalog) *hub.Hub {
	h := hub.NewHub()
	go h.Run()
	c.OnChange(func(e catalog.Event) {
		data, err := json.Marshal(e)
		if err != nil {
			log.Errorf("event %s: %s\n", e.ID, err)
			return
		}
		h.Broadcast(data)
	})
	return h
}

func makeMux(ctx RequestContext, h *hub.Hub) http.Handler {
	mux := pat.New()

	// read
	mux.Get("/api/index", requestHandler(ctx, apiIndex))
	mux.Get("/api/catalog/:category", requestHandler(ctx, apiCatalog))
	mux.Get("/api/entries/:id", requestHandler(ctx, apiEntryGet))
	mux.Get("/api/slugs/:slug/episodes/:episode", requestHandler(ctx, apiEpisodeGet))
	mux.Get("/api/slugs/:slug", requestHandler(ctx, apiSlugGet))
	mux.Get("/api/recent", requestHandler(ctx, apiRecent))
	mux.Get("/api/search", requestHandler(ctx, apiSearch))
	mux.Get("/api/images/:category/:file", requestHandler(ctx, apiImage))

	// admin
	mux.Post("/api/entries", authHandler(ctx, apiEntryCreate))
	mux.Put("/api/entries/:id/episodes/:n", authHandler(ctx, apiEpisodeLink))
	mux.Put("/api/entries/:id/episodes", authHandler(ctx, apiEpisodesResize))
	mux.Put("/api/entries/:id", authHandler(ctx, apiEntryUpdate))
	mux.Patch("/api/entries/:id", authHandler(ctx, apiEntryPatch))
	mux.Del("/api/entries/:id", authHandler(ctx, apiEntryDelete))

	// Hub
	if h != nil {
		mux.Get("/live", hubHandler(ctx, h))
	}

	return mux
}

func Serve(config *config.Config) error {
	issuer, err := token.NewIssuer(config.Auth)
	log.CheckError(err)

	catalog, err := makeCatalog(config)
	log.CheckError(err)
	defer catalog.Close()

	hub := makeHub(catalog)

	scheduler, err := schedule(config, catalog)
	log.CheckError(err)
	defer scheduler.Stop()

	// base context for all requests
	ctx := RequestContext{
		catalog: catalog,
		config:  config,
		issuer:  issuer,
	}

	log.Printf("listening on %s\n", config.Server.Listen)
	http.Handle("/", makeMux(ctx, hub))
	return http.ListenAndServe(config.Server.Listen, nil)
}
