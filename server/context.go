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
	"context"
	"net/http"

	"github.com/reelhouse/reel/catalog"
	"github.com/reelhouse/reel/config"
	"github.com/reelhouse/reel/lib/token"
)

type contextKey string

var (
	contextKeyContext = contextKey("context")
)

func withContext(r *http.Request, ctx Context) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), contextKeyContext, ctx))
}

func contextValue(r *http.Request) Context {
	return r.Context().Value(contextKeyContext).(Context)
}

type Context interface {
	Catalog() *catalog.Catalog
	Claims() *token.Claims
	Config() *config.Config
	Issuer() *token.Issuer

	ImageURL(string) string
}

type RequestContext struct {
	catalog *catalog.Catalog
	claims  *token.Claims
	config  *config.Config
	issuer  *token.Issuer
}

func makeContext(ctx Context, claims *token.Claims) RequestContext {
	return RequestContext{
		catalog: ctx.Catalog(),
		claims:  claims,
		config:  ctx.Config(),
		issuer:  ctx.Issuer(),
	}
}

func (ctx RequestContext) Catalog() *catalog.Catalog {
	return ctx.catalog
}

// Claims of the admin token, nil for anonymous requests.
func (ctx RequestContext) Claims() *token.Claims {
	return ctx.claims
}

func (ctx RequestContext) Config() *config.Config {
	return ctx.config
}

func (ctx RequestContext) Issuer() *token.Issuer {
	return ctx.issuer
}

func (ctx RequestContext) ImageURL(p string) string {
	u, err := ctx.catalog.ImageURL(p)
	if err != nil {
		return ""
	}
	return u
}
