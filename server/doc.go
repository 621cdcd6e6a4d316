// Package server Reel API
//
// This is the service API for the Reel content catalog.
//
// Schemes: https
// Host: yourhost.com
// BasePath: /api
// Version: 0.3.0
// License: AGPLv3 https://www.gnu.org/licenses/agpl-3.0.en.html
// SecurityDefinitions:
//  Bearer:
//   type: apiKey
//   name: Authorization
//   description: send Authorization Bearer {token}
//   scheme: bearer
//   in: header
// Consumes:
// - application/json
// Produces:
// - application/json
//
// swagger:meta
package server

import (
	"github.com/reelhouse/reel/catalog"
	"github.com/reelhouse/reel/view"
)

// ---------------------------------------------------------------------------

// swagger:route GET /index Index
//  Categories with entry counts
// responses:
//  200: IndexResponse

// swagger:route GET /catalog/{category} CategoryList
//  List the entries of a category
// parameters:
//  + in: path
//    name: category
//    type: string
//    required: true
// responses:
//  200: CategoryResponse

// swagger:route GET /entries/{id} EntryGet
// parameters:
//  + in: path
//    name: id
//    type: string
//    required: true
// responses:
//  200: EntryResponse
//  404: description: entry not found

// swagger:route GET /slugs/{slug} SlugGet
// parameters:
//  + in: path
//    name: slug
//    type: string
//    required: true
// responses:
//  200: EntryResponse
//  404: description: entry not found

// swagger:route GET /slugs/{slug}/episodes/{episode} EpisodeGet
// parameters:
//  + in: path
//    name: slug
//    type: string
//    required: true
//  + in: path
//    name: episode
//    type: string
//    required: true
// responses:
//  200: EpisodeResponse
//  404: description: series or episode not found

// swagger:route GET /recent Recent
// responses:
//  200: RecentResponse

// swagger:route GET /search Search
// parameters:
//  + in: query
//    name: q
//    type: string
//    required: true
// responses:
//  200: SearchResponse
//  400: description: missing or malformed query

// ---------------------------------------------------------------------------

// swagger:route POST /entries EntryCreate
// security:
//  - Bearer:
// responses:
//  201: EntryResponse
//  400: description: invalid input
//  401: description: unauthorized
//  409: description: slug in use
//  503: description: storage unavailable, retry

// swagger:route PUT /entries/{id} EntryUpdate
// security:
//  - Bearer:
// responses:
//  200: EntryResponse
//  400: description: invalid input
//  404: description: entry not found
//  409: description: slug in use

// swagger:route PATCH /entries/{id} EntryPatch
// security:
//  - Bearer:
// consumes:
//  - application/json-patch+json
// responses:
//  200: EntryResponse
//  400: description: invalid patch
//  404: description: entry not found

// swagger:route DELETE /entries/{id} EntryDelete
// security:
//  - Bearer:
// responses:
//  204: description: deleted
//  404: description: entry not found

// swagger:route PUT /entries/{id}/episodes EpisodesResize
// security:
//  - Bearer:
// responses:
//  200: EntryResponse
//  400: description: not a series

// swagger:route PUT /entries/{id}/episodes/{n} EpisodeLink
// security:
//  - Bearer:
// responses:
//  200: EntryResponse
//  400: description: episode out of range

// ---------------------------------------------------------------------------

// swagger:parameters EntryCreate EntryUpdate
type EntryParam struct {
	// in: body
	Body struct {
		catalog.Input
	}
}

// swagger:parameters EpisodesResize
type ResizeParam struct {
	// in: body
	Body struct {
		resizeRequest
	}
}

// swagger:parameters EpisodeLink
type LinkParam struct {
	// in: body
	Body struct {
		linkRequest
	}
}

// swagger:response
type IndexResponse struct {
	// in: body
	Body struct {
		view.Index
	}
}

// swagger:response
type CategoryResponse struct {
	// in: body
	Body struct {
		view.Category
	}
}

// swagger:response
type EntryResponse struct {
	// in: body
	Body struct {
		view.Entry
	}
}

// swagger:response
type EpisodeResponse struct {
	// in: body
	Body struct {
		view.Episode
	}
}

// swagger:response
type RecentResponse struct {
	// in: body
	Body struct {
		view.Recent
	}
}

// swagger:response
type SearchResponse struct {
	// in: body
	Body struct {
		view.Search
	}
}
