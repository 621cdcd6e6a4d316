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
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reelhouse/reel/catalog"
	"github.com/reelhouse/reel/config"
	"github.com/reelhouse/reel/lib/token"
	. "github.com/smartystreets/goconvey/convey"
)

type testServer struct {
	handler http.Handler
	catalog *catalog.Catalog
	admin   string
}

func newTestServer(t *testing.T) *testServer {
	config, err := config.TestConfig()
	if err != nil {
		t.Fatal(err)
	}
	config.Catalog.DB.Source = filepath.Join(t.TempDir(), "catalog.db")
	c, err := makeCatalog(config)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	issuer, err := token.NewIssuer(config.Auth)
	if err != nil {
		t.Fatal(err)
	}
	admin, err := issuer.Issue("tester", token.AudienceAdmin)
	if err != nil {
		t.Fatal(err)
	}
	ctx := RequestContext{catalog: c, config: config, issuer: issuer}
	return &testServer{handler: makeMux(ctx, nil), catalog: c, admin: admin}
}

func (s *testServer) do(method, path, body, auth string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if auth != "" {
		r.Header.Set(AuthorizationHeader, BearerAuthorization+" "+auth)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, r)
	return w
}

func decode(w *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}

func TestAdminRequiresToken(t *testing.T) {
	s := newTestServer(t)
	body := `{"title":"Alien","category":"horror"}`

	w := s.do("POST", "/api/entries", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: %d", w.Code)
	}
	w = s.do("POST", "/api/entries", body, "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: %d", w.Code)
	}
	w = s.do("DELETE", "/api/entries/h1", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("delete: %d", w.Code)
	}
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc": "abc",
		"bearer abc": "abc",
		"abc":        "abc",
		"Basic abc":  "",
		"":           "",
	}
	for header, want := range tests {
		r := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			r.Header.Set(AuthorizationHeader, header)
		}
		if got := bearerToken(r); got != want {
			t.Errorf("%q: got %q, want %q", header, got, want)
		}
	}
}

func TestEntryAPI(t *testing.T) {
	Convey("Given a server", t, func() {
		s := newTestServer(t)

		w := s.do("POST", "/api/entries", `{"title":"Die Hard","category":"action","image":"die-hard.jpg"}`, s.admin)
		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Header().Get(HeaderLocation), ShouldEqual, "/api/entries/a1")
		var e catalog.Entry
		So(decode(w, &e), ShouldBeNil)
		So(e.CID, ShouldEqual, "a1")
		So(e.Slug, ShouldEqual, "die-hard")

		Convey("The entry is found by id and slug", func() {
			w := s.do("GET", "/api/entries/a1", "", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var v map[string]interface{}
			So(decode(w, &v), ShouldBeNil)
			So(v["primaryImagePath"], ShouldEqual, "movies/action/die-hard.jpg")
			So(v["primaryImageUrl"], ShouldEqual, "/images/movies/action/die-hard.jpg")

			w = s.do("GET", "/api/slugs/die-hard", "", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("The category lists it", func() {
			w := s.do("GET", "/api/catalog/Action", "", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var v struct {
				Name    string
				Entries []catalog.Entry
			}
			So(decode(w, &v), ShouldBeNil)
			So(v.Name, ShouldEqual, "action")
			So(len(v.Entries), ShouldEqual, 1)
		})

		Convey("Search and recent find it", func() {
			w := s.do("GET", "/api/search?q=hard", "", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"id":"a1"`)

			w = s.do("GET", "/api/recent", "", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"id":"a1"`)

			w = s.do("GET", "/api/search", "", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)

			w = s.do("GET", "/api/search?q=title:%3Ehard", "", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A duplicate title conflicts", func() {
			w := s.do("POST", "/api/entries", `{"title":"Die Hard","category":"drama"}`, s.admin)
			So(w.Code, ShouldEqual, http.StatusConflict)
		})

		Convey("Invalid input is rejected", func() {
			w := s.do("POST", "/api/entries", `{"category":"drama"}`, s.admin)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			w = s.do("POST", "/api/entries", `{"title":`, s.admin)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Updating keeps the id", func() {
			w := s.do("PUT", "/api/entries/a1", `{"title":"Die Hard 2","category":"thriller"}`, s.admin)
			So(w.Code, ShouldEqual, http.StatusOK)
			var e catalog.Entry
			So(decode(w, &e), ShouldBeNil)
			So(e.CID, ShouldEqual, "a1")
			So(e.Slug, ShouldEqual, "die-hard-2")
			So(e.PrimaryImagePath, ShouldEqual, "movies/thriller/die-hard.jpg")
		})

		Convey("Patching changes one field", func() {
			w := s.do("PATCH", "/api/entries/a1", `[{"op":"replace","path":"/year","value":1988}]`, s.admin)
			So(w.Code, ShouldEqual, http.StatusOK)
			var e catalog.Entry
			So(decode(w, &e), ShouldBeNil)
			So(e.Year, ShouldEqual, 1988)
			So(e.Slug, ShouldEqual, "die-hard")
		})

		Convey("Deleting removes it", func() {
			w := s.do("DELETE", "/api/entries/a1", "", s.admin)
			So(w.Code, ShouldEqual, http.StatusNoContent)
			w = s.do("GET", "/api/entries/a1", "", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			w = s.do("DELETE", "/api/entries/a1", "", s.admin)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestEpisodeAPI(t *testing.T) {
	Convey("Given a series", t, func() {
		s := newTestServer(t)
		w := s.do("POST", "/api/entries", `{"title":"Bluey","category":"cartoon","episodeCount":2}`, s.admin)
		So(w.Code, ShouldEqual, http.StatusCreated)

		Convey("An episode has navigation", func() {
			w := s.do("GET", "/api/slugs/bluey/episodes/episode-1", "", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var v struct {
				Series    struct{ ID string }
				Episode   catalog.Episode
				Available bool
			}
			So(decode(w, &v), ShouldBeNil)
			So(v.Series.ID, ShouldEqual, "ca1")
			So(v.Episode.NextEpisodeSlug, ShouldEqual, "episode-2")
			So(v.Available, ShouldBeFalse)

			w = s.do("GET", "/api/slugs/bluey/episodes/episode-7", "", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Links and resizing", func() {
			w := s.do("PUT", "/api/entries/ca1/episodes/2", `{"videoUrl":"u2"}`, s.admin)
			So(w.Code, ShouldEqual, http.StatusOK)

			w = s.do("PUT", "/api/entries/ca1/episodes", `{"count":4}`, s.admin)
			So(w.Code, ShouldEqual, http.StatusOK)
			var e catalog.Entry
			So(decode(w, &e), ShouldBeNil)
			So(len(e.Episodes), ShouldEqual, 4)
			So(e.Episodes[1].VideoURL, ShouldEqual, "u2")

			w = s.do("PUT", "/api/entries/ca1/episodes/9", `{"videoUrl":"x"}`, s.admin)
			So(w.Code, ShouldEqual, http.StatusBadRequest)

			w = s.do("PUT", "/api/entries/ca1/episodes", `{}`, s.admin)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestImageRedirect(t *testing.T) {
	s := newTestServer(t)
	w := s.do("GET", "/api/images/tv-series/show.jpg?landscape=true", "", "")
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/images/tv-series/landscape/show.jpg" {
		t.Errorf("location %s", loc)
	}
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)
	w := s.do("GET", "/api/index", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"name":"tv-series"`) {
		t.Errorf("body %s", w.Body.String())
	}
}

func TestStoreUnavailable(t *testing.T) {
	s := newTestServer(t)
	w := s.do("POST", "/api/entries", `{"title":"Heat","category":"crime"}`, s.admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d", w.Code)
	}
	s.catalog.Close()

	for _, path := range []string{"/api/catalog/crime", "/api/entries/cr1", "/api/slugs/heat"} {
		w := s.do("GET", path, "", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: %d", path, w.Code)
		}
		if got := w.Header().Get("Retry-After"); got != "5" {
			t.Errorf("%s: Retry-After %q", path, got)
		}
	}

	w = s.do("POST", "/api/entries", `{"title":"Ronin","category":"crime"}`, s.admin)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("create: %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "5" {
		t.Errorf("create: Retry-After %q", got)
	}

	// bad input is still rejected as such
	w = s.do("POST", "/api/entries", `{"category":"crime"}`, s.admin)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing title: %d", w.Code)
	}
}
