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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	config, err := TestConfig()
	if err != nil {
		t.Fatalf("TestConfig %s\n", err)
	}
	if config.Catalog.DB.Driver != DriverSqlite {
		t.Errorf("driver %s\n", config.Catalog.DB.Driver)
	}
	if config.Cache.TTL != 5*time.Minute {
		t.Errorf("ttl %s\n", config.Cache.TTL)
	}
	if config.Catalog.SearchLimit != 100 {
		t.Errorf("search limit %d\n", config.Catalog.SearchLimit)
	}
	if config.Images.Bucket.Enabled() {
		t.Error("bucket should be disabled")
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Validate %s\n", err)
	}
}

func TestLoadConfig(t *testing.T) {
	if os.Getenv("TEST_CONFIG") != "" {
		t.Skip("TEST_CONFIG set")
	}
	dir := t.TempDir()
	yaml := []byte(`
Catalog:
  DB:
    Source: my.db
  RecentLimit: 10
Search:
  BleveDir: index
Cache:
  Driver: redis
  TTL: 30s
`)
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644)
	if err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig %s\n", err)
	}
	if config.Catalog.DB.Source != dir+"/my.db" {
		t.Errorf("source not relative to config: %s\n", config.Catalog.DB.Source)
	}
	if config.Search.BleveDir != dir+"/index" {
		t.Errorf("bleve dir not relative to config: %s\n", config.Search.BleveDir)
	}
	if config.Catalog.RecentLimit != 10 {
		t.Errorf("recent limit %d\n", config.Catalog.RecentLimit)
	}
	if config.Cache.Driver != CacheRedis || config.Cache.TTL != 30*time.Second {
		t.Errorf("cache %+v\n", config.Cache)
	}
	if err := config.Validate(); err != ErrMissingSecret {
		t.Errorf("expected missing secret, got %v\n", err)
	}
}

func TestRelativePath(t *testing.T) {
	cases := map[string]bool{
		"catalog.db":                    true,
		"/var/lib/reel/catalog.db":      false,
		"file::memory:":                 false,
		":memory:":                      false,
		"user:pass@tcp(db:3306)/reel":   false,
		"host=db user=reel dbname=reel": false,
		"":                              false,
	}
	for val, expect := range cases {
		if relativePath(val) != expect {
			t.Errorf("relativePath(%q) expected %v\n", val, expect)
		}
	}
}
