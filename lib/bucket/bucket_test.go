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

package bucket

import (
	"strings"
	"testing"
	"time"

	"github.com/reelhouse/reel/config"
)

func testBucket(t *testing.T, prefix string) *Bucket {
	b, err := Open(config.BucketConfig{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		BucketName:      "artwork",
		ObjectPrefix:    prefix,
		URLExpiration:   time.Hour,
	})
	if err != nil {
		t.Fatalf("Open %s\n", err)
	}
	return b
}

func TestKey(t *testing.T) {
	b := testBucket(t, "reel")
	if k := b.Key("movies/action/poster.jpg"); k != "reel/movies/action/poster.jpg" {
		t.Errorf("key %s\n", k)
	}
	b = testBucket(t, "")
	if k := b.Key("/cartoons/landscape/x.png"); k != "cartoons/landscape/x.png" {
		t.Errorf("key %s\n", k)
	}
}

func TestPresign(t *testing.T) {
	b := testBucket(t, "reel")
	u, err := b.Presign("movies/action/poster.jpg")
	if err != nil {
		t.Fatalf("Presign %s\n", err)
	}
	if u.Path != "/artwork/reel/movies/action/poster.jpg" {
		t.Errorf("path %s\n", u.Path)
	}
	if !strings.Contains(u.RawQuery, "X-Amz-Signature") {
		t.Errorf("not signed %s\n", u.String())
	}
}
