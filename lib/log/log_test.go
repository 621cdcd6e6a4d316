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

package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reelhouse/reel/config"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Setup(config.LogConfig{Level: "warn", JSON: true})

	Printf("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be filtered: %s\n", out)
	}
	if !strings.Contains(out, `"msg":"shown 2"`) {
		t.Errorf("expected json warning: %s\n", out)
	}

	buf.Reset()
	Setup(config.LogConfig{Level: "bogus"})
	Printf("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("bad level should fall back to info: %s\n", buf.String())
	}
}
