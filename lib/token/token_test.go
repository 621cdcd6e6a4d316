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

package token

import (
	"testing"
	"time"

	"github.com/reelhouse/reel/config"
)

func testIssuer(t *testing.T, age time.Duration) *Issuer {
	i, err := NewIssuer(config.AuthConfig{
		Secret: "test-secret",
		Issuer: "reel",
		Age:    age,
	})
	if err != nil {
		t.Fatalf("NewIssuer %s\n", err)
	}
	return i
}

func TestIssueValidate(t *testing.T) {
	i := testIssuer(t, time.Hour)
	tok, err := i.Issue("editor@example.com", AudienceAdmin)
	if err != nil {
		t.Fatalf("Issue %s\n", err)
	}
	claims, err := i.Validate(tok, AudienceAdmin)
	if err != nil {
		t.Fatalf("Validate %s\n", err)
	}
	if claims.Subject != "editor@example.com" {
		t.Errorf("subject %s\n", claims.Subject)
	}
	if claims.Id == "" {
		t.Error("missing token id")
	}

	if _, err := i.Validate(tok, "viewer"); err != ErrInvalidAudience {
		t.Errorf("expected audience mismatch, got %v\n", err)
	}
}

func TestValidateRejects(t *testing.T) {
	i := testIssuer(t, time.Hour)
	tok, _ := i.Issue("editor@example.com", AudienceAdmin)

	other, _ := NewIssuer(config.AuthConfig{Secret: "other", Issuer: "reel", Age: time.Hour})
	if _, err := other.Validate(tok, AudienceAdmin); err == nil {
		t.Error("wrong secret should fail")
	}

	expired := testIssuer(t, -time.Minute)
	tok, _ = expired.Issue("editor@example.com", AudienceAdmin)
	if _, err := i.Validate(tok, AudienceAdmin); err == nil {
		t.Error("expired token should fail")
	}

	if _, err := i.Validate("not.a.token", AudienceAdmin); err == nil {
		t.Error("garbage should fail")
	}

	if _, err := i.Issue("", AudienceAdmin); err != ErrInvalidSubject {
		t.Errorf("expected invalid subject, got %v\n", err)
	}
}

func TestSecretRequired(t *testing.T) {
	if _, err := NewIssuer(config.AuthConfig{}); err != ErrSecretRequired {
		t.Errorf("expected secret required, got %v\n", err)
	}
}
