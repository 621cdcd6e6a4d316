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
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/reelhouse/reel/config"
)

var (
	ErrSecretRequired  = errors.New("token secret required")
	ErrInvalidMethod   = errors.New("token signature must be HS256")
	ErrInvalidIssuer   = errors.New("invalid token issuer")
	ErrInvalidSubject  = errors.New("invalid token subject")
	ErrInvalidAudience = errors.New("audience mismatch")
)

const (
	// admin tokens may mutate the catalog
	AudienceAdmin = "admin"
)

type Claims struct {
	jwt.StandardClaims
}

type Issuer struct {
	config config.AuthConfig
}

func NewIssuer(config config.AuthConfig) (*Issuer, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	return &Issuer{config: config}, nil
}

// Issue signs a token for subject valid for the configured age.
func (i *Issuer) Issue(subject, audience string) (string, error) {
	if subject == "" {
		return "", ErrInvalidSubject
	}
	now := time.Now()
	claims := Claims{
		jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    i.config.Issuer,
			Subject:   subject,
			Audience:  audience,
			IssuedAt:  now.Unix(),
			NotBefore: now.Unix(),
			ExpiresAt: now.Add(i.config.Age).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.config.Secret))
}

// Validate verifies signature, expiry, issuer and audience and returns the
// claims.
func (i *Issuer) Validate(tokenString, audience string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMethod, token.Header["alg"])
		}
		return []byte(i.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !claims.VerifyIssuer(i.config.Issuer, true) {
		return nil, ErrInvalidIssuer
	}
	if !claims.VerifyAudience(audience, true) {
		return nil, ErrInvalidAudience
	}
	if claims.Subject == "" {
		return nil, ErrInvalidSubject
	}
	return &claims, nil
}
