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

package main

import (
	"fmt"

	"github.com/reelhouse/reel/lib/token"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "issue an admin token",
	Long:  `Issue a signed token for the admin API and the live socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueToken()
	},
}

var tokenSubject string

func issueToken() error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	issuer, err := token.NewIssuer(cfg.Auth)
	if err != nil {
		return err
	}
	t, err := issuer.Issue(tokenSubject, token.AudienceAdmin)
	if err != nil {
		return err
	}
	fmt.Println(t)
	return nil
}

func init() {
	tokenCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "admin", "token subject")
	rootCmd.AddCommand(tokenCmd)
}
