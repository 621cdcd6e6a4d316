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
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "reel stats",
	Long:  `Print entry and episode counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stats()
	},
}

func stats() error {
	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := context.Background()
	entries, err := c.EntryCount(ctx)
	if err != nil {
		return err
	}
	episodes, err := c.EpisodeCount(ctx)
	if err != nil {
		return err
	}
	counts, err := c.CategoryCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("entries %d\n", entries)
	fmt.Printf("episodes %d\n", episodes)
	var names []string
	for k := range counts {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("  %s %d\n", k, counts[k])
	}
	return nil
}

func init() {
	statsCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(statsCmd)
}
