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
	"errors"
	"fmt"

	"github.com/reelhouse/reel/catalog"
	"github.com/spf13/cobra"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "series episodes",
	Long:  `Resize the episode list of a series or set one episode link.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return episodes(cmd)
	},
}

var episodesID string
var episodesCount int
var episodeNumber int
var episodeURL string

func episodes(cmd *cobra.Command) error {
	if episodesID == "" {
		return errors.New("no id")
	}
	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := context.Background()
	var e *catalog.Entry
	switch {
	case cmd.Flags().Changed("count"):
		e, err = c.ResizeEpisodes(ctx, episodesID, episodesCount)
	case episodeNumber > 0:
		e, err = c.SetEpisodeLink(ctx, episodesID, episodeNumber, episodeURL)
	default:
		e, err = c.LookupEntry(ctx, episodesID)
	}
	if err != nil {
		return err
	}
	for _, ep := range e.Episodes {
		fmt.Printf("%3d %-12s %s\n", ep.Seq, ep.Slug, ep.VideoURL)
	}
	return nil
}

func init() {
	episodesCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	episodesCmd.Flags().StringVarP(&episodesID, "id", "i", "", "series id")
	episodesCmd.Flags().IntVarP(&episodesCount, "count", "n", 0, "resize to count episodes")
	episodesCmd.Flags().IntVarP(&episodeNumber, "episode", "e", 0, "episode number to link")
	episodesCmd.Flags().StringVarP(&episodeURL, "url", "u", "", "episode video url")
	rootCmd.AddCommand(episodesCmd)
}
