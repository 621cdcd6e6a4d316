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
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/reelhouse/reel/catalog"
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "catalog entries",
	Long:  `Add, list and remove catalog entries.`,
}

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "add an entry",
	Long:  `Add an entry. Missing title and category are prompted for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return entryAdd()
	},
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "list entries of a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return entryList()
	},
}

var entryRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "remove an entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return entryRm()
	},
}

var entryInput catalog.Input
var episodeCount int
var entryID string
var entryCategory string

// otherCategory lets the user type a category that isn't listed
const otherCategory = "other..."

func promptTitle() (string, error) {
	prompt := promptui.Prompt{
		Label: "Title",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return catalog.ErrMissingTitle
			}
			return nil
		},
	}
	return prompt.Run()
}

func promptCategory() (string, error) {
	var items []string
	for _, c := range catalog.Categories() {
		items = append(items, c.String())
	}
	items = append(items, otherCategory)
	sel := promptui.Select{
		Label: "Category",
		Items: items,
	}
	_, result, err := sel.Run()
	if err != nil || result != otherCategory {
		return result, err
	}
	prompt := promptui.Prompt{
		Label: "Category name",
		Validate: func(s string) error {
			if catalog.ParseCategory(s).Empty() {
				return catalog.ErrMissingCategory
			}
			return nil
		},
	}
	return prompt.Run()
}

func entryAdd() error {
	var err error
	if entryInput.Title == "" {
		entryInput.Title, err = promptTitle()
		if err != nil {
			return err
		}
	}
	if entryInput.Category == "" {
		entryInput.Category, err = promptCategory()
		if err != nil {
			return err
		}
	}

	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	if episodeCount > 0 {
		entryInput.EpisodeCount = &episodeCount
	}
	e, err := c.Create(context.Background(), entryInput)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %s\n", e.CID, e.Slug, e.PrimaryImagePath)
	return nil
}

func entryList() error {
	if entryCategory == "" {
		return catalog.ErrMissingCategory
	}
	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	entries, err := c.ListByCategory(context.Background(), catalog.ParseCategory(entryCategory))
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%-6s %-30s %s\n", e.CID, e.Slug, e.Title)
	}
	return nil
}

func entryRm() error {
	if entryID == "" {
		return errors.New("no id")
	}
	c, err := openCatalog()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := context.Background()
	e, err := c.LookupEntry(ctx, entryID)
	if err != nil {
		return err
	}
	confirm := promptui.Prompt{
		Label:     fmt.Sprintf("Remove %s (%s)", e.Title, e.CID),
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		// declined
		return nil
	}
	return c.Delete(ctx, e.CID)
}

func init() {
	entryCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")

	f := entryAddCmd.Flags()
	f.StringVarP(&entryInput.Title, "title", "t", "", "title")
	f.StringVarP(&entryInput.Category, "category", "g", "", "category")
	f.IntVarP(&entryInput.Year, "year", "y", 0, "release year")
	f.StringVar(&entryInput.Duration, "duration", "", "duration")
	f.StringVar(&entryInput.Rating, "rating", "", "rating")
	f.StringVarP(&entryInput.Description, "description", "d", "", "description")
	f.StringVarP(&entryInput.Image, "image", "i", "", "artwork file name")
	f.StringVarP(&entryInput.VideoURL, "video", "v", "", "video url")
	f.IntVarP(&episodeCount, "episodes", "e", 0, "number of episodes")

	entryListCmd.Flags().StringVarP(&entryCategory, "category", "g", "", "category")
	entryRmCmd.Flags().StringVarP(&entryID, "id", "i", "", "entry id")

	entryCmd.AddCommand(entryAddCmd, entryListCmd, entryRmCmd)
	rootCmd.AddCommand(entryCmd)
}
