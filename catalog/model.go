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

package catalog

import (
	"github.com/reelhouse/reel/lib/gorm"
)

type Entry struct {
	gorm.Model
	CID                string    `gorm:"column:cid;uniqueIndex:idx_entry_cid;not null" json:"id"`
	Prefix             string    `gorm:"index:idx_entry_prefix" json:"-"`
	Title              string    `json:"title"`
	Slug               string    `gorm:"uniqueIndex:idx_entry_slug;not null" json:"slug"`
	Category           string    `gorm:"index:idx_entry_category" json:"category"`
	Year               int       `json:"year"`
	Duration           string    `json:"duration"`
	Rating             string    `json:"rating"`
	Description        string    `json:"description"`
	PrimaryImagePath   string    `json:"primaryImagePath"`
	SecondaryImagePath string    `json:"secondaryImagePath"`
	VideoURL           string    `json:"videoUrl,omitempty"`
	Episodes           []Episode `gorm:"-" json:"episodes,omitempty"`
}

func (e Entry) category() Category {
	return ParseCategory(e.Category)
}

func (e Entry) Images() ImagePaths {
	return ImagePaths{Primary: e.PrimaryImagePath, Secondary: e.SecondaryImagePath}
}

type Episode struct {
	gorm.Model
	CID                 string `gorm:"column:cid;uniqueIndex:idx_episode_seq;not null" json:"-"`
	Seq                 int    `gorm:"uniqueIndex:idx_episode_seq" json:"number"`
	EID                 string `gorm:"column:eid" json:"id"`
	Title               string `json:"title"`
	Slug                string `json:"slug"`
	Description         string `json:"description"`
	VideoURL            string `json:"videoUrl"`
	Duration            string `json:"duration"`
	Thumbnail           string `json:"thumbnail"`
	PreviousEpisodeSlug string `json:"previousEpisodeSlug,omitempty"`
	NextEpisodeSlug     string `json:"nextEpisodeSlug,omitempty"`
}

// Available reports whether the episode has something to play.
func (e Episode) Available() bool {
	return e.VideoURL != ""
}

// Sequence tracks the last id handed out for a prefix.
type Sequence struct {
	Prefix string `gorm:"primaryKey"`
	Last   int    `gorm:"column:last_id"`
}

// Input is what an admin submits to create or edit an entry.
type Input struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Year         int    `json:"year"`
	Duration     string `json:"duration"`
	Rating       string `json:"rating"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	VideoURL     string `json:"videoUrl"`
	EpisodeCount *int   `json:"episodeCount,omitempty"`
	Episodes     []Slot `json:"episodes"`
}

// hasEpisodes reports whether the input asks for any episodes at all.
func (in Input) hasEpisodes() bool {
	return (in.EpisodeCount != nil && *in.EpisodeCount > 0) || len(in.Episodes) > 0
}

type Event struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Slug  string `json:"slug,omitempty"`
	Entry *Entry `json:"entry,omitempty"`
}

const (
	EventCreate   = "create"
	EventUpdate   = "update"
	EventDelete   = "delete"
	EventEpisodes = "episodes"
)
