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
	"errors"
	"fmt"

	"github.com/reelhouse/reel/lib/slug"
	"github.com/reelhouse/reel/lib/str"
)

var ErrSlotRange = errors.New("episode slot out of range")

// Slot is one position in an episode list. A slot without a VideoURL is
// empty; the optional fields override the series defaults.
type Slot struct {
	VideoURL    string `json:"videoUrl"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

func (s Slot) Empty() bool {
	return s.VideoURL == ""
}

// SeriesInfo supplies defaults for episodes that don't set their own.
type SeriesInfo struct {
	Description string
	Duration    string
	Thumbnail   string
}

type EpisodeList struct {
	slots []Slot
}

func NewEpisodeList(slots ...Slot) *EpisodeList {
	l := &EpisodeList{}
	l.slots = append(l.slots, slots...)
	return l
}

// EpisodeListFrom rebuilds the slot list from persisted episodes, which must
// be ordered by position. Values equal to the generated title or to the
// series defaults are not kept as overrides.
func EpisodeListFrom(episodes []Episode, info SeriesInfo) *EpisodeList {
	l := &EpisodeList{slots: make([]Slot, len(episodes))}
	for i, e := range episodes {
		s := Slot{VideoURL: e.VideoURL}
		if e.Title != episodeTitle(i+1) {
			s.Title = e.Title
		}
		if e.Description != info.Description {
			s.Description = e.Description
		}
		if e.Duration != info.Duration {
			s.Duration = e.Duration
		}
		if e.Thumbnail != info.Thumbnail {
			s.Thumbnail = e.Thumbnail
		}
		l.slots[i] = s
	}
	return l
}

func (l *EpisodeList) Len() int {
	return len(l.slots)
}

func (l *EpisodeList) Slots() []Slot {
	return append([]Slot(nil), l.slots...)
}

func (l *EpisodeList) Slot(index int) (Slot, error) {
	if index < 0 || index >= len(l.slots) {
		return Slot{}, ErrSlotRange
	}
	return l.slots[index], nil
}

// Resize grows the list with empty slots or truncates it to n. Existing
// slots keep their position and payload. Negative n is treated as 0.
func (l *EpisodeList) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n > len(l.slots):
		l.slots = append(l.slots, make([]Slot, n-len(l.slots))...)
	case n < len(l.slots):
		l.slots = l.slots[:n:n]
	}
}

// SetLink replaces the video url at index without moving other slots.
func (l *EpisodeList) SetLink(index int, url string) error {
	if index < 0 || index >= len(l.slots) {
		return fmt.Errorf("%w: %d of %d", ErrSlotRange, index, len(l.slots))
	}
	l.slots[index].VideoURL = url
	return nil
}

// Set replaces the whole slot at index.
func (l *EpisodeList) Set(index int, s Slot) error {
	if index < 0 || index >= len(l.slots) {
		return fmt.Errorf("%w: %d of %d", ErrSlotRange, index, len(l.slots))
	}
	l.slots[index] = s
	return nil
}

func episodeTitle(i int) string {
	return "Episode " + str.Itoa(i)
}

func episodeSlug(i int) string {
	return slug.Number("episode", i)
}

func episodeID(seriesSlug string, i int) string {
	return seriesSlug + "-ep" + str.Itoa(i)
}

// Materialize produces one Episode per slot, empty slots included, so that
// previous and next links always point at an existing episode. Episodes are
// numbered from 1.
func (l *EpisodeList) Materialize(seriesSlug string, info SeriesInfo) []Episode {
	n := len(l.slots)
	episodes := make([]Episode, n)
	for i, s := range l.slots {
		num := i + 1
		e := Episode{
			Seq:         num,
			EID:         episodeID(seriesSlug, num),
			Slug:        episodeSlug(num),
			Title:       s.Title,
			Description: s.Description,
			VideoURL:    s.VideoURL,
			Duration:    s.Duration,
			Thumbnail:   s.Thumbnail,
		}
		if e.Title == "" {
			e.Title = episodeTitle(num)
		}
		if e.Description == "" {
			e.Description = info.Description
		}
		if e.Duration == "" {
			e.Duration = info.Duration
		}
		if e.Thumbnail == "" {
			e.Thumbnail = info.Thumbnail
		}
		if num > 1 {
			e.PreviousEpisodeSlug = episodeSlug(num - 1)
		}
		if num < n {
			e.NextEpisodeSlug = episodeSlug(num + 1)
		}
		episodes[i] = e
	}
	return episodes
}
