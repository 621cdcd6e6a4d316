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
	"strings"
)

// Kind enumerates the categories the catalog knows about. Anything else is
// KindUnknown, which still keeps its normalized name.
type Kind int

const (
	KindUnknown Kind = iota
	KindAction
	KindAdventure
	KindComedy
	KindCrime
	KindDocumentary
	KindDrama
	KindFantasy
	KindHorror
	KindRomance
	KindSciFi
	KindThriller
	KindTVSeries
	KindCartoon
)

const (
	// folder root for movie categories
	MoviesFolder = "movies"

	// prefix for ids in unknown categories
	FallbackPrefix = "m"
)

type kindInfo struct {
	name   string
	prefix string
	folder string // empty means movies/<name>
	series bool
}

var kinds = map[Kind]kindInfo{
	KindAction:      {name: "action", prefix: "a"},
	KindAdventure:   {name: "adventure", prefix: "ad"},
	KindComedy:      {name: "comedy", prefix: "c"},
	KindCrime:       {name: "crime", prefix: "cr"},
	KindDocumentary: {name: "documentary", prefix: "do"},
	KindDrama:       {name: "drama", prefix: "dr"},
	KindFantasy:     {name: "fantasy", prefix: "f"},
	KindHorror:      {name: "horror", prefix: "h"},
	KindRomance:     {name: "romance", prefix: "r"},
	KindSciFi:       {name: "sci-fi", prefix: "s"},
	KindThriller:    {name: "thriller", prefix: "t"},
	KindTVSeries:    {name: "tv-series", prefix: "tv", folder: "tv-series", series: true},
	KindCartoon:     {name: "cartoon", prefix: "ca", folder: "cartoons", series: true},
}

var kindNames = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k, info := range kinds {
		m[info.name] = k
	}
	return m
}()

type Category struct {
	kind Kind
	name string
}

// NormalizeCategory lower-cases and trims the name and turns runs of spaces
// into a hyphen.
func NormalizeCategory(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func ParseCategory(name string) Category {
	n := NormalizeCategory(name)
	if k, ok := kindNames[n]; ok {
		return Category{kind: k, name: n}
	}
	return Category{kind: KindUnknown, name: n}
}

func (c Category) Kind() Kind {
	return c.kind
}

func (c Category) Known() bool {
	return c.kind != KindUnknown
}

func (c Category) Empty() bool {
	return c.name == ""
}

func (c Category) String() string {
	return c.name
}

// Prefix is the id prefix for entries in this category.
func (c Category) Prefix() string {
	if info, ok := kinds[c.kind]; ok {
		return info.prefix
	}
	return FallbackPrefix
}

// Folder is the artwork folder for this category.
func (c Category) Folder() string {
	if info, ok := kinds[c.kind]; ok && info.folder != "" {
		return info.folder
	}
	return MoviesFolder + "/" + c.name
}

// Series reports whether entries carry an episode list.
func (c Category) Series() bool {
	return kinds[c.kind].series
}

// Categories lists the known categories in declaration order.
func Categories() []Category {
	var list []Category
	for k := KindAction; k <= KindCartoon; k++ {
		list = append(list, Category{kind: k, name: kinds[k].name})
	}
	return list
}
