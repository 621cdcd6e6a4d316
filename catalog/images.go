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
	"path"
)

// landscape artwork lives in this sub folder of the category folder
const LandscapeFolder = "landscape"

type ImagePaths struct {
	Primary   string `json:"primaryImagePath"`
	Secondary string `json:"secondaryImagePath"`
}

// ResolveImages assembles the portrait (primary) and landscape (secondary)
// artwork paths for filename in category. Only the base name of filename is
// used.
func ResolveImages(c Category, filename string) ImagePaths {
	name := ImageFile(filename)
	if name == "" {
		return ImagePaths{}
	}
	folder := c.Folder()
	return ImagePaths{
		Primary:   folder + "/" + name,
		Secondary: folder + "/" + LandscapeFolder + "/" + name,
	}
}

// ImageFile recovers the bare file name from a stored image path.
func ImageFile(p string) string {
	name := path.Base(p)
	switch name {
	case ".", "/", "..":
		return ""
	}
	return name
}
