package core

import "strings"

// MovieType distinguishes single files from folder-grouped movies.
type MovieType string

const (
	MovieTypeFile   MovieType = "file"
	MovieTypeFolder MovieType = "folder"
)

// SourceFolderScan marks a listing built by scanning the library root.
const SourceFolderScan = "folder_scan"

// MovieFile is one playable file of a movie.
type MovieFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size,omitempty"`
}

// Movie is one entry under the library root.
type Movie struct {
	Name  string      `json:"name"`
	Type  MovieType   `json:"type"`
	Files []MovieFile `json:"files"`
}

// MovieCache is a complete library listing. It is never updated in place.
type MovieCache struct {
	Source string  `json:"source"`
	Root   string  `json:"root"`
	Count  int     `json:"count"`
	Movies []Movie `json:"movies"`
	Error  string  `json:"error,omitempty"`
}

// Find returns the movie with the given name, ignoring case.
func (c *MovieCache) Find(name string) *Movie {
	if c == nil {
		return nil
	}
	for i := range c.Movies {
		if strings.EqualFold(c.Movies[i].Name, name) {
			return &c.Movies[i]
		}
	}
	return nil
}

// Len returns the number of movies in the listing.
func (c *MovieCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Movies)
}

// IsEmpty returns true if the listing has no movies.
func (c *MovieCache) IsEmpty() bool {
	return c.Len() == 0
}

// HasError reports whether the scan failed.
func (c *MovieCache) HasError() bool {
	return c != nil && c.Error != ""
}
