package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"playlist-gen/internal/mediatypes"
)

// Playlist is the parsed form of a playlist file.
type Playlist struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

// Item is a single entry of a parsed playlist.
type Item struct {
	Name   string `json:"name"`   // base file name of the entry
	Path   string `json:"path"`   // entry path as written in the playlist
	Title  string `json:"title"`  // PLS TitleN when present, otherwise derived from the path
	Exists bool   `json:"exists"` // whether the entry resolves to a file on disk
}

// Parse reads the playlist at path, dispatching on its extension (.pls, .m3u
// or .m3u8). Each entry is resolved against the playlist file's directory and
// checked for existence. The playlist name is the file's base name without
// extension.
func Parse(path string) (*Playlist, error) {
	format, ok := mediatypes.FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported playlist extension %q", ErrInvalidSpec, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	pl := &Playlist{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
	}

	switch format {
	case mediatypes.FormatPLS:
		pl.Items = parsePLS(string(data))
	case mediatypes.FormatM3U:
		pl.Items = parseM3U(string(data))
	}

	dir := filepath.Dir(path)
	for i := range pl.Items {
		pl.Items[i].Exists = resolves(dir, pl.Items[i].Path)
	}
	pl.Count = len(pl.Items)
	return pl, nil
}

// parsePLS extracts items from PLS content. FileN keys define the entries,
// TitleN keys attach titles; unknown keys and the [playlist] section header
// are ignored. Entries are ordered by N regardless of line order.
func parsePLS(data string) []Item {
	files := make(map[int]string)
	titles := make(map[int]string)
	maxIndex := 0

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(key, "File"):
			if n, err := strconv.Atoi(key[len("File"):]); err == nil && n > 0 {
				files[n] = value
				if n > maxIndex {
					maxIndex = n
				}
			}
		case strings.HasPrefix(key, "Title"):
			if n, err := strconv.Atoi(key[len("Title"):]); err == nil && n > 0 {
				titles[n] = value
			}
		}
	}

	var items []Item
	for n := 1; n <= maxIndex; n++ {
		path, ok := files[n]
		if !ok {
			continue
		}
		item := Item{
			Name:  filepath.Base(filepath.FromSlash(path)),
			Path:  path,
			Title: titles[n],
		}
		if item.Title == "" {
			item.Title = entryTitle(path)
		}
		items = append(items, item)
	}
	return items
}

// parseM3U extracts items from M3U content: one path per line, skipping
// blank lines and "#" comment/directive lines. Windows line endings are
// tolerated.
func parseM3U(data string) []Item {
	var items []Item
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, Item{
			Name:  filepath.Base(filepath.FromSlash(line)),
			Path:  line,
			Title: entryTitle(line),
		})
	}
	return items
}

// resolves reports whether entry, resolved against the playlist's directory,
// names an existing file. Windows-style separators in the entry are handled.
func resolves(dir, entry string) bool {
	p := strings.ReplaceAll(entry, "\\", "/")
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, filepath.FromSlash(p))
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
