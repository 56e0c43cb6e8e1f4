package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"playlist-gen/internal/logging"
	"playlist-gen/internal/mediatypes"
)

// FindAudioFiles walks each directory in dirs recursively, in the order given,
// and returns the paths of every audio file found. All matches from dirs[0]
// come first, then dirs[1], and so on. Within a directory, entries follow
// filepath.WalkDir's lexical order, so the result is deterministic for a
// given tree.
//
// Hidden files and directories (names starting with ".") are skipped, except
// when a source directory itself is hidden.
//
// Returned paths are rooted at the directory arguments: passing a relative
// directory yields relative paths, an absolute one yields absolute paths.
//
// The first unreadable or missing directory aborts the scan with an error.
func FindAudioFiles(dirs ...string) ([]string, error) {
	var found []string
	for _, dir := range dirs {
		count := 0
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !mediatypes.IsAudioFile(d.Name()) {
				return nil
			}
			found = append(found, path)
			count++
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		logging.Debug("Found %d audio files under %s", count, dir)
	}
	return found, nil
}
