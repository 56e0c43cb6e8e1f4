package playlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"playlist-gen/internal/logging"
	"playlist-gen/internal/mediatypes"
	"playlist-gen/internal/scanner"
)

// ErrInvalidSpec indicates a Spec that cannot be generated: a missing output
// path, no source directories, or an output extension that maps to no known
// playlist format. Check for it with errors.Is.
var ErrInvalidSpec = errors.New("invalid playlist spec")

// Spec describes a single playlist generation request: where to write the
// playlist and which directory trees to pull audio files from. A Spec is a
// plain value; construct it and hand it to Generate.
type Spec struct {
	// OutputPath is the playlist file to write. Its extension selects the
	// format (.pls, .m3u or .m3u8). The file is overwritten if it exists;
	// its parent directory must already exist.
	OutputPath string

	// SourceDirs are the directory trees to scan for audio files, in order.
	// Entries from earlier directories precede entries from later ones.
	SourceDirs []string
}

func (s Spec) validate() error {
	if strings.TrimSpace(s.OutputPath) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidSpec)
	}
	if len(s.SourceDirs) == 0 {
		return fmt.Errorf("%w: no source directories", ErrInvalidSpec)
	}
	for _, dir := range s.SourceDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%w: empty source directory", ErrInvalidSpec)
		}
	}
	return nil
}

// Generate scans the spec's source directories for audio files and writes the
// playlist to the spec's output path, in the format implied by its extension.
//
// Entry paths are written relative to the output file's directory, so the
// playlist stays valid when it is moved together with the audio tree. Entries
// appear in scan order (see scanner.FindAudioFiles), which makes repeated runs
// over an unchanged tree byte-identical.
//
// Generate returns ErrInvalidSpec for a malformed spec and wrapped I/O errors
// when a source directory cannot be read or the output cannot be written. A
// mid-write failure may leave a partial file behind.
func Generate(spec Spec) error {
	if err := spec.validate(); err != nil {
		return err
	}
	format, ok := mediatypes.FormatForPath(spec.OutputPath)
	if !ok {
		return fmt.Errorf("%w: unsupported playlist extension %q", ErrInvalidSpec, filepath.Ext(spec.OutputPath))
	}

	files, err := scanner.FindAudioFiles(spec.SourceDirs...)
	if err != nil {
		return err
	}

	entries, err := relativeEntries(spec.OutputPath, files)
	if err != nil {
		return err
	}

	f, err := os.Create(spec.OutputPath)
	if err != nil {
		return fmt.Errorf("create playlist: %w", err)
	}

	w := bufio.NewWriter(f)
	switch format {
	case mediatypes.FormatPLS:
		err = writePLS(w, entries)
	case mediatypes.FormatM3U:
		err = writeM3U(w, entries)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write playlist %s: %w", spec.OutputPath, err)
	}

	logging.Info("Wrote %s playlist %s (%d entries)", format, spec.OutputPath, len(entries))
	return nil
}

// relativeEntries rewrites each discovered file path relative to the output
// file's directory. Both sides are made absolute first, so the result does
// not depend on the process working directory. Entries use forward slashes.
func relativeEntries(outputPath string, files []string) ([]string, error) {
	outDir, err := filepath.Abs(filepath.Dir(outputPath))
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	entries := make([]string, 0, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", file, err)
		}
		rel, err := filepath.Rel(outDir, abs)
		if err != nil {
			return nil, fmt.Errorf("relativize %s: %w", file, err)
		}
		entries = append(entries, filepath.ToSlash(rel))
	}
	return entries, nil
}

// entryTitle derives a display title from an entry path: the base name with
// its extension removed.
func entryTitle(entry string) string {
	base := filepath.Base(filepath.FromSlash(entry))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
