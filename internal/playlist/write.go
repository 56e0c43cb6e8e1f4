package playlist

import (
	"fmt"
	"io"
)

// writePLS serializes entries in the PLS format: a [playlist] header, then
// FileN/TitleN/LengthN keys per entry (1-indexed, in entry order), then a
// NumberOfEntries/Version trailer. Lines are LF-terminated. No media is ever
// inspected, so every LengthN is -1 (duration unknown).
func writePLS(w io.Writer, entries []string) error {
	if _, err := fmt.Fprintln(w, "[playlist]"); err != nil {
		return err
	}
	for i, entry := range entries {
		n := i + 1
		_, err := fmt.Fprintf(w, "File%d=%s\nTitle%d=%s\nLength%d=-1\n", n, entry, n, entryTitle(entry), n)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "NumberOfEntries=%d\nVersion=2\n", len(entries))
	return err
}

// writeM3U serializes entries in the plain M3U format: one path per line,
// LF-terminated, no header.
func writeM3U(w io.Writer, entries []string) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return err
		}
	}
	return nil
}
