// Command playlist-check verifies that every entry of one or more playlist
// files resolves to an existing file on disk.
//
// Usage:
//
//	playlist-check PLAYLIST [PLAYLIST...]
//
// Missing entries are listed on stdout. The exit code is 0 when all entries
// of all playlists resolve, 1 otherwise.
package main

import (
	"fmt"
	"os"

	"playlist-gen/internal/playlist"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: playlist-check PLAYLIST [PLAYLIST...]")
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range os.Args[1:] {
		if !checkPlaylist(path) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// checkPlaylist parses and verifies a single playlist, printing a summary.
// It returns false if the playlist cannot be parsed or has missing entries.
func checkPlaylist(path string) bool {
	pl, err := playlist.Parse(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}

	missing := 0
	for _, item := range pl.Items {
		if !item.Exists {
			missing++
			fmt.Printf("%s: missing %s\n", pl.Name, item.Path)
		}
	}

	fmt.Printf("%s: %d entries, %d missing\n", pl.Name, pl.Count, missing)
	return missing == 0
}
