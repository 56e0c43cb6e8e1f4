// Package playlist generates and parses playlist files.
//
// Supported formats:
//   - PLS: INI-style playlist with FileN/TitleN/LengthN keyed entries and a
//     trailing NumberOfEntries count
//   - M3U (and M3U8): plain-text playlist, one media path per line
//
// # Generation
//
// Generate takes a Spec naming an output file and one or more source
// directories, discovers audio files under the sources, and writes the
// playlist with each entry's path computed relative to the output file's
// directory:
//
//	err := playlist.Generate(playlist.Spec{
//	    OutputPath: "mixes/road-trip.pls",
//	    SourceDirs: []string{"music/rock", "music/pop"},
//	})
//
// Writing entries relative to the playlist keeps it valid when the playlist
// and the audio tree are moved together as a unit.
//
// # Parsing
//
// Parse reads an existing playlist back, resolving each entry against the
// playlist's directory and reporting whether the referenced file exists.
// Relative entries, absolute entries, and Windows-style separators are all
// handled.
package playlist
