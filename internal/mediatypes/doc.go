// Package mediatypes provides shared type definitions and utilities for audio
// file and playlist format handling.
//
// This package exists as a dependency-free foundation that can be imported by
// other packages without creating import cycles. It contains primitive types,
// constants, and pure functions with no external dependencies beyond the
// standard library.
//
// # File Classification
//
// Use IsAudioFile to decide whether a filename refers to an audio file:
//
//	if mediatypes.IsAudioFile("track.MP3") {
//	    // track is audio
//	}
//
// Classification is purely extension-based and case-insensitive. No file
// content is ever inspected.
//
// # Playlist Formats
//
// FormatForPath maps a playlist file path to its serialization format:
//
//	format, ok := mediatypes.FormatForPath("mix.pls")
//	switch format {
//	case mediatypes.FormatPLS:
//	    // INI-style PLS
//	case mediatypes.FormatM3U:
//	    // plain-text M3U
//	}
//
// The extension maps (AudioExtensions, PlaylistExtensions) can be used
// directly for validation or iteration.
package mediatypes
