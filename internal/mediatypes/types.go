package mediatypes

import (
	"path/filepath"
	"strings"
)

// FileType represents the type of a media file.
type FileType string

const (
	// FileTypeAudio represents an audio media file.
	FileTypeAudio FileType = "audio"
	// FileTypePlaylist represents a playlist file.
	FileTypePlaylist FileType = "playlist"
	// FileTypeOther represents an unknown or unsupported file type.
	FileTypeOther FileType = "other"
)

// AudioExtensions maps file extensions to whether they are recognized audio formats.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".wav":  true,
	".m4a":  true,
	".m4b":  true,
	".aac":  true,
	".opus": true,
	".wma":  true,
	".aiff": true,
	".alac": true,
}

// PlaylistExtensions maps file extensions to whether they are supported playlist formats.
var PlaylistExtensions = map[string]bool{
	".pls":  true,
	".m3u":  true,
	".m3u8": true,
}

// Format identifies a playlist serialization format.
type Format string

const (
	// FormatPLS is the INI-style PLS format (FileN/TitleN/LengthN keys).
	FormatPLS Format = "pls"
	// FormatM3U is the plain-text M3U format, one path per line.
	FormatM3U Format = "m3u"
)

// GetFileType returns the FileType for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".mp3").
// Returns FileTypeOther if the extension is not recognized.
func GetFileType(ext string) FileType {
	if AudioExtensions[ext] {
		return FileTypeAudio
	}
	if PlaylistExtensions[ext] {
		return FileTypePlaylist
	}
	return FileTypeOther
}

// IsAudioFile returns true if name denotes an audio file, judged solely by its
// extension. The match is case-insensitive; names without an extension are
// never audio files.
func IsAudioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return AudioExtensions[ext]
}

// FormatForPath returns the playlist Format implied by path's extension,
// case-insensitively: ".pls" maps to FormatPLS, ".m3u" and ".m3u8" map to
// FormatM3U. The second return value is false for any other extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pls":
		return FormatPLS, true
	case ".m3u", ".m3u8":
		return FormatM3U, true
	}
	return "", false
}
