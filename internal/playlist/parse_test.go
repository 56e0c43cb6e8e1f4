package playlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePLS(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "songs", "one.mp3"), "")

	// Keys out of order, CRLF line endings, and a gap in numbering.
	writeFile(t, filepath.Join(dir, "mix.pls"),
		"[playlist]\r\n"+
			"Title2=Second Song\r\n"+
			"File1=songs/one.mp3\r\n"+
			"Length1=-1\r\n"+
			"File2=songs/two.mp3\r\n"+
			"Length2=-1\r\n"+
			"File4=songs/four.mp3\r\n"+
			"NumberOfEntries=3\r\n"+
			"Version=2\r\n")

	pl, err := Parse(filepath.Join(dir, "mix.pls"))
	require.NoError(t, err)

	assert.Equal(t, "mix", pl.Name)
	require.Equal(t, 3, pl.Count)

	assert.Equal(t, "songs/one.mp3", pl.Items[0].Path)
	assert.Equal(t, "one.mp3", pl.Items[0].Name)
	assert.Equal(t, "one", pl.Items[0].Title)
	assert.True(t, pl.Items[0].Exists)

	assert.Equal(t, "songs/two.mp3", pl.Items[1].Path)
	assert.Equal(t, "Second Song", pl.Items[1].Title)
	assert.False(t, pl.Items[1].Exists)

	assert.Equal(t, "songs/four.mp3", pl.Items[2].Path)
	assert.False(t, pl.Items[2].Exists)
}

func TestParseM3U(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "songs", "one.mp3"), "")

	writeFile(t, filepath.Join(dir, "mix.m3u"),
		"#EXTM3U\n"+
			"\n"+
			"songs/one.mp3\r\n"+
			"# a comment\n"+
			"songs/gone.mp3\n")

	pl, err := Parse(filepath.Join(dir, "mix.m3u"))
	require.NoError(t, err)

	require.Equal(t, 2, pl.Count)
	assert.Equal(t, "songs/one.mp3", pl.Items[0].Path)
	assert.True(t, pl.Items[0].Exists)
	assert.Equal(t, "songs/gone.mp3", pl.Items[1].Path)
	assert.False(t, pl.Items[1].Exists)
}

func TestParseWindowsSeparators(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "songs", "one.mp3"), "")
	writeFile(t, filepath.Join(dir, "mix.m3u"), "songs\\one.mp3\n")

	pl, err := Parse(filepath.Join(dir, "mix.m3u"))
	require.NoError(t, err)
	require.Equal(t, 1, pl.Count)
	assert.Equal(t, "one.mp3", pl.Items[0].Name)
	assert.True(t, pl.Items[0].Exists)
}

func TestParseRoundTrip(t *testing.T) {
	dir := t.TempDir()
	audioFixture(t, dir)

	for _, ext := range []string{".pls", ".m3u"} {
		t.Run(ext, func(t *testing.T) {
			output := filepath.Join(dir, "mix"+ext)
			require.NoError(t, Generate(Spec{OutputPath: output, SourceDirs: []string{dir}}))

			pl, err := Parse(output)
			require.NoError(t, err)
			assert.Equal(t, 10, pl.Count)
			for _, item := range pl.Items {
				assert.True(t, item.Exists, "expected %s to resolve", item.Path)
			}
		})
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mix.wpl"), "<smil/>")

	_, err := Parse(filepath.Join(dir, "mix.wpl"))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.m3u"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
