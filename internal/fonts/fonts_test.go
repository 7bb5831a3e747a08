package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jdubz/bannergen/internal/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), BoldFile)
	require.NoError(t, os.WriteFile(path, assets.BoldTTF, 0o644))

	got := LoadFace(path, nil, NameSize, nil)
	assert.Equal(t, SourceFile, got.Source)
	assert.True(t, got.Scalable())
	assert.Greater(t, got.Face.Metrics().Ascent.Ceil(), 13)
}

func TestLoadFaceFallsBack(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a font"), 0o644))

	tests := []struct {
		name     string
		path     string
		embedded []byte
		want     Source
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.ttf"), assets.RegularTTF, SourceEmbedded},
		{"corrupt file", garbage, assets.RegularTTF, SourceEmbedded},
		{"no path", "", assets.RegularTTF, SourceEmbedded},
		{"nothing usable", "", nil, SourceBasic},
		{"corrupt embedded", "", []byte("junk"), SourceBasic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadFace(tt.path, tt.embedded, TitleSize, nil)
			assert.Equal(t, tt.want, got.Source)
			require.NotNil(t, got.Face)
		})
	}
}

func TestLoadFaceBasicIsLastResort(t *testing.T) {
	got := LoadFace("", nil, MarkSize, nil)
	assert.Equal(t, basicfont.Face7x13, got.Face)
	assert.False(t, got.Scalable())
}

func TestLoadSetWithoutDir(t *testing.T) {
	set := LoadSet("", nil)
	for _, l := range []Loaded{set.Name, set.Title, set.Subtitle, set.Mark} {
		assert.Equal(t, SourceEmbedded, l.Source)
	}
	// Bigger requested sizes must produce taller faces.
	assert.Greater(t, set.Mark.Face.Metrics().Ascent.Ceil(), set.Name.Face.Metrics().Ascent.Ceil())
	assert.Greater(t, set.Title.Face.Metrics().Ascent.Ceil(), set.Subtitle.Face.Metrics().Ascent.Ceil())
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "file", SourceFile.String())
	assert.Equal(t, "basic", SourceBasic.String())
	assert.Equal(t, "Source(9)", Source(9).String())
}
