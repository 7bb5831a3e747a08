// Package fonts loads the banner's font faces with a fallback chain:
// a TrueType file on disk, then the Go fonts compiled into the binary, then
// basicfont. Loading never fails; it only degrades.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"github.com/jdubz/bannergen/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

const (
	DefaultDir  = "/usr/share/fonts/truetype/dejavu"
	BoldFile    = "DejaVuSans-Bold.ttf"
	RegularFile = "DejaVuSans.ttf"
)

// Face sizes in pixels.
const (
	NameSize     = 60
	TitleSize    = 30
	SubtitleSize = 21
	MarkSize     = 140
)

// Source records which link of the chain produced a face.
type Source int

const (
	SourceFile Source = iota
	SourceEmbedded
	SourceBasic
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceEmbedded:
		return "embedded"
	case SourceBasic:
		return "basic"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Loaded is a face together with where it came from.
type Loaded struct {
	Face   font.Face
	Source Source
}

// Scalable reports whether the face honors the requested size.
func (l Loaded) Scalable() bool { return l.Source != SourceBasic }

// Set holds the faces used by one render.
type Set struct {
	Name     Loaded
	Title    Loaded
	Subtitle Loaded
	Mark     Loaded
}

// LoadSet loads every face from dir. An empty dir skips straight to the
// embedded fonts.
func LoadSet(dir string, logger Logger) Set {
	if logger == nil {
		logger = nopLogger{}
	}
	bold, regular := "", ""
	if dir != "" {
		bold = filepath.Join(dir, BoldFile)
		regular = filepath.Join(dir, RegularFile)
	}
	return Set{
		Name:     LoadFace(bold, assets.BoldTTF, NameSize, logger),
		Title:    LoadFace(regular, assets.RegularTTF, TitleSize, logger),
		Subtitle: LoadFace(regular, assets.RegularTTF, SubtitleSize, logger),
		Mark:     LoadFace(bold, assets.BoldTTF, MarkSize, logger),
	}
}

// LoadFace walks the chain for a single face at size pixels.
func LoadFace(path string, embedded []byte, size float64, logger Logger) Loaded {
	if logger == nil {
		logger = nopLogger{}
	}
	if path != "" {
		face, err := fileFace(path, size)
		if err == nil {
			logger.Infof("fonts", "loaded %s at %.0fpx", filepath.Base(path), size)
			return Loaded{Face: face, Source: SourceFile}
		}
		logger.Errorf("fonts", "font file unavailable, using embedded: %v", err)
	}
	if len(embedded) > 0 {
		face, err := embeddedFace(embedded, size)
		if err == nil {
			return Loaded{Face: face, Source: SourceEmbedded}
		}
		logger.Errorf("fonts", "embedded font parse failed, using basicfont: %v", err)
	}
	return Loaded{Face: basicfont.Face7x13, Source: SourceBasic}
}

func fileFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// 72 DPI makes points equal to pixels.
	return truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

func embeddedFace(data []byte, size float64) (font.Face, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

type nopLogger struct{}

func (nopLogger) Infof(string, string, ...interface{})  {}
func (nopLogger) Errorf(string, string, ...interface{}) {}
