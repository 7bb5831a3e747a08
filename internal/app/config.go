package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jdubz/bannergen/internal/fonts"
	"github.com/jdubz/bannergen/internal/output"
	"github.com/jdubz/bannergen/internal/render"
)

const (
	EnvRoot     = "BANNERGEN_ROOT"
	EnvOut      = "BANNERGEN_OUT"
	EnvLogo     = "BANNERGEN_LOGO"
	EnvFontDir  = "BANNERGEN_FONT_DIR"
	EnvGradient = "BANNERGEN_GRADIENT"
	EnvQR       = "BANNERGEN_QR"
	EnvNoLogo   = "BANNERGEN_NO_LOGO"
)

const (
	DefaultRoot     = "/home/jdubz/Development/portfolio"
	DefaultLogoPath = "docs/brand/Logo.png"
	DefaultHold     = 5 * time.Second
)

// Config holds everything a run needs. Relative paths resolve against Root.
type Config struct {
	Root       string
	OutputPath string
	LogoPath   string
	FontDir    string
	Gradient   render.GradientStyle
	QRPayload  string
	NoLogo     bool

	// PreviewDevice, when set, shows the banner on that framebuffer after writing.
	PreviewDevice string
	PreviewHold   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Root:        DefaultRoot,
		OutputPath:  output.DefaultPath,
		LogoPath:    DefaultLogoPath,
		FontDir:     fonts.DefaultDir,
		Gradient:    render.GradientColumns,
		PreviewHold: DefaultHold,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any BANNERGEN_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	strs := []struct {
		env string
		dst *string
	}{
		{EnvRoot, &cfg.Root},
		{EnvOut, &cfg.OutputPath},
		{EnvLogo, &cfg.LogoPath},
		{EnvFontDir, &cfg.FontDir},
		{EnvQR, &cfg.QRPayload},
	}
	for _, s := range strs {
		if v, ok := os.LookupEnv(s.env); ok {
			*s.dst = v
		}
	}

	if raw := os.Getenv(EnvGradient); raw != "" {
		style, err := render.ParseGradientStyle(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvGradient, err)
		}
		cfg.Gradient = style
	}

	if raw := os.Getenv(EnvNoLogo); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvNoLogo, raw, err)
		}
		cfg.NoLogo = parsed
	}

	return cfg, nil
}
