package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jdubz/bannergen/internal/fonts"
	"github.com/jdubz/bannergen/internal/output"
	"github.com/jdubz/bannergen/internal/preview"
	"github.com/jdubz/bannergen/internal/render"
	"github.com/jdubz/bannergen/internal/state"
)

type App struct {
	Config Config
	Logger Logger
	// Stdout receives the run summary; nil discards it.
	Stdout io.Writer
	// Now is the clock used for the report.
	Now func() time.Time
}

func New(cfg Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}, Stdout: io.Discard, Now: time.Now}
}

// EnterRoot makes root the process working directory so relative input and
// output paths resolve against the project tree. An empty root is a no-op.
func EnterRoot(root string) error {
	if root == "" {
		return nil
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("enter project root: %w", err)
	}
	return nil
}

// Run renders the banner once, writes it, and optionally previews it.
func (app *App) Run(ctx context.Context) (*state.Report, error) {
	app.defaults()
	cfg := app.Config
	report := state.NewReport(app.Now())
	report.OutputPath = cfg.OutputPath
	report.Gradient = cfg.Gradient.String()
	report.Logo.Path = cfg.LogoPath

	fail := func(err error) (*state.Report, error) {
		report.Fail(err, errors.Is(err, context.Canceled), app.Now())
		app.Logger.Errorf("app", "run failed in %s", report.Phase)
		return report, err
	}

	report.SetPhase(state.RENDERING)
	set := fonts.LoadSet(cfg.FontDir, app.Logger)
	opts := render.Options{Gradient: cfg.Gradient, QRPayload: cfg.QRPayload}
	if !cfg.NoLogo {
		logo, err := render.LoadLogo(cfg.LogoPath)
		if err != nil {
			app.Logger.Errorf("app", "could not load logo, drawing text mark: %v", err)
			report.Logo.Err = err.Error()
		} else {
			opts.Logo = logo
			report.Logo.Loaded = true
		}
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res, err := render.Compose(set, opts, app.Logger)
	if err != nil {
		return fail(fmt.Errorf("render: %w", err))
	}
	bounds := res.Image.Bounds()
	report.Width, report.Height = bounds.Dx(), bounds.Dy()
	report.Logo.MarkDrawn = res.MarkDrawn
	report.Icons = len(render.DefaultIcons)
	report.QR = !res.QRRect.Empty()
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	report.SetPhase(state.WRITING)
	if err := output.WriteJPEG(cfg.OutputPath, res.Image, render.Background); err != nil {
		return fail(fmt.Errorf("write banner: %w", err))
	}
	app.Logger.Infof("output", "wrote %s (%dx%d, q%d)", cfg.OutputPath, report.Width, report.Height, output.Quality)

	if cfg.PreviewDevice != "" {
		report.SetPhase(state.PREVIEWING)
		err := preview.Show(ctx, cfg.PreviewDevice, res.Image, render.Background, cfg.PreviewHold, app.Logger)
		switch {
		case errors.Is(err, context.Canceled):
			return fail(err)
		case err != nil:
			app.Logger.Errorf("preview", "preview on %s failed: %v", cfg.PreviewDevice, err)
		default:
			report.Preview = true
		}
	}

	report.Finish(app.Now())
	for _, line := range report.Summary() {
		fmt.Fprintln(app.Stdout, line)
	}
	return report, nil
}

func (app *App) defaults() {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Stdout == nil {
		app.Stdout = io.Discard
	}
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.Config.OutputPath == "" {
		app.Config.OutputPath = output.DefaultPath
	}
}
