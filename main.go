// Command bannergen renders the 1200×630 social preview banner and writes it
// into the portfolio tree as a JPEG.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jdubz/bannergen/internal/app"
	"github.com/jdubz/bannergen/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults, err := app.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bannergen: config error:", err)
		return 2
	}

	// Flags
	root := flag.String("root", defaults.Root, "project root to chdir into before resolving paths; also configurable via "+app.EnvRoot)
	out := flag.String("out", defaults.OutputPath, "output JPEG path; also configurable via "+app.EnvOut)
	logo := flag.String("logo", defaults.LogoPath, "logo image path; also configurable via "+app.EnvLogo)
	fontDir := flag.String("font-dir", defaults.FontDir, "directory holding DejaVuSans(-Bold).ttf; also configurable via "+app.EnvFontDir)
	gradient := flag.String("gradient", defaults.Gradient.String(), "gradient style: columns | bands; also configurable via "+app.EnvGradient)
	qr := flag.String("qr", defaults.QRPayload, "add a QR badge encoding this URL; also configurable via "+app.EnvQR)
	noLogo := flag.Bool("no-logo", defaults.NoLogo, "skip the logo image and draw the text mark")
	previewDev := flag.String("preview", "", "show the result on this framebuffer device (e.g. /dev/fb0)")
	previewHold := flag.Duration("preview-hold", defaults.PreviewHold, "how long to keep the framebuffer preview up")
	debug := flag.Bool("debug", false, "also write debug logging to ./bannergen-debug.log")
	quiet := flag.Bool("quiet", false, "suppress log output")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via BANNERGEN_STDIO_LOG")
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("BANNERGEN_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	style, err := render.ParseGradientStyle(*gradient)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bannergen:", err)
		return 2
	}

	var logger app.Logger = app.NewFileLogger(os.Stdout)
	if *quiet {
		logger = app.NoopLogger{}
	}
	if *debug {
		f, err := os.OpenFile("./bannergen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.MultiLogger{logger, app.NewFileLogger(f)}
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	if err := app.EnterRoot(*root); err != nil {
		fmt.Fprintln(os.Stderr, "bannergen:", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Config{
		Root:          *root,
		OutputPath:    *out,
		LogoPath:      *logo,
		FontDir:       *fontDir,
		Gradient:      style,
		QRPayload:     *qr,
		NoLogo:        *noLogo,
		PreviewDevice: *previewDev,
		PreviewHold:   *previewHold,
	})
	a.Logger = logger
	a.Stdout = os.Stdout

	if _, err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "bannergen:", err)
		return 1
	}
	return 0
}
