package state

import (
	"fmt"
	"strings"
	"time"
)

// Phase is how far a run got.
type Phase int

const (
	BOOTING Phase = iota
	RENDERING
	WRITING
	PREVIEWING
	DONE
	ERROR
	CANCELLED
)

var phaseNames = [...]string{"booting", "rendering", "writing", "previewing", "done", "error", "cancelled"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// LogoInfo records how the logo slot was filled.
type LogoInfo struct {
	Path      string
	Loaded    bool
	MarkDrawn bool
	Err       string
}

// Report summarizes one run. A run is single-threaded, so there is no locking.
type Report struct {
	Phase      Phase
	OutputPath string
	Width      int
	Height     int
	Gradient   string
	Icons      int
	Logo       LogoInfo
	QR         bool
	Preview    bool
	Started    time.Time
	Finished   time.Time
	Err        string
}

func NewReport(now time.Time) *Report {
	return &Report{Phase: BOOTING, Started: now}
}

func (r *Report) SetPhase(phase Phase) { r.Phase = phase }

// Fail moves the report to ERROR, or CANCELLED when cancelled is set.
func (r *Report) Fail(err error, cancelled bool, now time.Time) {
	r.Phase = ERROR
	if cancelled {
		r.Phase = CANCELLED
	}
	if err != nil {
		r.Err = err.Error()
	}
	r.Finished = now
}

func (r *Report) Finish(now time.Time) {
	r.Phase = DONE
	r.Finished = now
}

// Features lists what ended up in the banner, in drawing order.
func (r *Report) Features() []string {
	var features []string
	switch {
	case r.Logo.Loaded:
		features = append(features, "Logo")
	case r.Logo.MarkDrawn:
		features = append(features, "Logo mark")
	}
	features = append(features, "gradient overlay ("+r.Gradient+")")
	if r.Icons > 0 {
		features = append(features, "floating tech icons")
	}
	if r.QR {
		features = append(features, "QR badge")
	}
	return features
}

// Summary is the human-readable result printed after a successful run.
func (r *Report) Summary() []string {
	return []string{
		"✓ Generated banner: " + r.OutputPath,
		fmt.Sprintf("  Size: %dx%d", r.Width, r.Height),
		"  Features: " + strings.Join(r.Features(), ", "),
	}
}
