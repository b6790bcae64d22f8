// Package roadshow populates the roadshow workbook template from the deal,
// notes and persons exports.
package roadshow

import (
	"time"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/rs/zerolog"
)

// Options configures a run. Everything a run needs is passed here; there is
// no package-level state.
type Options struct {
	// TemplatePath is the workbook to populate. Empty uses the built-in
	// blank template.
	TemplatePath string
	// Layout places values in the sheet. If nil, grid.DefaultLayout is used.
	Layout *grid.Layout
	// Now stamps the header month and the saved file name. If nil, time.Now.
	Now func() time.Time
	// Logger receives run diagnostics. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// GetLayout returns the configured or default layout.
func (o Options) GetLayout() grid.Layout {
	if o.Layout != nil {
		return *o.Layout
	}
	return grid.DefaultLayout()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
