// Package gridnav loads spreadsheet protection state and replays keyboard
// navigation against it.
package gridnav

import (
	"log/slog"

	"github.com/ukaji3/gridnav-go/pkg/gridnav/engine"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
)

// Options configures workbook loading and navigation.
type Options struct {
	// Sheet names the worksheet to navigate. Empty selects the active sheet.
	Sheet string
	// Bounds are the sheet limits. The zero value selects models.DefaultBounds.
	Bounds models.Bounds
	// SearchHorizon is the number of rows Enter scans for an enterable column.
	SearchHorizon int
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Bounds:        models.DefaultBounds(),
		SearchHorizon: engine.DefaultSearchHorizon,
	}
}

// EngineOptions returns the engine options derived from o.
func (o Options) EngineOptions() engine.Options {
	return engine.Options{
		Bounds:        o.Bounds,
		SearchHorizon: o.SearchHorizon,
		Logger:        o.Logger,
	}
}
