// Package grid is the host side of navigation: it owns the cursor, applies
// the keys the engine leaves to the host and records what happened.
package grid

import (
	"github.com/ukaji3/gridnav-go/pkg/gridnav/engine"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
)

// View is a cursor over one sheet.
type View struct {
	engine *engine.Engine
	cursor models.Address
}

// NewView returns a View with the cursor at start, clamped to the sheet.
func NewView(e *engine.Engine, start models.Address) *View {
	return &View{engine: e, cursor: e.Filter().Bounds().Clamp(start)}
}

// Cursor returns the focused cell.
func (v *View) Cursor() models.Address {
	return v.cursor
}

// Span returns the engine's active span, if any.
func (v *View) Span() (models.Span, bool) {
	return v.engine.Span()
}

// Bounds returns the sheet limits.
func (v *View) Bounds() models.Bounds {
	return v.engine.Filter().Bounds()
}

// Enterable reports whether the cursor may land on a.
func (v *View) Enterable(a models.Address) bool {
	return v.engine.Filter().IsEnterable(a)
}

// Press applies one key and returns the step it produced.
//
// Tab, Shift+Tab and Enter are resolved by the engine. Arrow keys move to
// the nearest enterable cell in their direction and stay put at the sheet
// edge.
func (v *View) Press(key models.Key) models.Step {
	from := v.cursor
	to, owned := v.engine.NotifyKey(key, from)
	if !owned {
		to = v.arrow(key, from)
	}
	v.cursor = to
	return v.step(key, from)
}

// Select moves the cursor directly to a, as a mouse click would. It ends
// any tab episode.
func (v *View) Select(a models.Address) models.Step {
	from := v.cursor
	v.engine.NotifyKey(models.KeyOther, from)
	v.cursor = v.Bounds().Clamp(a)
	return v.step(models.KeyOther, from)
}

func (v *View) arrow(key models.Key, from models.Address) models.Address {
	f := v.engine.Filter()
	var to models.Address
	switch key {
	case models.KeyArrowLeft:
		to, _ = f.NextInRow(from, -1)
	case models.KeyArrowRight:
		to, _ = f.NextInRow(from, 1)
	case models.KeyArrowUp:
		to, _ = f.NextInCol(from, -1)
	case models.KeyArrowDown:
		to, _ = f.NextInCol(from, 1)
	default:
		to = from
	}
	return to
}

func (v *View) step(key models.Key, from models.Address) models.Step {
	s := models.Step{Key: key, From: from, To: v.cursor, Cell: v.cursor.String()}
	if span, ok := v.engine.Span(); ok {
		s.Span = &span
	}
	return s
}
