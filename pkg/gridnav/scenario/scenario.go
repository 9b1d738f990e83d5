// Package scenario replays key sequences described in YAML files and checks
// where the cursor ends up.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/gridnav-go/pkg/gridnav"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/parser"
	"gopkg.in/yaml.v3"
)

// Scenario is one navigation script.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`
	// Workbook is an xlsx path, relative to the scenario file. When empty
	// the sheet is built from Protection.
	Workbook string `yaml:"workbook,omitempty"`
	// Sheet is the sheet to navigate.
	Sheet string `yaml:"sheet,omitempty"`
	// Protection describes an in-memory sheet.
	Protection *Protection `yaml:"protection,omitempty"`
	// Bounds overrides the sheet limits.
	Bounds *models.Bounds `yaml:"bounds,omitempty"`
	// Start is the initial cursor in A1 notation.
	Start string `yaml:"start"`
	// Steps run in order.
	Steps []Step `yaml:"steps"`

	dir string
}

// Protection is the in-memory protection state of a scenario sheet.
type Protection struct {
	Protected bool `yaml:"protected"`
	// Unlocked lists unlocked cells or ranges, e.g. "C6" or "C7:G7".
	Unlocked []string `yaml:"unlocked,omitempty"`
}

// Step selects a cell or presses keys, then optionally checks the cursor.
type Step struct {
	Select string       `yaml:"select,omitempty"`
	Keys   []models.Key `yaml:"keys,omitempty"`
	Expect string       `yaml:"expect,omitempty"`
}

// MismatchError reports a cursor that did not land where a step expected.
type MismatchError struct {
	Scenario string
	Step     int
	Expected string
	Got      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("scenario %q step %d: expected cursor at %s, got %s", e.Scenario, e.Step+1, e.Expected, e.Got)
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Start == "" {
		return errors.New("start is required")
	}
	if _, err := models.ParseAddress(s.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if s.Workbook == "" && s.Protection == nil {
		return errors.New("either workbook or protection is required")
	}
	if s.Protection != nil {
		for _, ref := range s.Protection.Unlocked {
			if _, err := parser.ParseRange(ref); err != nil {
				return fmt.Errorf("protection: %w", err)
			}
		}
	}
	if s.Bounds != nil && (s.Bounds.Rows <= 0 || s.Bounds.Cols <= 0) {
		return fmt.Errorf("bounds must be positive, got %dx%d", s.Bounds.Rows, s.Bounds.Cols)
	}
	if len(s.Steps) == 0 {
		return errors.New("at least one step is required")
	}
	for i, step := range s.Steps {
		if step.Select == "" && len(step.Keys) == 0 {
			return fmt.Errorf("step %d: select or keys is required", i+1)
		}
		for _, ref := range []string{step.Select, step.Expect} {
			if ref == "" {
				continue
			}
			if _, err := models.ParseAddress(ref); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// Open returns the workbook the scenario navigates.
func (s *Scenario) Open(opts gridnav.Options) (*gridnav.Workbook, error) {
	if s.Bounds != nil {
		opts.Bounds = *s.Bounds
	}
	if s.Sheet != "" {
		opts.Sheet = s.Sheet
	}
	if s.Workbook != "" {
		path := s.Workbook
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		return gridnav.Open(path, opts)
	}

	p := parser.NewProtection(s.Protection.Protected)
	for _, ref := range s.Protection.Unlocked {
		r, err := parser.ParseRange(ref)
		if err != nil {
			return nil, err
		}
		p.UnlockRange(r)
	}
	return gridnav.NewWorkbook("", s.Sheet, p, nil, opts), nil
}

// Run replays the scenario. The trace covers every step executed, including
// the one that failed its expectation.
func (s *Scenario) Run(opts gridnav.Options) (models.Trace, error) {
	wb, err := s.Open(opts)
	if err != nil {
		return models.Trace{}, err
	}

	start := models.MustParseAddress(s.Start)
	view := wb.NewView(start)
	trace := models.Trace{
		RunID:     uuid.NewString(),
		BookName:  wb.BookName,
		SheetName: wb.SheetName,
		Start:     view.Cursor(),
	}

	for i, step := range s.Steps {
		if step.Select != "" {
			trace.Steps = append(trace.Steps, view.Select(models.MustParseAddress(step.Select)))
		}
		for _, k := range step.Keys {
			trace.Steps = append(trace.Steps, view.Press(k))
		}
		if step.Expect == "" {
			continue
		}
		if got := view.Cursor(); got != models.MustParseAddress(step.Expect) {
			return trace, &MismatchError{Scenario: s.Name, Step: i, Expected: step.Expect, Got: got.String()}
		}
	}

	if opts.Logger != nil {
		opts.Logger.Info("scenario passed", "name", s.Name, "steps", len(trace.Steps), "final", trace.Final())
	}
	return trace, nil
}
