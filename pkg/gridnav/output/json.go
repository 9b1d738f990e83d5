// Package output serializes navigation results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
)

// ToJSON serializes v, indenting by two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// TraceToJSON serializes a replay trace.
func TraceToJSON(t *models.Trace, pretty bool) ([]byte, error) {
	return ToJSON(t, pretty)
}

// TracesToJSON serializes several traces as one JSON array.
func TracesToJSON(traces []models.Trace, pretty bool) ([]byte, error) {
	if traces == nil {
		traces = []models.Trace{}
	}
	return ToJSON(traces, pretty)
}

// ProtectionToJSON serializes a protection report.
func ProtectionToJSON(p *models.SheetProtection, pretty bool) ([]byte, error) {
	return ToJSON(p, pretty)
}
