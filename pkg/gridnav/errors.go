package gridnav

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// LoadError represents an error while loading a workbook.
type LoadError struct {
	Path      string
	SheetName string
	Component string // "workbook", "cells", "protection"
	Err       error
}

func (e *LoadError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("load error in %s (%s): %v", e.Path, e.Component, e.Err)
	}
	return fmt.Sprintf("load error in %s sheet %q (%s): %v", e.Path, e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheetName, component string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
