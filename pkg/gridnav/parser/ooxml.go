// Package parser reads navigation-relevant state out of xlsx workbooks.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

const worksheetRelType = "/worksheet"

// workbookSheets is the part of xl/workbook.xml naming the sheets.
type workbookSheets struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// workbookRels is xl/_rels/workbook.xml.rels.
type workbookRels struct {
	Relationships []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// openPart returns the content of the named zip part.
func openPart(zr *zip.Reader, name string) ([]byte, error) {
	rc, err := zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open part %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decodePart unmarshals the named zip part into v.
func decodePart(zr *zip.Reader, name string, v any) error {
	data, err := openPart(zr, name)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// sheetPartName follows sheetName through workbook.xml and its relationships
// to the worksheet part that holds it.
func sheetPartName(zr *zip.Reader, sheetName string) (string, error) {
	var wb workbookSheets
	if err := decodePart(zr, "xl/workbook.xml", &wb); err != nil {
		return "", err
	}
	rID := ""
	for _, s := range wb.Sheets {
		if s.Name == sheetName {
			rID = s.RID
			break
		}
	}
	if rID == "" {
		return "", fmt.Errorf("sheet %q not found", sheetName)
	}

	var rels workbookRels
	if err := decodePart(zr, "xl/_rels/workbook.xml.rels", &rels); err != nil {
		return "", err
	}
	for _, rel := range rels.Relationships {
		if rel.ID == rID && strings.HasSuffix(rel.Type, worksheetRelType) {
			return partName("xl", rel.Target), nil
		}
	}
	return "", fmt.Errorf("sheet %q has no worksheet relationship %s", sheetName, rID)
}

// partName resolves a relationship target against the directory of its
// source part. Absolute targets are rooted at the package.
func partName(dir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(dir, target)
}
