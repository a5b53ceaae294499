// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	"github.com/xuri/excelize/v2"
)

// ReadSamplesFile reads measured pigment samples from the CSV or XLSX
// spreadsheet at path. See [ReadSamples].
func ReadSamplesFile(path string) ([]Source, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	srcs, err := ReadSamples(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return srcs, nil
}

// ReadSamples reads measured pigment samples from a spreadsheet. The
// format (XLSX or delimited text) is detected from the content; for
// XLSX the first sheet is used. The first row holds headers: a name
// column followed by wavelength columns labeled like "450nm". Each
// further row is one pigment with reflectances in percent.
func ReadSamples(r io.Reader) ([]Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	kind, _ := filetype.Match(b)
	var rows [][]string
	switch {
	case kind.Extension == "xlsx":
		rows, err = readXLSX(b)
	case kind != filetype.Unknown:
		return nil, fmt.Errorf("pigment: unsupported sample file type %q", kind.MIME.Value)
	default:
		rows, err = readDelimited(b)
	}
	if err != nil {
		return nil, err
	}
	return samplesFromRows(rows)
}

func readXLSX(b []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("pigment: workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

// readDelimited reads comma, semicolon or tab separated text,
// choosing the delimiter that occurs most in the header line.
func readDelimited(b []byte) ([][]string, error) {
	head, _, _ := bytes.Cut(b, []byte("\n"))
	delim, best := ',', bytes.Count(head, []byte(","))
	for _, d := range []rune{'\t', ';'} {
		if n := bytes.Count(head, []byte(string(d))); n > best {
			delim, best = d, n
		}
	}
	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

// samplesFromRows converts spreadsheet rows to sources. Rows and
// columns in errors are numbered from 1, as shown by spreadsheet tools.
func samplesFromRows(rows [][]string) ([]Source, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pigment: empty sample sheet")
	}
	hdr := rows[0]
	last := len(hdr)
	for last > 1 && strings.TrimSpace(hdr[last-1]) == "" {
		last--
	}
	if last < 2 {
		return nil, fmt.Errorf("pigment: sample sheet needs a name column and at least one wavelength column")
	}
	wl := make([]float64, last-1)
	for c := 1; c < last; c++ {
		h := strings.ToLower(strings.TrimSpace(hdr[c]))
		nm, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(h, "nm")), 64)
		if !strings.HasSuffix(h, "nm") || err != nil || math.IsNaN(nm) || math.IsInf(nm, 0) {
			return nil, fmt.Errorf("pigment: row 1 column %d: header %q is not a wavelength like \"450nm\"", c+1, hdr[c])
		}
		if c > 1 && nm <= wl[c-2] {
			return nil, fmt.Errorf("pigment: row 1 column %d: wavelength %v is not above %v", c+1, nm, wl[c-2])
		}
		wl[c-1] = nm
	}
	var srcs []Source
	for r := 1; r < len(rows); r++ {
		row := rows[r]
		if isBlank(row) {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			return nil, fmt.Errorf("pigment: row %d column 1: missing sample name", r+1)
		}
		refl := make([]float64, len(wl))
		for c := 1; c < last; c++ {
			cell := ""
			if c < len(row) {
				cell = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(row[c]), "%"))
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) || v < 0 || v > 100 {
				return nil, fmt.Errorf("pigment: row %d column %d: reflectance %q is not a percentage in [0, 100]", r+1, c+1, cell)
			}
			refl[c-1] = v / 100
		}
		srcs = append(srcs, Source{Name: name, Wavelengths: append([]float64(nil), wl...), Reflectances: refl})
	}
	if len(srcs) == 0 {
		return nil, fmt.Errorf("pigment: sample sheet has no sample rows")
	}
	return srcs, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
