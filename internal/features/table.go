// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/resume-screener/internal/vocab"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// Table is a feature table with its column header. Every row carries the
// same columns in the same order.
type Table struct {
	Columns []string
	Rows    []types.FeatureRecord
}

// NewTable builds the table for profiles against v.
func NewTable(profiles []types.CandidateProfile, v vocab.Vocabulary) Table {
	return Table{Columns: Columns(v), Rows: BuildAll(profiles, v)}
}

// HasColumn reports whether the table header includes name.
func (t Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// SkillColumns returns the table's skill columns in header order.
func (t Table) SkillColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if strings.HasPrefix(c, types.SkillColumnPrefix) {
			cols = append(cols, c)
		}
	}
	return cols
}

// WriteCSV encodes the table as CSV with a header row. Flags are written
// as 1 or 0.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for i, r := range t.Rows {
		if err := cw.Write(csvRecord(t.Columns, r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(columns []string, r types.FeatureRecord) []string {
	flags := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		flags[types.SkillColumnPrefix+s.Skill] = s.Present
	}
	out := make([]string, len(columns))
	for i, c := range columns {
		switch c {
		case types.ColumnFileName:
			out[i] = r.FileName
		case types.ColumnName:
			out[i] = r.Name
		case types.ColumnEmail:
			out[i] = r.Email
		case types.ColumnPhone:
			out[i] = r.Phone
		case types.ColumnYearsExperience:
			out[i] = strconv.FormatFloat(r.YearsExperience, 'f', -1, 64)
		default:
			if flags[c] {
				out[i] = "1"
			} else {
				out[i] = "0"
			}
		}
	}
	return out
}

// WriteJSON encodes the rows as a JSON array of flat objects.
func (t Table) WriteJSON(w io.Writer) error {
	rows := t.Rows
	if rows == nil {
		rows = []types.FeatureRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// ReadCSV decodes a table written by WriteCSV. Tables from older runs may
// lack the file_name column; their rows can only be joined by position.
// Columns that are neither identity, years nor skill columns are ignored.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, errors.New("feature table is empty")
	}
	if err != nil {
		return Table{}, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	t := Table{Columns: header}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("reading row: %w", err)
		}
		var row types.FeatureRecord
		for i, col := range header {
			if _, err := row.SetField(col, rec[i]); err != nil {
				return Table{}, fmt.Errorf("line %d: %w", line, err)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LoadCSV reads the feature table at path.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
