package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

//go:embed iris.csv
var irisCSV []byte

// EmbeddedName is the dataset name reported for the built-in data.
const EmbeddedName = "iris.csv"

// Iris returns the built-in 150-row Iris dataset.
func Iris() (*Dataset, error) {
	return Read(bytes.NewReader(irisCSV), EmbeddedName, ',')
}

// LoadOptions selects how a dataset file is read.
type LoadOptions struct {
	// Delimiter for CSV. If 0, '\t' for .tsv files and ',' otherwise.
	Delimiter rune
	// Sheet selects an XLSX sheet by name; empty means the first sheet.
	Sheet string
}

// LoadFile reads a CSV/TSV or XLSX dataset from disk.
func LoadFile(path string, opt LoadOptions) (*Dataset, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") {
		return loadXLSX(path, opt.Sheet)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	return Read(f, filepath.Base(path), delim)
}

// Read parses fixed-schema records: four numeric columns followed by the label.
// A header row is skipped when its first cell is not numeric.
func Read(r io.Reader, name string, delim rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	var records [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		records = append(records, rec)
	}
	return fromRecords(name, records)
}

func loadXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx %s has no sheets", filepath.Base(path))
	}
	target := sheets[0]
	if sheet != "" {
		target = ""
		for _, s := range sheets {
			if strings.EqualFold(s, sheet) {
				target = s
				break
			}
		}
		if target == "" {
			return nil, fmt.Errorf("sheet '%s' not found in workbook '%s'.\nAvailable sheets: %s",
				sheet, filepath.Base(path), strings.Join(sheets, ", "))
		}
	}
	rows, err := f.GetRows(target)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", target, err)
	}
	return fromRecords(filepath.Base(path), rows)
}

func fromRecords(name string, records [][]string) (*Dataset, error) {
	ds := &Dataset{Name: name}
	first := firstNonBlank(records)
	for i, rec := range records {
		line := i + 1
		if blankRecord(rec) {
			continue
		}
		if i == first && isHeader(rec) {
			continue
		}
		o, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, line, err)
		}
		ds.Rows = append(ds.Rows, o)
	}
	return ds, nil
}

func parseRecord(rec []string) (Observation, error) {
	var o Observation
	if len(rec) < NumFields+1 {
		return o, fmt.Errorf("expected %d columns, got %d", NumFields+1, len(rec))
	}
	for j := 0; j < NumFields; j++ {
		v, err := cast.ToFloat64E(strings.TrimSpace(rec[j]))
		if err != nil {
			return o, fmt.Errorf("column %s: %w", Field(j).Column(), err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return o, fmt.Errorf("column %s: non-finite value %q", Field(j).Column(), rec[j])
		}
		o.Values[j] = v
	}
	o.Label = strings.TrimSpace(rec[NumFields])
	return o, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := cast.ToFloat64E(strings.TrimSpace(rec[0]))
	return err != nil
}

func blankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func firstNonBlank(records [][]string) int {
	for i, rec := range records {
		if !blankRecord(rec) {
			return i
		}
	}
	return -1
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
