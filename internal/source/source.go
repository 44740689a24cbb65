// Package source loads the provider table from a CSV file with the
// "Training Provider Name, Address, Telephone No., Email" header.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/smileynet/tpsearch/internal/search"
)

// ErrNotFound indicates the CSV file does not exist.
var ErrNotFound = errors.New("source: CSV file not found")

// ErrNoHeader indicates the CSV input has no header row.
var ErrNoHeader = errors.New("source: CSV file has no header row")

// MissingColumnsError lists required headers absent from the CSV.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "These required columns are missing from the CSV: " + strings.Join(e.Columns, ", ")
}

// notFoundError carries the path for ErrNotFound.
type notFoundError struct {
	path string
	err  error
}

func (e *notFoundError) Error() string {
	return "CSV file not found at: " + e.path
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *notFoundError) Unwrap() error { return e.err }

// Open reads the CSV file at path on disk.
func Open(path string) (search.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &notFoundError{path: path, err: err}
		}
		return nil, fmt.Errorf("source: opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("source: reading %s: %w", path, err)
	}
	return t, nil
}

// OpenFS reads the CSV file name from fsys.
func OpenFS(fsys fs.FS, name string) (search.Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &notFoundError{path: name, err: err}
		}
		return nil, fmt.Errorf("source: opening %s: %w", name, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("source: reading %s: %w", name, err)
	}
	return t, nil
}

// Load parses CSV from r. The first row is the header; the four required
// columns may appear in any order and extra columns are ignored. Rows shorter
// than the header leave the missing cells empty. Cell text is kept verbatim.
func Load(r io.Reader) (search.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, err
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	table := search.Table{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		table = append(table, search.Record{
			Name:    cell(row, idx[search.FieldName]),
			Address: cell(row, idx[search.FieldAddress]),
			Phone:   cell(row, idx[search.FieldPhone]),
			Email:   cell(row, idx[search.FieldEmail]),
		})
	}
	return table, nil
}

// columnIndex maps each required field to its position in header.
func columnIndex(header []string) (map[search.Field]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	idx := make(map[search.Field]int, len(search.Fields))
	var missing []string
	for _, f := range search.Fields {
		i, ok := pos[f.Header()]
		if !ok {
			missing = append(missing, f.Header())
			continue
		}
		idx[f] = i
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
