package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/smileynet/tpsearch/internal/search"
)

const validCSV = `Training Provider Name,Address,Telephone No.,Email
Acme Training,1 Main St,555-1111,a@acme.com
Beta Learning,"2 Oak Ave, Suite 4",555-2222,b@beta.com
`

func TestLoad_Valid(t *testing.T) {
	// Given: a CSV with the four required headers
	// When: it is loaded
	table, err := Load(strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Then: rows come back in file order with quoted commas intact
	want := search.Table{
		{Name: "Acme Training", Address: "1 Main St", Phone: "555-1111", Email: "a@acme.com"},
		{Name: "Beta Learning", Address: "2 Oak Ave, Suite 4", Phone: "555-2222", Email: "b@beta.com"},
	}
	if len(table) != len(want) {
		t.Fatalf("len(table) = %d, want %d", len(table), len(want))
	}
	for i := range want {
		if table[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, table[i], want[i])
		}
	}
}

func TestLoad_ReorderedAndExtraColumns(t *testing.T) {
	csv := "Email,Id,Telephone No.,Address,Training Provider Name\n" +
		"x@y.com,7,012-345,KL,Gamma Skills\n"

	table, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := search.Record{Name: "Gamma Skills", Address: "KL", Phone: "012-345", Email: "x@y.com"}
	if len(table) != 1 || table[0] != want {
		t.Errorf("table = %+v, want [%+v]", table, want)
	}
}

func TestLoad_ShortRowsAreEmpty(t *testing.T) {
	// Given: a row missing its trailing cells
	csv := "Training Provider Name,Address,Telephone No.,Email\nDelta Academy,Penang\n"

	table, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Then: absent cells are empty strings
	if table[0].Phone != "" || table[0].Email != "" {
		t.Errorf("short row = %+v, want empty phone and email", table[0])
	}
}

func TestLoad_BOMHeader(t *testing.T) {
	csv := "\ufeffTraining Provider Name,Address,Telephone No.,Email\nA,B,C,D\n"

	table, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(table) != 1 || table[0].Name != "A" {
		t.Errorf("table = %+v, want one row named A", table)
	}
}

func TestLoad_MissingColumns(t *testing.T) {
	// Given: a CSV lacking Address and Email headers
	csv := "Training Provider Name,Telephone No.\nAcme,555\n"

	// When: it is loaded
	_, err := Load(strings.NewReader(csv))

	// Then: a MissingColumnsError names both, in column order
	var mce *MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("Load() error = %v, want *MissingColumnsError", err)
	}
	if got := strings.Join(mce.Columns, ","); got != "Address,Email" {
		t.Errorf("missing = %q, want %q", got, "Address,Email")
	}
	if !strings.Contains(err.Error(), "These required columns are missing from the CSV: Address, Email") {
		t.Errorf("error text = %q", err.Error())
	}
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Load(\"\") error = %v, want ErrNoHeader", err)
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	table, err := Load(strings.NewReader("Training Provider Name,Address,Telephone No.,Email\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(table) != 0 {
		t.Errorf("len(table) = %d, want 0", len(table))
	}
}

func TestOpen_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "woohoo.csv")

	_, err := Open(path)

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open() error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error should also wrap os.ErrNotExist")
	}
	if !strings.Contains(err.Error(), "CSV file not found at: "+path) {
		t.Errorf("error text = %q", err.Error())
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.csv")
	if err := os.WriteFile(path, []byte(validCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(table) != 2 {
		t.Errorf("len(table) = %d, want 2", len(table))
	}
}

func TestOpen_ParseErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("Name,Phone\nx,y\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open() should fail on missing columns")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the file", err)
	}
	var mce *MissingColumnsError
	if !errors.As(err, &mce) {
		t.Errorf("wrapped error should still be *MissingColumnsError")
	}
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"providers.csv": &fstest.MapFile{Data: []byte(validCSV)},
	}

	table, err := OpenFS(fsys, "providers.csv")
	if err != nil {
		t.Fatalf("OpenFS() error = %v", err)
	}
	if len(table) != 2 {
		t.Errorf("len(table) = %d, want 2", len(table))
	}

	if _, err := OpenFS(fsys, "missing.csv"); !errors.Is(err, ErrNotFound) {
		t.Errorf("OpenFS(missing) error = %v, want ErrNotFound", err)
	}
}
