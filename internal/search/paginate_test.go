package search

import (
	"fmt"
	"reflect"
	"testing"
)

// numberedTable returns n records named "row-1" .. "row-n".
func numberedTable(n int) Table {
	t := make(Table, n)
	for i := range t {
		t[i] = Record{Name: fmt.Sprintf("row-%d", i+1)}
	}
	return t
}

func TestPaginate_EmptyResult(t *testing.T) {
	// Given: zero filtered rows, page size 25, page 1
	// When: paginating
	res := Paginate(Table{}, 40, PageRequest{Size: 25, Number: 1})

	// Then: an empty, well-formed page with one total page
	if len(res.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(res.Rows))
	}
	if res.Rows == nil {
		t.Error("Rows should be an empty slice, not nil")
	}
	if res.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", res.TotalPages)
	}
	if res.TotalRows != 40 {
		t.Errorf("TotalRows = %d, want 40", res.TotalRows)
	}
	if !res.Empty() {
		t.Error("Empty() = false, want true")
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	// Given: 120 filtered rows, page size 50, page 3
	filtered := numberedTable(120)

	// When: paginating
	res := Paginate(filtered, 120, PageRequest{Size: 50, Number: 3})

	// Then: rows [100, 120) are returned
	if res.Start != 100 || res.End != 120 {
		t.Errorf("bounds = [%d, %d), want [100, 120)", res.Start, res.End)
	}
	if len(res.Rows) != 20 {
		t.Fatalf("len(Rows) = %d, want 20", len(res.Rows))
	}
	if res.Rows[0].Name != "row-101" || res.Rows[19].Name != "row-120" {
		t.Errorf("Rows span %q..%q, want row-101..row-120", res.Rows[0].Name, res.Rows[19].Name)
	}
	if res.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", res.TotalPages)
	}
}

func TestPaginate_NeverExceedsPageSize(t *testing.T) {
	sizes := []int{1, 25, 50, 100, 500, 1000}
	for _, n := range []int{0, 1, 24, 25, 26, 999, 1001} {
		filtered := numberedTable(n)
		for _, size := range sizes {
			pages := TotalPages(n, size)
			for page := 1; page <= pages+1; page++ {
				res := Paginate(filtered, n, PageRequest{Size: size, Number: page})
				if len(res.Rows) > size {
					t.Errorf("n=%d size=%d page=%d: len(Rows) = %d > size", n, size, page, len(res.Rows))
				}
			}
		}
	}
}

func TestPaginate_EmptyIffBeyondTotalPages(t *testing.T) {
	filtered := numberedTable(30)

	tests := []struct {
		page      int
		wantEmpty bool
	}{
		{1, false},
		{3, false},
		{4, true},
		{99, true},
	}
	for _, tt := range tests {
		res := Paginate(filtered, 30, PageRequest{Size: 10, Number: tt.page})
		if res.Empty() != tt.wantEmpty {
			t.Errorf("page %d: Empty() = %v, want %v", tt.page, res.Empty(), tt.wantEmpty)
		}
	}
}

func TestPaginate_InvalidInputsDoNotPanic(t *testing.T) {
	filtered := numberedTable(10)
	for _, req := range []PageRequest{
		{Size: 0, Number: 1},
		{Size: -5, Number: 1},
		{Size: 10, Number: 0},
		{Size: 10, Number: -1},
	} {
		res := Paginate(filtered, 10, req)
		if !res.Empty() {
			t.Errorf("Paginate(%+v) returned %d rows, want none", req, len(res.Rows))
		}
		if res.FilteredRows != 10 {
			t.Errorf("Paginate(%+v).FilteredRows = %d, want 10", req, res.FilteredRows)
		}
	}
}

func TestPaginate_Idempotent(t *testing.T) {
	filtered := numberedTable(57)
	req := PageRequest{Size: 25, Number: 2}

	first := Paginate(filtered, 57, req)
	second := Paginate(filtered, 57, req)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Paginate differs:\n%+v\n%+v", first, second)
	}
}

func TestPaginate_RowsDoNotAliasAppend(t *testing.T) {
	// Appending to a page must not overwrite the next page's rows in the source.
	filtered := numberedTable(4)
	res := Paginate(filtered, 4, PageRequest{Size: 2, Number: 1})

	_ = append(res.Rows, Record{Name: "intruder"})

	if filtered[2].Name != "row-3" {
		t.Errorf("source row 3 = %q, want row-3", filtered[2].Name)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		rows, size, want int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{120, 50, 3},
		{1000, 1000, 1},
		{10, 0, 1},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.rows, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.rows, tt.size, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{1, 1, 1},
		{0, 5, 1},
		{-3, 5, 1},
		{6, 5, 5},
		{3, 5, 3},
		{2, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}
