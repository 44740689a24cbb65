// Package search implements the filter-and-paginate engine over an in-memory
// table of training-provider records. All functions are pure: the source table
// is never mutated and may be shared read-only across goroutines.
package search

// Field identifies one of the four record columns.
type Field int

const (
	FieldName    Field = iota // Training provider name.
	FieldAddress              // Postal address.
	FieldPhone                // Telephone number.
	FieldEmail                // Email address.
)

// Fields lists every record field in column order.
var Fields = []Field{FieldName, FieldAddress, FieldPhone, FieldEmail}

// Header returns the source column header for the field.
func (f Field) Header() string {
	switch f {
	case FieldName:
		return "Training Provider Name"
	case FieldAddress:
		return "Address"
	case FieldPhone:
		return "Telephone No."
	case FieldEmail:
		return "Email"
	default:
		return ""
	}
}

// String returns a short lowercase field name, suitable for flags and keys.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldAddress:
		return "address"
	case FieldPhone:
		return "phone"
	case FieldEmail:
		return "email"
	default:
		return "unknown"
	}
}

// Record is one row of the provider table. Absent source values are stored as "".
type Record struct {
	Name    string `json:"name"    yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone"   yaml:"phone"`
	Email   string `json:"email"   yaml:"email"`
}

// Value returns the text of the given field.
func (r Record) Value(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldAddress:
		return r.Address
	case FieldPhone:
		return r.Phone
	case FieldEmail:
		return r.Email
	default:
		return ""
	}
}

// Values returns the four field values in column order.
func (r Record) Values() []string {
	return []string{r.Name, r.Address, r.Phone, r.Email}
}

// Table is an ordered sequence of records in source insertion order.
type Table []Record

// Criteria holds the global query and per-field queries. Empty strings mean
// "no constraint".
type Criteria struct {
	Global string
	Fields map[Field]string
}

// With returns a copy of c with the query for field f set to q.
func (c Criteria) With(f Field, q string) Criteria {
	fields := make(map[Field]string, len(c.Fields)+1)
	for k, v := range c.Fields {
		fields[k] = v
	}
	fields[f] = q
	c.Fields = fields
	return c
}

// Field returns the query for f, or "" if unset.
func (c Criteria) Field(f Field) string {
	return c.Fields[f]
}

// IsEmpty reports whether no criterion constrains the table.
func (c Criteria) IsEmpty() bool {
	if c.Global != "" {
		return false
	}
	for _, q := range c.Fields {
		if q != "" {
			return false
		}
	}
	return true
}

// PageRequest selects one page of a filtered table. Number is 1-based.
type PageRequest struct {
	Size   int
	Number int
}

// PageResult is one page of filtered rows plus count metadata.
// Start and End are the 0-based half-open bounds of Rows within the filtered table.
type PageResult struct {
	Rows         []Record `json:"rows"          yaml:"rows"`
	Page         int      `json:"page"          yaml:"page"`
	PageSize     int      `json:"page_size"     yaml:"page_size"`
	TotalPages   int      `json:"total_pages"   yaml:"total_pages"`
	FilteredRows int      `json:"filtered_rows" yaml:"filtered_rows"`
	TotalRows    int      `json:"total_rows"    yaml:"total_rows"`
	Start        int      `json:"start"         yaml:"start"`
	End          int      `json:"end"           yaml:"end"`
}

// Empty reports whether the page holds no rows.
func (p PageResult) Empty() bool {
	return len(p.Rows) == 0
}
