package search

// predicate narrows the working set by accepting or rejecting one record.
type predicate func(Record) bool

// predicates builds the conjunction for c: the global query first, then each
// non-empty field query in column order. Queries are folded once up front.
func (c Criteria) predicates(f *folder) []predicate {
	var preds []predicate
	if c.Global != "" {
		q := f.fold(c.Global)
		preds = append(preds, func(r Record) bool {
			return f.matchesGlobal(r, q)
		})
	}
	for _, field := range Fields {
		field := field // per-iteration copy for the closure below (go < 1.22)
		raw := c.Field(field)
		if raw == "" {
			continue
		}
		q := f.fold(raw)
		preds = append(preds, func(r Record) bool {
			return f.contains(r.Value(field), q)
		})
	}
	return preds
}

// Filter returns the records of t that satisfy every criterion in c, in their
// original order. When c is empty, t itself is returned. t is never modified.
func Filter(t Table, c Criteria) Table {
	preds := c.predicates(newFolder())
	if len(preds) == 0 {
		return t
	}

	working := t
	for _, p := range preds {
		next := make(Table, 0, len(working))
		for _, r := range working {
			if p(r) {
				next = append(next, r)
			}
		}
		working = next
	}
	return working
}

// Search filters t by c and returns the requested page. TotalRows is len(t).
func Search(t Table, c Criteria, req PageRequest) PageResult {
	return Paginate(Filter(t, c), len(t), req)
}
