package quote

// List is an ordered set of quotes. Filters return new lists and never reorder.
type List []Quote

// Filter returns the quotes for which keep is true, in their original order.
func (l List) Filter(keep func(Quote) bool) List {
	out := make(List, 0, len(l))
	for _, q := range l {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// Map returns a new list with fn applied to every quote.
func (l List) Map(fn func(Quote) Quote) List {
	out := make(List, 0, len(l))
	for _, q := range l {
		out = append(out, fn(q))
	}
	return out
}

func (l List) IsEmpty() bool {
	return len(l) == 0
}

