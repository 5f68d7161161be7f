package annotation

// List keeps committed annotations in paint order.
type List struct {
	items []Annotation
}

// Add appends a if it is valid and reports whether it was kept.
func (l *List) Add(a Annotation) bool {
	if a == nil || !a.Valid() {
		return false
	}
	l.items = append(l.items, a)
	return true
}

// Len returns the number of annotations.
func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the annotations in insertion order.
func (l *List) Items() []Annotation {
	out := make([]Annotation, len(l.items))
	copy(out, l.items)
	return out
}

// Clear drops every annotation.
func (l *List) Clear() { l.items = nil }
