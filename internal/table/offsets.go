package table

// offsetTable is the mutable horizontal offset table.
type offsetTable []int

// shift adds delta to every entry from index from onward.
// Indices past the end are a no-op, so the last column needs no special case.
func (o offsetTable) shift(from, delta int) {
	for i := from; i < len(o); i++ {
		o[i] += delta
	}
}

// increasing returns the first index i where o[i] <= o[i-1], or -1.
func (o offsetTable) increasing() int {
	for i := 1; i < len(o); i++ {
		if o[i] <= o[i-1] {
			return i
		}
	}
	return -1
}
