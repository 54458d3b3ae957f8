package profiles

// entry is an element of an ordered, id-tagged sub-collection.
type entry interface {
	EntryID() string
}

// prepend returns a new slice with e first and seq after it, in order.
func prepend[E entry](seq []E, e E) []E {
	out := make([]E, 0, len(seq)+1)
	out = append(out, e)
	return append(out, seq...)
}

// removeByID drops the first element whose id matches. The order of the remaining
// elements is kept. ok is false and seq is returned untouched when nothing matches.
func removeByID[E entry](seq []E, id string) (out []E, ok bool) {
	for i, e := range seq {
		if e.EntryID() != id {
			continue
		}
		out = make([]E, 0, len(seq)-1)
		out = append(out, seq[:i]...)
		return append(out, seq[i+1:]...), true
	}
	return seq, false
}
