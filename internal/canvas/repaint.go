package canvas

// ClosestPair returns the two entries whose areas differ the least. Pairs
// with a non-positive area are skipped. On ties the first pair found wins,
// scanning i ascending then j ascending.
func ClosestPair(entries []*Rect) (*Rect, *Rect, bool) {
	if len(entries) < 2 {
		return nil, nil, false
	}
	var a, b *Rect
	best := -1
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			ai, aj := entries[i].Area(), entries[j].Area()
			if ai <= 0 || aj <= 0 {
				continue
			}
			diff := ai - aj
			if diff < 0 {
				diff = -diff
			}
			if best < 0 || diff < best {
				best = diff
				a, b = entries[i], entries[j]
			}
		}
	}
	return a, b, a != nil
}
