package mining

// EnumeratePairs returns every unordered pair of distinct KC
// identifiers, C(m,2) in total. Each pair is canonicalized (X before Y)
// and appears exactly once, in the order the nested iteration over the
// input columns first produces it, so the output is reproducible from
// the column order.
func EnumeratePairs(columns []string) []Pair {
	seen := make(map[Pair]struct{}, len(columns)*len(columns)/2)
	var pairs []Pair

	for _, a := range columns {
		for _, b := range columns {
			if a == b {
				continue
			}
			p := Pair{X: a, Y: b}
			if b < a {
				p = Pair{X: b, Y: a}
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	}

	return pairs
}
