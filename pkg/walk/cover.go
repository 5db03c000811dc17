package walk

// BoundedCoverPlan emits exactly budget digits over the 6-door alphabet,
// built from a de Bruijn sequence of the largest order whose block fits
// (or nearly fits) the budget. If the block is at least as long as the
// budget it is truncated; otherwise rotated copies of the block are tiled,
// each copy offset from the last by an amount coprime with the block
// length, until the budget is reached. Tiling by a coprime offset visits
// every rotation of the block before any rotation repeats, which keeps
// every length-n window represented as evenly as possible across the tail
// of the plan.
//
// Panics if budget < 1.
func BoundedCoverPlan(budget int) []int {
	const doors = 6
	if budget < 1 {
		panic("walk: BoundedCoverPlan requires budget >= 1")
	}

	order := MaxOrder(doors, budget)
	if order < 1 {
		order = 1
	}
	block := DeBruijn(doors, order)
	L := len(block)

	if L >= budget {
		return append([]int(nil), block[:budget]...)
	}

	offset := coprimeOffset(L)
	out := make([]int, 0, budget)
	for i := 0; len(out) < budget; i++ {
		rot := (i * offset) % L
		out = append(out, rotate(block, rot)...)
	}
	return out[:budget]
}

// coprimeOffset returns an offset in [1, L) with gcd(offset, L) == 1, or 1
// if L <= 1 (any offset is vacuously coprime with a length of 1).
func coprimeOffset(L int) int {
	if L <= 1 {
		return 1
	}
	for o := 1; o < L; o++ {
		if gcd(o, L) == 1 {
			return o
		}
	}
	return 1
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// rotate returns a copy of seq rotated left by n positions (0 <= n < len(seq)).
func rotate(seq []int, n int) []int {
	if len(seq) == 0 {
		return nil
	}
	n = n % len(seq)
	out := make([]int, len(seq))
	copy(out, seq[n:])
	copy(out[len(seq)-n:], seq[:n])
	return out
}
