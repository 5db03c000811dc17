package walk

// DeBruijn returns a cyclic sequence over {0, ..., k-1} of length k^n in
// which every length-n word over the alphabet occurs exactly once (reading
// the sequence cyclically). Uses the Fredricksen-Kessler-Maiorana
// algorithm: the concatenation, in order, of all Lyndon words over the
// alphabet whose length divides n.
//
// Panics if k < 2 or n < 1.
func DeBruijn(k, n int) []int {
	if k < 2 {
		panic("walk: DeBruijn requires alphabet size k >= 2")
	}
	if n < 1 {
		panic("walk: DeBruijn requires order n >= 1")
	}

	a := make([]int, k*n)
	var sequence []int

	var db func(t, p int)
	db = func(t, p int) {
		if t > n {
			if n%p == 0 {
				sequence = append(sequence, a[1:p+1]...)
			}
			return
		}
		a[t] = a[t-p]
		db(t+1, p)
		for j := a[t-p] + 1; j < k; j++ {
			a[t] = j
			db(t+1, t)
		}
	}
	db(1, 1)

	return sequence
}

// MaxOrder returns the largest n such that k^n <= limit, for k >= 2 and
// limit >= 1. Used to pick the de Bruijn order for a given move budget.
func MaxOrder(k, limit int) int {
	if k < 2 || limit < 1 {
		return 0
	}
	n := 0
	product := 1
	for product*k <= limit {
		product *= k
		n++
	}
	return n
}
