package walk

// RandomFill returns n uniformly random door choices in {0, ..., 5}, drawn
// from rng. Used as tail padding when a scripted prefix is shorter than the
// query budget, and for the cascade's last-resort pure-random query source.
func RandomFill(rng *RNG, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(6)
	}
	return out
}

// RandomFillOpened draws n door choices, preferring doors already known to
// be opened at the current room when a lookup is available. opened(d)
// reports whether door d is opened at the room the walk is currently at;
// the walk never commits to following a door before choosing it, so the
// caller is responsible for advancing its own notion of "current room"
// between calls if it wants opened() to reflect each step.
//
// If opened reports false for every door, falls back to a uniform choice.
func RandomFillOpened(rng *RNG, n int, opened func(door int) bool) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		candidates := make([]int, 0, 6)
		for d := 0; d < 6; d++ {
			if opened == nil || opened(d) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			out[i] = rng.Intn(6)
			continue
		}
		out[i] = candidates[rng.Intn(len(candidates))]
	}
	return out
}
