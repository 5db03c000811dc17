package planwire

// Decode parses a wire-form plan string into tokens, validating as it goes:
// every byte is either a move digit '0'..'5' or the start of a charcoal
// marker `[L]` with L in '0'..'3' followed by ']'; a marker applied to a
// position already overridden earlier in the plan (no move in between) is
// rejected. Decode does not enforce the 18*N move budget — callers check
// that separately against Plan.MoveCount, since the budget depends on N.
func Decode(wire string) (Plan, error) {
	var out Plan
	overridden := false

	for i := 0; i < len(wire); i++ {
		c := wire[i]
		switch {
		case c >= '0' && c <= '5':
			out = append(out, Move(int(c-'0')))
			overridden = false

		case c == '[':
			if overridden {
				return nil, &DecodeError{Pos: i, Msg: "charcoal marker stacked at an already-overridden position"}
			}
			if i+2 >= len(wire) {
				return nil, &DecodeError{Pos: i, Msg: "truncated charcoal marker"}
			}
			label := wire[i+1]
			closing := wire[i+2]
			if label < '0' || label > '3' {
				return nil, &DecodeError{Pos: i + 1, Msg: "charcoal label out of range 0..3"}
			}
			if closing != ']' {
				return nil, &DecodeError{Pos: i + 2, Msg: "malformed charcoal marker, expected ']'"}
			}
			out = append(out, Charcoal(int(label-'0')))
			overridden = true
			i += 2

		default:
			return nil, &DecodeError{Pos: i, Msg: "unexpected byte in plan"}
		}
	}

	return out, nil
}
