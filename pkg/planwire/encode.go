package planwire

import "strings"

// Encode renders tokens to their ASCII wire form: move tokens as a single
// digit '0'..'5', charcoal markers as `[L]` with L in '0'..'3'. Returns an
// EncodeError if two charcoal markers are stacked at the same cursor
// position (no intervening move) or if a token carries an out-of-range
// value — the latter should be unreachable through the Move/Charcoal
// constructors but is checked anyway since Plan values can be built by hand.
func Encode(p Plan) (string, error) {
	var b strings.Builder
	overridden := false

	for i, t := range p {
		switch t.Kind {
		case KindMove:
			if t.Value < 0 || t.Value > 5 {
				return "", &EncodeError{Index: i, Msg: "move door out of range 0..5"}
			}
			b.WriteByte(byte('0' + t.Value))
			overridden = false
		case KindCharcoal:
			if t.Value < 0 || t.Value > 3 {
				return "", &EncodeError{Index: i, Msg: "charcoal label out of range 0..3"}
			}
			if overridden {
				return "", &EncodeError{Index: i, Msg: "charcoal marker stacked at an already-overridden position"}
			}
			b.WriteByte('[')
			b.WriteByte(byte('0' + t.Value))
			b.WriteByte(']')
			overridden = true
		default:
			return "", &EncodeError{Index: i, Msg: "unknown token kind"}
		}
	}

	return b.String(), nil
}
