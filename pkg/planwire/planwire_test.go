package planwire

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDecode_Example(t *testing.T) {
	// plan "01[2]34" means move 0, move 1, overwrite to 2 at the current
	// room, move 3, move 4.
	plan, err := Decode("01[2]34")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := Plan{Move(0), Move(1), Charcoal(2), Move(3), Move(4)}
	if len(plan) != len(want) {
		t.Fatalf("len = %d, want %d", len(plan), len(want))
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Fatalf("token %d = %+v, want %+v", i, plan[i], want[i])
		}
	}
	if plan.MoveCount() != 4 {
		t.Fatalf("MoveCount = %d, want 4", plan.MoveCount())
	}
}

func TestDecode_RejectsInvalidCharcoalLabel(t *testing.T) {
	// an out-of-range charcoal label like "01[5]2" must be rejected.
	_, err := Decode("01[5]2")
	if err == nil {
		t.Fatal("expected a DecodeError for out-of-range charcoal label")
	}
	if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestDecode_RejectsMalformedMarker(t *testing.T) {
	cases := []string{"0[2", "0[23", "0[2x", "0[", "7"}
	for _, wire := range cases {
		if _, err := Decode(wire); err == nil {
			t.Errorf("Decode(%q) should have failed", wire)
		}
	}
}

func TestDecode_RejectsStackedMarkers(t *testing.T) {
	_, err := Decode("0[1][2]3")
	if err == nil {
		t.Fatal("expected a DecodeError for stacked charcoal markers")
	}
}

func TestDecode_LeadingCharcoalAtStartIsLegal(t *testing.T) {
	// a charcoal at the starting position, before any move, is legal.
	plan, err := Decode("[1]023")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(plan) != 4 || plan[0] != Charcoal(1) {
		t.Fatalf("plan = %+v, want leading charcoal token", plan)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	plan := Plan{Move(0), Charcoal(2), Move(1), Move(5), Charcoal(3), Move(4)}
	wire, err := Encode(plan)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != len(plan) {
		t.Fatalf("round trip length = %d, want %d", len(decoded), len(plan))
	}
	for i := range plan {
		if decoded[i] != plan[i] {
			t.Fatalf("round trip mismatch at %d: got %+v want %+v", i, decoded[i], plan[i])
		}
	}
}

func TestEncodeDecodeProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		var plan Plan
		overridden := false
		for i := 0; i < n; i++ {
			// Only draw a charcoal token when the current position hasn't
			// been overridden yet, so the generated plan is always valid.
			wantCharcoal := !overridden && rapid.Bool().Draw(t, "wantCharcoal")
			if wantCharcoal {
				l := rapid.IntRange(0, 3).Draw(t, "label")
				plan = append(plan, Charcoal(l))
				overridden = true
			} else {
				d := rapid.IntRange(0, 5).Draw(t, "door")
				plan = append(plan, Move(d))
				overridden = false
			}
		}

		wire, err := Encode(plan)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := Decode(wire)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", wire, err)
		}
		if len(decoded) != len(plan) {
			t.Fatalf("length mismatch: got %d want %d", len(decoded), len(plan))
		}
		for i := range plan {
			if decoded[i] != plan[i] {
				t.Fatalf("mismatch at %d: got %+v want %+v", i, decoded[i], plan[i])
			}
		}
	})
}

func TestFromMovesAndMoves(t *testing.T) {
	doors := []int{0, 1, 2, 3, 4, 5}
	plan := FromMoves(doors)
	if plan.MoveCount() != 6 {
		t.Fatalf("MoveCount = %d, want 6", plan.MoveCount())
	}
	got := plan.Moves()
	for i := range doors {
		if got[i] != doors[i] {
			t.Fatalf("Moves()[%d] = %d, want %d", i, got[i], doors[i])
		}
	}
}
