package oracle

import (
	"context"
	"fmt"

	"github.com/mkorrel/libraryrecon/pkg/planwire"
	"github.com/mkorrel/libraryrecon/pkg/walk"
)

// fixtureDoor mirrors one door of a hidden room: a destination room and the
// door on that room it bonds back to.
type fixtureDoor struct {
	toRoom int
	toDoor int
}

// Fixture is an in-memory hidden library, answering Explore/Guess by
// simulating walks against a concrete graph instead of a network oracle.
// Used by tests exercising the exploration loop end-to-end without a real
// server.
type Fixture struct {
	labels []int
	doors  [][6]fixtureDoor
	start  int
}

// NewFixture builds a fixture from an explicit room/door layout. labels has
// length N with values in {0,1,2,3}; doors has length N, doors[r][d] names
// the room and door that door d of room r bonds to (symmetric bonding is
// the caller's responsibility — FromRandomGraph enforces it for generated
// fixtures).
func NewFixture(labels []int, doors [][6]fixtureDoor, start int) (*Fixture, error) {
	if len(labels) != len(doors) {
		return nil, fmt.Errorf("oracle: fixture labels/doors length mismatch: %d vs %d", len(labels), len(doors))
	}
	if start < 0 || start >= len(labels) {
		return nil, fmt.Errorf("oracle: fixture start room %d out of range", start)
	}
	return &Fixture{labels: labels, doors: doors, start: start}, nil
}

// NewFixtureFromBonds is NewFixture's externally-usable counterpart: bonds
// has length N, bonds[r][d] = [toRoom, toDoor] naming door d of room r's
// far end. Used by seed tests in other packages, where fixtureDoor's being
// unexported would otherwise make hand-building a topology impossible.
func NewFixtureFromBonds(labels []int, bonds [][6][2]int, start int) (*Fixture, error) {
	doors := make([][6]fixtureDoor, len(bonds))
	for r, row := range bonds {
		for d, b := range row {
			doors[r][d] = fixtureDoor{toRoom: b[0], toDoor: b[1]}
		}
	}
	return NewFixture(labels, doors, start)
}

// FromRandomGraph builds a fixture of n rooms with uniformly random labels
// and a uniformly random perfect matching of the 6n door-halves, seeded
// deterministically so tests reproduce. Grounded on the same
// seed-derives-a-stream idiom pkg/walk.RNG already implements.
func FromRandomGraph(n int, rng *walk.RNG) (*Fixture, error) {
	if n < 1 {
		return nil, fmt.Errorf("oracle: fixture requires n >= 1, got %d", n)
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(4)
	}

	type half struct{ room, door int }
	halves := make([]half, 0, n*6)
	for r := 0; r < n; r++ {
		for d := 0; d < 6; d++ {
			halves = append(halves, half{r, d})
		}
	}
	rng.Shuffle(len(halves), func(i, j int) { halves[i], halves[j] = halves[j], halves[i] })

	doors := make([][6]fixtureDoor, n)
	for i := 0; i < len(halves); i += 2 {
		a, b := halves[i], halves[i+1]
		doors[a.room][a.door] = fixtureDoor{toRoom: b.room, toDoor: b.door}
		doors[b.room][b.door] = fixtureDoor{toRoom: a.room, toDoor: a.door}
	}

	return &Fixture{labels: labels, doors: doors, start: 0}, nil
}

func (f *Fixture) Select(ctx context.Context, name string) (SelectResult, error) {
	return SelectResult{Name: name}, nil
}

// Explore decodes and simulates each plan against the hidden graph,
// applying charcoal markers as durable per-plan label overwrites: a marker
// changes what this room reports for the rest of this plan, and is
// invisible to any other plan in the batch or to future calls.
func (f *Fixture) Explore(ctx context.Context, plans []string) (ExploreResult, error) {
	out := make([][]int, len(plans))
	for i, wire := range plans {
		tokens, err := planwire.Decode(wire)
		if err != nil {
			return ExploreResult{}, fmt.Errorf("oracle: fixture decoding plan %d: %w", i, err)
		}
		out[i] = f.simulate(tokens)
	}
	return ExploreResult{PerPlanLabels: out, QueryCount: len(plans)}, nil
}

func (f *Fixture) simulate(plan planwire.Plan) []int {
	overrides := make(map[int]int) // room -> current observed label for this plan
	cur := f.start
	observed := make([]int, 0, plan.MoveCount()+1)
	observed = append(observed, f.labelAt(cur, overrides))

	for _, t := range plan {
		switch t.Kind {
		case planwire.KindCharcoal:
			overrides[cur] = t.Value
			observed[len(observed)-1] = f.labelAt(cur, overrides)
		case planwire.KindMove:
			cur = f.doors[cur][t.Value].toRoom
			observed = append(observed, f.labelAt(cur, overrides))
		}
	}
	return observed
}

func (f *Fixture) labelAt(room int, overrides map[int]int) int {
	if l, ok := overrides[room]; ok {
		return l
	}
	return f.labels[room]
}

// Guess compares the submitted MapDescription against the hidden graph up
// to isomorphism: same multiset of labels reachable in the same structural
// shape, starting room included. Since callers index bound rooms in their
// own canonical order, which need not match the fixture's own room
// numbering, this checks structural equivalence by walking both graphs
// breadth-first from their starts in lockstep and building a room-to-room
// correspondence that must agree on every label and every door's
// destination room, rather than requiring an exact index-for-index match.
// The door numbers that doors pair with are not compared.
func (f *Fixture) Guess(ctx context.Context, guess MapDescription) (GuessResult, error) {
	if len(guess.Labels) != len(f.labels) {
		return GuessResult{Correct: false}, nil
	}

	guessDoors, err := guessAdjacency(guess)
	if err != nil {
		return GuessResult{Correct: false}, nil
	}

	iso := findIsomorphism(f.start, guess.StartingRoom, f.labels, f.doors, guess.Labels, guessDoors)
	return GuessResult{Correct: iso}, nil
}

func guessAdjacency(guess MapDescription) ([][6]fixtureDoor, error) {
	n := len(guess.Labels)
	doors := make([][6]fixtureDoor, n)
	set := make(map[[2]int]bool, n*6)
	setDoor := func(room, door, toRoom, toDoor int) error {
		key := [2]int{room, door}
		if set[key] {
			return fmt.Errorf("door %d of room %d set twice", door, room)
		}
		set[key] = true
		doors[room][door] = fixtureDoor{toRoom: toRoom, toDoor: toDoor}
		return nil
	}
	for _, c := range guess.Connections {
		if err := setDoor(c.Room, c.Door, c.Room2, c.Door2); err != nil {
			return nil, err
		}
		if !(c.Room == c.Room2 && c.Door == c.Door2) {
			if err := setDoor(c.Room2, c.Door2, c.Room, c.Door); err != nil {
				return nil, err
			}
		}
	}
	return doors, nil
}

// findIsomorphism performs a BFS-synchronized walk from both starts,
// greedily assigning a room correspondence the first time each room is
// reached and rejecting on any label or structural mismatch.
func findIsomorphism(fStart, gStart int, fLabels []int, fDoors [][6]fixtureDoor, gLabels []int, gDoors [][6]fixtureDoor) bool {
	if fLabels[fStart] != gLabels[gStart] {
		return false
	}
	mapFtoG := map[int]int{fStart: gStart}
	mapGtoF := map[int]int{gStart: fStart}
	queue := []int{fStart}

	for len(queue) > 0 {
		fr := queue[0]
		queue = queue[1:]
		gr := mapFtoG[fr]

		for d := 0; d < 6; d++ {
			fNext := fDoors[fr][d].toRoom
			gNext := gDoors[gr][d].toRoom

			if fLabels[fNext] != gLabels[gNext] {
				return false
			}
			existingG, fSeen := mapFtoG[fNext]
			existingF, gSeen := mapGtoF[gNext]
			switch {
			case fSeen && gSeen:
				if existingG != gNext || existingF != fNext {
					return false
				}
			case fSeen != gSeen:
				return false
			default:
				mapFtoG[fNext] = gNext
				mapGtoF[gNext] = fNext
				queue = append(queue, fNext)
			}
		}
	}
	return true
}
