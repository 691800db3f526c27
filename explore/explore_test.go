package explore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roamer/explore"
	"github.com/katalvlaran/roamer/frontier"
	"github.com/katalvlaran/roamer/label"
	"github.com/katalvlaran/roamer/verify"
	"github.com/katalvlaran/roamer/world"
)

var (
	n = label.North
	e = label.East
	s = label.South
	w = label.West
)

// first always takes the first unknown exit in canonical order.
var first = explore.PickerFunc(func(int) int { return 0 })

func newPlayer(t *testing.T, wd *world.World) *world.Player {
	t.Helper()
	p, err := world.NewPlayer(wd)
	require.NoError(t, err)
	return p
}

func mustWorld(t *testing.T) func(*world.World, error) *world.World {
	return func(wd *world.World, err error) *world.World {
		t.Helper()
		require.NoError(t, err)
		return wd
	}
}

// explored runs the driver on wd and verifies coverage of the result.
func explored(t *testing.T, wd *world.World, opts ...explore.Option) (*explore.Result, *verify.Report) {
	t.Helper()
	res, err := explore.Explore(newPlayer(t, wd), opts...)
	require.NoError(t, err)
	require.True(t, res.Complete)
	rep, err := verify.Coverage(wd.Start, res.Path, wd)
	require.NoError(t, err)
	return res, rep
}

func TestNew_Errors(t *testing.T) {
	_, err := explore.New(nil)
	require.ErrorIs(t, err, explore.ErrOracleNil)

	p := newPlayer(t, mustWorld(t)(world.Line(2)))
	_, err = explore.New(p, explore.WithMaxRooms(0))
	require.ErrorIs(t, err, explore.ErrOptionViolation)
	_, err = explore.New(p, explore.WithPicker(nil))
	require.ErrorIs(t, err, explore.ErrOptionViolation)
}

// TestScenarioA_TwoRooms explores a single corridor: the path is exactly one move.
func TestScenarioA_TwoRooms(t *testing.T) {
	wd := world.New()
	_, _ = wd.AddRoom(1, 0, 0)
	_, _ = wd.AddRoom(2, 0, 1)
	require.NoError(t, wd.Connect(1, n, 2))

	for seed := int64(0); seed < 5; seed++ {
		res, rep := explored(t, wd, explore.WithSeed(seed))
		assert.Equal(t, []label.Label{n}, res.Path)
		assert.True(t, rep.OK)
		assert.Equal(t, 2, rep.Visited)
		assert.Equal(t, 0, res.Backtracks)
	}
}

// TestScenarioB_FourCycle explores 1-2-3-4-1 without any inconsistency.
func TestScenarioB_FourCycle(t *testing.T) {
	wd := world.New()
	for i, xy := range [][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		_, err := wd.AddRoom(i+1, xy[0], xy[1])
		require.NoError(t, err)
	}
	require.NoError(t, wd.Connect(1, e, 2))
	require.NoError(t, wd.Connect(2, n, 3))
	require.NoError(t, wd.Connect(3, w, 4))
	require.NoError(t, wd.Connect(4, s, 1))

	for seed := int64(1); seed <= 10; seed++ {
		res, rep := explored(t, wd, explore.WithSeed(seed))
		assert.Equal(t, 4, rep.Visited, "seed %d", seed)
		assert.True(t, rep.OK)
		assert.True(t, res.Graph.IsFullyExplored())
		// closing the cycle resolves the last exit from both sides: no backtracking
		assert.Equal(t, 0, res.Backtracks, "seed %d", seed)
		assert.Len(t, res.Path, 4)
	}
}

// TestScenarioC_Lollipop must backtrack out of the first dead-end arm.
func TestScenarioC_Lollipop(t *testing.T) {
	wd := mustWorld(t)(world.Lollipop(6, 3))
	for seed := int64(1); seed <= 10; seed++ {
		var backtrackSteps int
		res, rep := explored(t, wd,
			explore.WithSeed(seed),
			explore.WithOnStep(func(st explore.Step) {
				if st.State == explore.Backtracking {
					backtrackSteps++
				}
			}))
		assert.True(t, rep.OK)
		assert.Greater(t, backtrackSteps, 0, "seed %d", seed)
		assert.Equal(t, backtrackSteps, res.BacktrackMoves)
		assert.Equal(t, 1, res.Backtracks, "one trip from the first arm's tip to the junction")
		// stem 6 + arm 3 + back 3 + arm 3
		assert.Len(t, res.Path, 15)
		assert.Equal(t, res.ExploreMoves+res.BacktrackMoves, res.Moves())
	}
}

// TestScenarioD_Disconnected explores only the start's component.
func TestScenarioD_Disconnected(t *testing.T) {
	a := mustWorld(t)(world.Line(3))
	b := mustWorld(t)(world.Grid(2, 3))
	wd := mustWorld(t)(world.Join(a, b))

	res, err := explore.Explore(newPlayer(t, wd), explore.WithSeed(7))
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, 3, res.Rooms)

	rep, err := verify.Coverage(wd.Start, res.Path, wd)
	require.NoError(t, err)
	assert.False(t, rep.OK)
	assert.Equal(t, 3, rep.Visited)
	assert.Equal(t, 9, rep.Total)
	assert.Len(t, rep.Unvisited, 6)
	require.ErrorIs(t, rep.Err(), verify.ErrVerificationFailed)
}

// TestCoverage_ManyMaps is the coverage property over several connected maps and seeds.
func TestCoverage_ManyMaps(t *testing.T) {
	maze := [][]int{
		{1, 1, 1, 0, 1, 1, 1},
		{1, 0, 1, 1, 1, 0, 1},
		{1, 0, 0, 0, 1, 0, 1},
		{1, 1, 1, 0, 1, 1, 1},
		{0, 0, 1, 1, 1, 0, 0},
	}
	maps := map[string]*world.World{
		"line":     mustWorld(t)(world.Line(12)),
		"cross":    mustWorld(t)(world.Cross(4)),
		"ring":     mustWorld(t)(world.Ring(4, 6)),
		"grid":     mustWorld(t)(world.Grid(7, 7)),
		"lollipop": mustWorld(t)(world.Lollipop(4, 5)),
		"maze":     mustWorld(t)(world.FromGrid(maze)),
	}
	for name, wd := range maps {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 25; seed++ {
				res, rep := explored(t, wd, explore.WithSeed(seed))
				require.True(t, rep.OK, "seed %d: %d/%d rooms", seed, rep.Visited, rep.Total)
				assert.Equal(t, wd.Len(), res.Rooms)
				assert.True(t, res.Graph.IsFullyExplored())
			}
		})
	}
}

// TestFrontierMatchesWorld checks the resolved frontier graph equals the true map.
func TestFrontierMatchesWorld(t *testing.T) {
	wd := mustWorld(t)(world.Grid(4, 5))
	res, _ := explored(t, wd, explore.WithSeed(3))

	want := make(map[int]map[label.Label]int)
	for _, id := range wd.Rooms() {
		r, _ := wd.Room(id)
		want[id] = make(map[label.Label]int)
		for l, to := range r.Exits {
			want[id][l] = to
		}
	}
	if diff := cmp.Diff(want, res.Graph.Snapshot()); diff != "" {
		t.Errorf("frontier snapshot mismatch (-world +frontier):\n%s", diff)
	}
}

// TestInvariants_ReciprocityAndMonotonicity observes every step of a run.
func TestInvariants_ReciprocityAndMonotonicity(t *testing.T) {
	wd := mustWorld(t)(world.Grid(6, 6))
	prevResolved := 0
	seen := map[[2]int]int{} // (room, label) -> first resolution

	_, _ = explored(t, wd, explore.WithSeed(11), explore.WithOnStep(func(st explore.Step) {
		require.GreaterOrEqual(t, st.Resolved, prevResolved, "resolved cells never decrease")
		prevResolved = st.Resolved

		for a, row := range st.Graph.Snapshot() {
			for l, b := range row {
				key := [2]int{a, int(l)}
				if prev, ok := seen[key]; ok {
					require.Equal(t, prev, b, "cell %d/%s changed", a, l)
				}
				seen[key] = b
				c, ok := st.Graph.Cell(b, l.Inverse())
				if !ok {
					continue
				}
				if back, ok := c.To(); ok {
					require.Equal(t, a, back, "%d --%s--> %d but back leads to %d", a, l, b, back)
				}
			}
		}
	}))
}

// TestDeterminism_FixedSeed runs twice with the same seed.
func TestDeterminism_FixedSeed(t *testing.T) {
	wd := mustWorld(t)(world.Grid(6, 8))
	r1, _ := explored(t, wd, explore.WithSeed(42))
	r2, _ := explored(t, wd, explore.WithSeed(42))
	if diff := cmp.Diff(label.Strings(r1.Path), label.Strings(r2.Path)); diff != "" {
		t.Errorf("same seed, different paths (-first +second):\n%s", diff)
	}
	assert.NotEqual(t, r1.RunID, r2.RunID)
}

// TestIncomplete_Ceiling stops on the room ceiling and still returns the path.
func TestIncomplete_Ceiling(t *testing.T) {
	wd := mustWorld(t)(world.Line(10))
	res, err := explore.Explore(newPlayer(t, wd), explore.WithMaxRooms(5))
	require.ErrorIs(t, err, explore.ErrIncomplete)
	require.NotNil(t, res)
	assert.False(t, res.Complete)
	assert.Equal(t, 6, res.Rooms)
	assert.Len(t, res.Path, 5)

	rep, err := verify.Coverage(wd.Start, res.Path, wd)
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Visited)

	// the move that crossed the ceiling is resolved both ways
	c, ok := res.Graph.Cell(4, label.North)
	require.True(t, ok)
	to, ok := c.To()
	require.True(t, ok)
	assert.Equal(t, 5, to)
	c, ok = res.Graph.Cell(5, label.South)
	require.True(t, ok)
	to, ok = c.To()
	require.True(t, ok)
	assert.Equal(t, 4, to)
	assert.Equal(t, map[label.Label]int{label.North: 5, label.South: 3}, res.Graph.Snapshot()[4])

	// a world with exactly MaxRooms rooms completes
	res, err = explore.Explore(newPlayer(t, wd), explore.WithMaxRooms(10))
	require.NoError(t, err)
	assert.True(t, res.Complete)
}

// TestInconsistency_Backtrack uses a map whose exits lie about the way back.
//
//	0 --n--> 1, 0 --e--> 2, 1 --s--> 2, 2 --w--> 0
func TestInconsistency_Backtrack(t *testing.T) {
	wd := world.New()
	for i := 0; i < 3; i++ {
		_, _ = wd.AddRoom(i, i, 0)
	}
	require.NoError(t, wd.SetExit(0, n, 1))
	require.NoError(t, wd.SetExit(0, e, 2))
	require.NoError(t, wd.SetExit(1, s, 2))
	require.NoError(t, wd.SetExit(2, w, 0))

	res, err := explore.Explore(newPlayer(t, wd), explore.WithPicker(first))
	require.Nil(t, res)
	require.ErrorIs(t, err, explore.ErrInconsistency)
	var ie *frontier.InconsistencyError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Vertex)
	assert.Equal(t, s, ie.Label)
	assert.Equal(t, 0, ie.Expected)
	assert.Equal(t, 2, ie.Actual)
}

// TestInconsistency_NoWayBack fails when the room reached has no inverse exit.
func TestInconsistency_NoWayBack(t *testing.T) {
	wd := world.New()
	_, _ = wd.AddRoom(0, 0, 0)
	_, _ = wd.AddRoom(1, 0, 1)
	require.NoError(t, wd.SetExit(0, n, 1))
	require.NoError(t, wd.SetExit(1, e, 0))

	_, err := explore.Explore(newPlayer(t, wd))
	require.ErrorIs(t, err, explore.ErrInconsistency)
}

// lyingOracle advertises an exit it cannot take.
type lyingOracle struct{ *world.Player }

func (o lyingOracle) Exits(room int) ([]label.Label, error) {
	exits, err := o.Player.Exits(room)
	return append(exits, w), err
}

func TestInvalidMove_Aborts(t *testing.T) {
	p := newPlayer(t, mustWorld(t)(world.Line(3)))
	// the last candidate is the advertised west exit
	pickWest := explore.PickerFunc(func(k int) int { return k - 1 })

	res, err := explore.Explore(lyingOracle{p}, explore.WithPicker(pickWest))
	require.Nil(t, res)
	require.ErrorIs(t, err, explore.ErrInvalidMove)
	require.ErrorIs(t, err, world.ErrInvalidMove)
}

func TestPicker_OutOfRange(t *testing.T) {
	p := newPlayer(t, mustWorld(t)(world.Line(3)))
	bad := explore.PickerFunc(func(k int) int { return k })
	_, err := explore.Explore(p, explore.WithPicker(bad))
	require.ErrorIs(t, err, explore.ErrOptionViolation)
}

func TestContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := newPlayer(t, mustWorld(t)(world.Line(3)))
	_, err := explore.Explore(p, explore.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_FromCurrentRoom starts wherever the oracle currently is.
func TestRun_FromCurrentRoom(t *testing.T) {
	wd := mustWorld(t)(world.Line(4))
	p := newPlayer(t, wd)
	_, err := p.Move(n)
	require.NoError(t, err)

	ex, err := explore.New(p, explore.WithPicker(first))
	require.NoError(t, err)
	res, err := ex.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Start)
	// north to the end, back down, then on to room 0
	assert.Equal(t, []label.Label{n, n, s, s, s}, res.Path)
	assert.Equal(t, 1, res.Backtracks)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "exploring", explore.Exploring.String())
	assert.Equal(t, "backtracking", explore.Backtracking.String())
	assert.Equal(t, "done", explore.Done.String())
	assert.Equal(t, "State(9)", explore.State(9).String())
}

func TestRandPicker(t *testing.T) {
	a, b := explore.NewRandPicker(5), explore.NewRandPicker(5)
	for i := 0; i < 50; i++ {
		x := a.Pick(4)
		require.Equal(t, x, b.Pick(4))
		require.GreaterOrEqual(t, x, 0)
		require.Less(t, x, 4)
	}
	assert.Equal(t, 0, explore.NewUnseededPicker().Pick(1))
	assert.Equal(t, explore.NewRandPicker(0).Pick(1000), explore.NewRandPicker(1).Pick(1000), "seed 0 uses the default seed")
}
