// Package roamer explores maps it cannot see, one move at a time.
//
// An explorer stands in one room and only ever learns the exits of the room
// it is in. roamer drives such an explorer until every reachable room has
// been entered, recording the walk as a list of direction labels, and then
// replays that walk against the real map to prove the coverage.
//
// What is inside:
//
//	label/    — the four direction labels n, e, s, w and their inverses
//	frontier/ — the partial map: resolved exits and exits still unknown
//	bfs/      — nearest-frontier search over resolved exits only
//	explore/  — the driver: random unknown exits first, BFS backtracking second
//	world/    — ground-truth maps, generators, YAML loading, the move oracle
//	verify/   — replay-based coverage check of a recorded walk
//	config/   — run configuration and logging setup
//	cmd/roamer — the command-line tool
//
// Quick ASCII example (a lollipop: corridor ending in two dead-end arms):
//
//	6 ─ 5 ─ 2 ─ 3 ─ 4
//	        │
//	        1
//	        │
//	        0  ← start
//
// Starting at 0 the explorer runs north to the junction, picks one arm at
// random, hits its dead end, walks back to the junction along the shortest
// known route and finishes with the other arm.
//
//	go install github.com/katalvlaran/roamer/cmd/roamer@latest
package roamer
