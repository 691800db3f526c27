// Package world is the ground truth an explorer is let loose in: a map of
// numbered rooms joined by labelled exits, and a Player that walks it one
// move at a time.
//
// The explorer never sees a World directly. It only talks to a Player
// through three queries (Current, Exits, Move), which is exactly the
// explore.Oracle contract. The verify package replays recorded paths
// against the World itself.
//
// Sources of worlds
//
//   - Load / LoadFile read a YAML (or JSON) map file.
//   - Line, Cross, Ring, Grid and Lollipop generate the classic test maps.
//   - FromGrid turns a 2D land/water grid into rooms with 4-connectivity.
//   - Join places two worlds side by side without connecting them.
//
// Reciprocity
//
//	Connect always writes both directions of an exit. SetExit writes one
//	direction only and exists so malformed maps can be represented; Validate
//	reports any exit whose inverse does not lead back.
package world
