// Package puzzle implements the 8-puzzle search core.
//
// It exposes two main entry points:
//
//   - Solve: run A* with the Manhattan-distance heuristic to completion
//     and get a Result.
//   - SolveAsync: run the same search on its own goroutine and receive
//     the outcome over a channel, so interactive front-ends stay
//     responsive.
//
// A State is a plain comparable value and the search is fully
// deterministic: frontier ties are broken by push order, so identical
// inputs always explore the same nodes and return the same path.
package puzzle
